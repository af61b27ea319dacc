package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/models"
	"github.com/rs/zerolog/log"
)

var ErrProcessingFailed = errors.New(models.ErrorMessage)

type ErrorResponse struct {
	Error string `json:"error" description:"Error message"`
}

// HandleError writes err's message as the response body. Only public errors
// such as ErrProcessingFailed may be passed here.
func HandleError(resp *restful.Response, err error, status int) {
	if writeErr := resp.WriteHeaderAndEntity(status, ErrorResponse{Error: err.Error()}); writeErr != nil {
		log.Error().Err(writeErr).Int("status", status).Msg("Failed to write error response")
	}
}
