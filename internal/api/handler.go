package api

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/models"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/relay"
	"github.com/rs/zerolog"
)

type Handler struct {
	relay  *relay.Relay
	logger *zerolog.Logger
}

func NewHandler(relay *relay.Relay, logger *zerolog.Logger) *Handler {
	return &Handler{
		relay:  relay,
		logger: logger,
	}
}

// POST /api/claude
// Body: PromptRequest
// Returns: the generated text as a bare JSON string
func (h *Handler) Claude(req *restful.Request, resp *restful.Response) {
	promptRequest, err := readPromptRequest(req)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, middleware.ErrProcessingFailed, http.StatusInternalServerError)
		return
	}

	// The upstream call runs to completion even if the caller disconnects.
	ctx := context.WithoutCancel(req.Request.Context())

	text, err := h.relay.Complete(ctx, promptRequest.Prompt)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Interface(middleware.AttributeRequestID, req.Attribute(middleware.AttributeRequestID)).
			Msg("Claude request failed")
		middleware.HandleError(resp, middleware.ErrProcessingFailed, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, text)
}

// readPromptRequest decodes JSON bodies only. A non-JSON content type or an
// empty body yields a request without a prompt, which is still relayed.
func readPromptRequest(req *restful.Request) (models.PromptRequest, error) {
	var promptRequest models.PromptRequest

	mediaType, _, err := mime.ParseMediaType(req.HeaderParameter(restful.HEADER_ContentType))
	if err != nil || mediaType != restful.MIME_JSON {
		return promptRequest, nil
	}

	if err := req.ReadEntity(&promptRequest); err != nil && !errors.Is(err, io.EOF) {
		return models.PromptRequest{}, err
	}

	return promptRequest, nil
}

// Health handler GET API /api/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
