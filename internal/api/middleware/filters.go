package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	HeaderRequestID    = "X-Request-ID"
	AttributeRequestID = "request_id"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	id := req.HeaderParameter(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}

	req.SetAttribute(AttributeRequestID, id)
	resp.AddHeader(HeaderRequestID, id)

	chain.ProcessFilter(req, resp)
}

func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	chain.ProcessFilter(req, resp)

	event := log.Info()
	if resp.StatusCode() >= http.StatusInternalServerError {
		event = log.Warn()
	}

	event.
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Interface(AttributeRequestID, req.Attribute(AttributeRequestID)).
		Msg("Request handled")
}

func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Str("path", req.Request.URL.Path).
				Msg("Recovered from panic")
			HandleError(resp, ErrProcessingFailed, http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}
