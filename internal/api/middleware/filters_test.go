package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/models"
)

func newContainer(route restful.RouteFunction) *restful.Container {
	ws := new(restful.WebService)
	ws.Path("/test").Produces(restful.MIME_JSON)
	ws.Route(ws.GET("").To(route))

	container := restful.NewContainer()
	container.Filter(RequestID)
	container.Filter(Logger)
	container.Filter(RecoverPanic)
	container.Add(ws)
	return container
}

func TestRecoverPanic_WritesGenericError(t *testing.T) {
	container := newContainer(func(req *restful.Request, resp *restful.Response) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", recorder.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body.Error != models.ErrorMessage {
		t.Errorf("Expected generic message, got '%s'", body.Error)
	}
}

func TestRequestID(t *testing.T) {
	var seen any
	container := newContainer(func(req *restful.Request, resp *restful.Response) {
		seen = req.Attribute(AttributeRequestID)
		resp.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if seen != "abc-123" {
		t.Errorf("Expected propagated request id, got %v", seen)
	}
	if got := recorder.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("Expected response header 'abc-123', got '%s'", got)
	}

	recorder = httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))
	if recorder.Header().Get(HeaderRequestID) == "" {
		t.Error("Expected a generated request id")
	}
}
