package api

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/models"
	"github.com/rs/cors"
)

const OpenAPIPath = "/api/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	// Any content type is accepted; see readPromptRequest.
	ws.
		Path("/api").
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/claude").
			To(handler.Claude).
			Doc("Relay a prompt to Claude and return the generated text").
			Metadata(restfulspec.KeyOpenAPITags, []string{"claude"}).
			Reads(models.PromptRequest{}).
			Writes("").
			Returns(200, "Generated text as a JSON string", "").
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Claude Relay API",
			Description: "Relays a prompt to Claude and returns the completion",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "claude", Description: "Prompt relay"}},
	}
}

// WithCORS allows cross-origin calls from any origin.
func WithCORS(handler http.Handler) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return corsHandler.Handler(handler)
}
