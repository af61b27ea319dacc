package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/api"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/metrics"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/setup"
	applog "github.com/povarna/generative-ai-agents/claude-relay/internal/setup/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()
	logger := applog.Console(cfg.LogLevel)
	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	deps, err := setup.Wire(context.Background(), cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(registry)

	// API
	handler := api.NewHandler(deps.Relay, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.RequestID)
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)
	api.RegisterOpenAPI(container)
	container.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("address", addr).Msg("Server running")

	server := http.Server{
		Addr:        addr,
		Handler:     api.WithCORS(container),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}

}
