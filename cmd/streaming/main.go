package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/redis"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/setup"
	applog "github.com/povarna/generative-ai-agents/claude-relay/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/stream"
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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load dependencies")
	}

	streamCfg := stream.NewStreamConfig(cfg.RedisAddr, cfg.RedisPassword, cfg.ConsumerName)

	redisClient, err := redis.Connect(ctx, redis.Options{
		Addr:     streamCfg.RedisAddr,
		Password: streamCfg.RedisPassword,
		Attempts: 5,
		Backoff:  time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	consumer := stream.NewConsumer(redisClient, streamCfg, deps.Relay, &logger)
	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("Consumer stopped with error")
	}

	log.Info().Msg("Claude relay stream worker stopped")
}
