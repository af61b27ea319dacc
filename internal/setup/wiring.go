package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/config"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm/claude"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/relay"
	"github.com/rs/zerolog"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
	ProviderOpenAI    = "openai"
)

type Config struct {
	APIKey        string
	Provider      string
	AWSRegion     string
	OpenAIKey     string
	Port          string
	LogLevel      string
	RedisAddr     string
	RedisPassword string
	ConsumerName  string
}

type Dependencies struct {
	Relay      *relay.Relay
	Generation config.GenerationConfig
	// Model is the upstream model the provider client was built with.
	Model  string
	Logger *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		APIKey:        getEnv("API_KEY", ""),
		Provider:      getEnv("LLM_PROVIDER", ProviderAnthropic),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		OpenAIKey:     getEnv("OPEN_AI_KEY", ""),
		Port:          getEnv("RELAY_API_PORT", "3000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		ConsumerName:  getEnv("HOSTNAME", "relay-"+uuid.NewString()[:8]),
	}
}

// Wire builds the single upstream client shared by every request.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	generation, err := config.LoadGenerationConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load generation config: %w", err)
	}

	llmClient, model, err := createLLMClient(ctx, cfg, generation.Model(cfg.Provider))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	logger.Info().
		Str("provider", cfg.Provider).
		Str("model", model).
		Int("max_tokens", generation.MaxTokens).
		Float64("temperature", generation.TemperatureValue()).
		Msg("Upstream client initialized")

	return &Dependencies{
		Relay:      relay.NewRelay(llmClient, generation, logger),
		Generation: generation,
		Model:      model,
		Logger:     logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

// createLLMClient returns the client and the model it resolved. An empty
// model leaves the choice to the provider's default.
func createLLMClient(ctx context.Context, cfg *Config, model string) (llm.LLMClient, string, error) {
	switch cfg.Provider {
	case ProviderAnthropic:
		client, err := claude.NewClient(cfg.APIKey, model)
		if err != nil {
			return nil, "", err
		}
		return client, client.ModelID, nil
	case ProviderBedrock:
		client, err := bedrock.NewClient(ctx, cfg.AWSRegion, model)
		if err != nil {
			return nil, "", err
		}
		return client, client.ModelID, nil
	case ProviderOpenAI:
		client, err := gpt.NewClient(cfg.OpenAIKey, model)
		if err != nil {
			return nil, "", err
		}
		return client, client.ModelID, nil
	default:
		return nil, "", fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
