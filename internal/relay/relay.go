package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/claude-relay/internal/config"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/metrics"
	"github.com/rs/zerolog"
)

type Relay struct {
	client     llm.LLMClient
	generation config.GenerationConfig
	logger     *zerolog.Logger
}

func NewRelay(client llm.LLMClient, generation config.GenerationConfig, logger *zerolog.Logger) *Relay {
	return &Relay{
		client:     client,
		generation: generation,
		logger:     logger,
	}
}

// Complete sends prompt as the single user message of a new conversation and
// returns the text of the first content element. The prompt is forwarded
// unchanged, empty or not; rejecting it is up to the upstream model.
func (r *Relay) Complete(ctx context.Context, prompt string) (string, error) {
	request := llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   r.generation.MaxTokens,
		Temperature: r.generation.TemperatureValue(),
	}

	start := time.Now()
	metrics.UpstreamStart()

	response, err := r.client.InvokeModel(ctx, request)
	elapsed := time.Since(start)
	metrics.UpstreamEnd(err == nil, elapsed)

	if err != nil {
		r.logger.Error().
			Err(err).
			Dur("elapsed", elapsed).
			Msg("Error calling Claude")
		return "", fmt.Errorf("relay prompt: %w", err)
	}

	r.logger.Debug().
		Str("stop_reason", response.StopReason).
		Dur("elapsed", elapsed).
		Msg("Completion received")

	return response.Content, nil
}
