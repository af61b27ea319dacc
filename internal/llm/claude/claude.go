package claude

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm"
)

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.ModelID),
		MaxTokens:   int64(request.MaxTokens),
		Temperature: anthropic.Float(request.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(request.Prompt)),
		},
	}

	message, err := c.Client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke claude model: %w", err)
	}

	if len(message.Content) == 0 {
		return nil, llm.ErrNoContent
	}

	return &llm.LLMResponse{
		Content:    message.Content[0].Text,
		StopReason: string(message.StopReason),
	}, nil
}
