package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm"
)

// Bedrock accepts the Anthropic Messages body, with the API version moved
// into the payload in place of the anthropic-version header.
const anthropicVersion = "bedrock-2023-05-31"

type messagesRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	Messages         []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func newMessagesRequest(request llm.LLMRequest) messagesRequest {
	return messagesRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		Messages:         []message{{Role: "user", Content: request.Prompt}},
	}
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	body, err := json.Marshal(newMessagesRequest(request))
	if err != nil {
		return nil, fmt.Errorf("unable to encode messages request: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to invoke %s: %w", c.ModelID, err)
	}

	var response messagesResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", c.ModelID, err)
	}
	if len(response.Content) == 0 {
		return nil, llm.ErrNoContent
	}

	return &llm.LLMResponse{
		Content:    response.Content[0].Text,
		StopReason: response.StopReason,
	}, nil
}
