package llm

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks . LLMClient

// LLMClient is the upstream text-generation API. One InvokeModel call is one
// upstream request; implementations must not retry.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}

// LLMRequest describes a single-message conversation: Prompt is sent as the
// only "user" message. The model is fixed per client.
type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// LLMResponse carries the text of the first content element.
type LLMResponse struct {
	Content    string
	StopReason string
}

// ErrNoContent is returned when the model answered without any content element.
var ErrNoContent = errors.New("model response has no content")
