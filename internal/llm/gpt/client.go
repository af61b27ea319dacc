package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when no model is configured for the openai provider.
const DefaultModel = "gpt-4o-mini"

type Client struct {
	Client  openai.Client
	ModelID string
}

// NewClient builds a chat completions client with SDK retries disabled.
func NewClient(apiKey string, model string, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	requestOptions := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	requestOptions = append(requestOptions, opts...)

	return &Client{
		Client:  openai.NewClient(requestOptions...),
		ModelID: model,
	}, nil
}
