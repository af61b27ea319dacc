package claude

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultModel is used when no model is configured for the anthropic provider.
const DefaultModel = "claude-3-sonnet-20240229"

type Client struct {
	Client  anthropic.Client
	ModelID string
}

// NewClient builds a Messages API client. SDK retries are disabled: every
// relayed prompt results in exactly one upstream request. An empty model
// selects DefaultModel.
func NewClient(apiKey string, model string, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
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
		Client:  anthropic.NewClient(requestOptions...),
		ModelID: model,
	}, nil
}
