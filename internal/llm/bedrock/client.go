package bedrock

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// DefaultModel is the Bedrock model id of the Claude model the relay targets.
const DefaultModel = "anthropic.claude-3-sonnet-20240229-v1:0"

type Client struct {
	Client  *bedrockruntime.Client
	ModelID string
}

func NewClient(ctx context.Context, region string, modelID string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("Unable to load AWS config: %w", err)
	}

	return NewClientFromConfig(cfg, modelID)
}

// NewClientFromConfig limits the runtime client to a single attempt per call.
// Only Anthropic models are accepted since requests use the Messages body.
func NewClientFromConfig(cfg aws.Config, modelID string, optFns ...func(*bedrockruntime.Options)) (*Client, error) {
	if modelID == "" {
		modelID = DefaultModel
	}
	if !isAnthropicModel(modelID) {
		return nil, fmt.Errorf("Bedrock model %s is not an Anthropic model", modelID)
	}

	optFns = append([]func(*bedrockruntime.Options){
		func(o *bedrockruntime.Options) {
			o.RetryMaxAttempts = 1
		},
	}, optFns...)

	return &Client{
		Client:  bedrockruntime.NewFromConfig(cfg, optFns...),
		ModelID: modelID,
	}, nil
}

// Matches plain ids, inference profiles (us.anthropic.claude-...) and ARNs.
func isAnthropicModel(modelID string) bool {
	return strings.Contains(modelID, "anthropic.")
}
