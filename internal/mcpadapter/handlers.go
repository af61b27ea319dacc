package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/models"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/relay"
	"github.com/rs/zerolog"
)

const ToolName = "ask_claude"

// AskInput is the MCP tool input schema (matches the HTTP API field name).
type AskInput struct {
	Prompt string `json:"prompt" jsonschema:"text sent to Claude as the single user message"`
}

type AskOutput struct {
	Text string `json:"text" jsonschema:"generated completion"`
}

// NewServer builds an MCP server exposing the relay as a single tool.
func NewServer(r *relay.Relay, logger *zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "claude-relay",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolName,
		Description: "Send a prompt to Claude and return the generated text",
	}, NewAskHandler(r, logger))

	return server
}

// NewAskHandler returns a tool handler that uses the given relay.
// Pass the returned function to mcp.AddTool.
func NewAskHandler(r *relay.Relay, logger *zerolog.Logger) func(context.Context, *mcp.CallToolRequest, AskInput) (*mcp.CallToolResult, AskOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, AskOutput, error) {
		return Ask(ctx, r, logger, input)
	}
}

// Ask relays the prompt. Failures are reported as a tool error carrying the
// generic message only.
func Ask(ctx context.Context, r *relay.Relay, logger *zerolog.Logger, input AskInput) (*mcp.CallToolResult, AskOutput, error) {
	text, err := r.Complete(ctx, input.Prompt)
	if err != nil {
		logger.Error().Err(err).Str("tool", ToolName).Msg("Error calling Claude")
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: models.ErrorMessage}},
		}, AskOutput{}, nil
	}

	return nil, AskOutput{Text: text}, nil
}
