package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/claude-relay/internal/llm"
)

// Finish reasons are reported with the Messages API vocabulary so relay logs
// read the same whichever provider served the prompt.
var stopReasons = map[string]string{
	"stop":           "end_turn",
	"length":         "max_tokens",
	"content_filter": "refusal",
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	output, err := c.Client.Chat.Completions.New(ctx, c.chatParams(request))
	if err != nil {
		return nil, fmt.Errorf("unable to invoke %s: %w", c.ModelID, err)
	}

	if len(output.Choices) == 0 {
		return nil, llm.ErrNoContent
	}

	choice := output.Choices[0]
	return &llm.LLMResponse{
		Content:    choice.Message.Content,
		StopReason: stopReason(string(choice.FinishReason)),
	}, nil
}

// chatParams sends the prompt as the only user message of the conversation.
func (c *Client) chatParams(request llm.LLMRequest) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.ModelID),
		Messages:            []openai.ChatCompletionMessageParamUnion{openai.UserMessage(request.Prompt)},
		MaxCompletionTokens: openai.Int(int64(request.MaxTokens)),
		Temperature:         openai.Float(request.Temperature),
	}
}

func stopReason(finishReason string) string {
	if reason, ok := stopReasons[finishReason]; ok {
		return reason
	}
	return finishReason
}
