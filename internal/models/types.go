package models

// ErrorMessage is the only failure text ever returned to a caller. The
// underlying cause is logged, never sent.
const ErrorMessage = "An error occurred while processing your request"

// Input message
type PromptRequest struct {
	Prompt string `json:"prompt" description:"Text sent to Claude as the single user message"`
}

// Stream transport

type PromptEvent struct {
	EventID string `json:"event_id"`
	Prompt  string `json:"prompt"`
}

type CompletionStatus string

const (
	CompletionOK    CompletionStatus = "ok"
	CompletionError CompletionStatus = "error"
)

type CompletionEvent struct {
	EventID string           `json:"event_id"`
	Status  CompletionStatus `json:"status"`
	Text    string           `json:"text,omitempty"`
	Error   string           `json:"error,omitempty"`
}
