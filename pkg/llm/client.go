// Package llm provides the client for the LLM sidecar service used for
// orchestrator-internal model calls: the judge assessor and the code
// reviewer. Agent task execution goes through the agent runtime instead and
// never touches this client.
package llm

import "context"

// CompleteInput is a single-shot completion request.
type CompleteInput struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// Completion is the sidecar's answer plus token accounting.
type Completion struct {
	Content      string
	ModelUsed    string
	InputTokens  int
	OutputTokens int
}

// Client performs completions against a model backend.
type Client interface {
	Complete(ctx context.Context, input *CompleteInput) (*Completion, error)
	Close() error
}
