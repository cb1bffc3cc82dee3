package coach

import "context"

// Prompt is the message set for one completion call. Role ordering is part of
// the contract: System (when non-empty) precedes User.
type Prompt struct {
	System      string
	User        string
	Temperature float64
}

// LLMClient abstracts the completion service so the agent and its tests never
// depend on a concrete vendor SDK.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the base configuration handed to concrete implementations.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
