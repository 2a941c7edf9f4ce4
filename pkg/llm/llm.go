package llm

import "context"

// Provider represents the LLM provider type
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// Usage carries the provider's token accounting when it reports one.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

func (u Usage) TotalTokens() int64 {
	return u.InputTokens + u.OutputTokens
}

// Completion is the raw response produced by a provider for one prompt.
type Completion struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   *Usage `json:"usage,omitempty"`
}

// LLM is the contract every completion provider satisfies. The context
// carries the caller's timeout; a deadline hit is an ordinary failure cause.
type LLM interface {
	Complete(ctx context.Context, prompt string) (*Completion, error)
	Model() string
}
