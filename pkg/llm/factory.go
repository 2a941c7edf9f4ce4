package llm

import (
	"fmt"
	"os"
	"strings"
)

// Factory creates LLM instances based on provider
type Factory struct{}

// NewFactory creates a new LLM factory
func NewFactory() *Factory {
	return &Factory{}
}

// Create builds an LLM instance for the given provider. An empty model
// selects the provider's default.
func (f *Factory) Create(provider Provider, apiKey, model string) (LLM, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", provider)
	}
	switch provider {
	case ProviderClaude:
		return NewClaudeWithModel(apiKey, model), nil
	case ProviderOpenAI:
		return NewOpenAIWithModel(apiKey, model), nil
	case ProviderGemini:
		return NewGeminiWithModel(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: claude, openai, gemini)", provider)
	}
}

// CreateFromEnv creates an LLM instance from environment variables.
func (f *Factory) CreateFromEnv() (LLM, error) {
	return CreateFromEnv(os.Getenv("LLM_PROVIDER"), "")
}

// GetAvailableProviders returns a list of available LLM providers
func (f *Factory) GetAvailableProviders() []Provider {
	return []Provider{ProviderClaude, ProviderOpenAI, ProviderGemini}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(provider Provider) string {
	switch provider {
	case ProviderOpenAI:
		return defaultOpenAIModel
	case ProviderGemini:
		return defaultGeminiModel
	default:
		return defaultClaudeModel
	}
}

// CreateFromEnv creates an LLM instance from environment variables, with
// optional provider/model overrides taking precedence.
func CreateFromEnv(providerOverride, modelOverride string) (LLM, error) {
	factory := &Factory{}
	provider := strings.ToLower(providerOverride)

	switch provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("OPENAI_MODEL")
		}
		return factory.Create(ProviderOpenAI, apiKey, model)

	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("GEMINI_MODEL")
		}
		return factory.Create(ProviderGemini, apiKey, model)

	case "claude", "":
		// Default to Claude when no provider is configured
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("CLAUDE_MODEL")
		}
		return factory.Create(ProviderClaude, apiKey, model)

	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s (supported: claude, openai, gemini)", provider)
	}
}
