package llm

import (
	"context"
	"fmt"

	"github.com/avishek/quizy/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// logging and retry decorators: caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, log store.RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: cfg.OpenRouter.BaseURL,
		})
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var p Provider = base
	if log != nil {
		p = WithLogging(p, cfg.Provider, log)
	}
	return WithRetry(p, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from QUIZY_* env vars, falling back
// to discovery of the standard GEMINI_API_KEY / OPENAI_API_KEY /
// ANTHROPIC_API_KEY / OPENROUTER_API_KEY variables.
func NewProviderFromEnv(ctx context.Context, log store.RequestLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
