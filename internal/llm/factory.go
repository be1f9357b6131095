package llm

import (
	"context"
	"fmt"

	"github.com/learnlens/learnlens/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging. Calls are single-attempt: a failed generation surfaces to the
// component boundary, where the deterministic fallback takes over.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Telemetry is optional; a nil repo means the store is unavailable.
	if events != nil {
		base = WithLogging(base, events)
	}
	return base, nil
}

// NewProviderFromEnv builds a Provider from the environment: explicit
// LEARNLENS_* configuration first, then discovery of plain key vars.
// Returns an error when no credential is present; the caller decides
// whether to run degraded.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return NewProvider(ctx, cfg, events)
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no generative-service API key configured")
	}
	return NewProvider(ctx, discovered, events)
}

// resolveModel maps a friendly model name to the provider's model ID,
// passing through unknown names unchanged.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
