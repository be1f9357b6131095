package llm

import (
	"context"
	"testing"
)

// clearKeyEnv blanks every credential variable so tests observe only what
// they set themselves.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"LEARNLENS_LLM_PROVIDER",
		"LEARNLENS_GEMINI_API_KEY", "LEARNLENS_GEMINI_MODEL",
		"LEARNLENS_OPENAI_API_KEY", "LEARNLENS_OPENAI_MODEL", "LEARNLENS_OPENAI_BASE_URL",
		"LEARNLENS_ANTHROPIC_API_KEY", "LEARNLENS_ANTHROPIC_MODEL",
		"LEARNLENS_OPENROUTER_API_KEY", "LEARNLENS_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearKeyEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("default gemini model = %q", cfg.Gemini.Model)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("LEARNLENS_LLM_PROVIDER", "anthropic")
	t.Setenv("LEARNLENS_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("LEARNLENS_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validate error: %v", err)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	// Gemini wins when both are present.
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("api key = %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	clearKeyEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for gemini provider without key")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should not require a key: %v", err)
	}

	cfg.Provider = "llama"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewProviderFromEnv_NoCredential(t *testing.T) {
	clearKeyEnv(t)

	if _, err := NewProviderFromEnv(context.Background(), nil); err == nil {
		t.Error("expected error with no credential configured")
	}
}

func TestNewProviderFromEnv_Mock(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("LEARNLENS_LLM_PROVIDER", "mock")

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model id = %q, want mock", p.ModelID())
	}
}
