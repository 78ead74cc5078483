package llm

import (
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QUIZFORGE_LLM_PROVIDER",
		"QUIZFORGE_ANTHROPIC_API_KEY", "QUIZFORGE_ANTHROPIC_MODEL",
		"QUIZFORGE_OPENAI_API_KEY", "QUIZFORGE_OPENAI_MODEL", "QUIZFORGE_OPENAI_BASE_URL",
		"QUIZFORGE_GEMINI_API_KEY", "QUIZFORGE_GEMINI_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("default provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("default anthropic model = %q", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default retry attempts = %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("QUIZFORGE_LLM_PROVIDER", "openai")
	t.Setenv("QUIZFORGE_OPENAI_API_KEY", "sk-test")
	t.Setenv("QUIZFORGE_OPENAI_MODEL", "gpt-4o")
	t.Setenv("QUIZFORGE_OPENAI_BASE_URL", "http://localhost:8080/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("base URL = %q", cfg.OpenAI.BaseURL)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "ant-key")
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("discovery found nothing")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini to win discovery", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "gem-key" {
		t.Errorf("gemini key = %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Error("discovery succeeded with no keys set")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"claude-haiku": "claude-haiku-4-5-20251001"}
	if got := resolveModel("claude-haiku", models); got != "claude-haiku-4-5-20251001" {
		t.Errorf("friendly name resolved to %q", got)
	}
	if got := resolveModel("claude-custom-123", models); got != "claude-custom-123" {
		t.Errorf("direct ID mangled to %q", got)
	}
}
