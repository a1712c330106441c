package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one provider.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig controls backoff between attempts.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 45 * time.Second,
	}
}

// envOverrides maps VARNAMALA_* variables onto config fields.
func envOverrides(cfg *Config) map[string]*string {
	return map[string]*string{
		"VARNAMALA_LLM_PROVIDER":       &cfg.Provider,
		"VARNAMALA_ANTHROPIC_API_KEY":  &cfg.Anthropic.APIKey,
		"VARNAMALA_ANTHROPIC_MODEL":    &cfg.Anthropic.Model,
		"VARNAMALA_OPENAI_API_KEY":     &cfg.OpenAI.APIKey,
		"VARNAMALA_OPENAI_MODEL":       &cfg.OpenAI.Model,
		"VARNAMALA_OPENAI_BASE_URL":    &cfg.OpenAI.BaseURL,
		"VARNAMALA_GEMINI_API_KEY":     &cfg.Gemini.APIKey,
		"VARNAMALA_GEMINI_MODEL":       &cfg.Gemini.Model,
		"VARNAMALA_OPENROUTER_API_KEY": &cfg.OpenRouter.APIKey,
		"VARNAMALA_OPENROUTER_MODEL":   &cfg.OpenRouter.Model,
	}
}

// ConfigFromEnv applies VARNAMALA_* overrides to the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for name, field := range envOverrides(&cfg) {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
	return cfg
}

// HasExplicitProvider reports whether VARNAMALA_LLM_PROVIDER is set.
func HasExplicitProvider() bool {
	return os.Getenv("VARNAMALA_LLM_PROVIDER") != ""
}

// DiscoverConfig looks for a well-known vendor API key, in the order
// Gemini, OpenAI, Anthropic, OpenRouter, and configures that provider.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig prefers explicit VARNAMALA_* settings and falls back to
// discovery. ok is false when no provider could be configured.
func ResolveConfig() (Config, bool) {
	if HasExplicitProvider() {
		return ConfigFromEnv(), true
	}
	return DiscoverConfig()
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "VARNAMALA_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "VARNAMALA_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "VARNAMALA_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "VARNAMALA_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
