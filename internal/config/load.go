package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Environment variables use the UISMITH_ prefix
// with underscores separating sections, e.g. UISMITH_SERVER_PORT or
// UISMITH_LLM_GROQ_API_KEY. Returns a populated Config or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. Registering a default also registers the key so that
	// AutomaticEnv can resolve it during Unmarshal.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.url", "")
	v.SetDefault("database.migrations_dir", "migrations")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("llm.provider", "groq")
	v.SetDefault("llm.groq_api_key", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.anthropic_api_key", "")
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.max_output_tokens", 0)
	v.SetDefault("export.dir", "")

	v.SetEnvPrefix("UISMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// The key for the selected provider is required; keys for inactive
	// providers may be absent.
	if err := validateProviderKey(cfg.LLM); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateProviderKey checks that the API key matching the configured
// provider is present.
func validateProviderKey(cfg LLMConfig) error {
	var key string
	switch cfg.Provider {
	case "groq":
		key = cfg.GroqAPIKey
	case "gemini":
		key = cfg.GeminiAPIKey
	case "anthropic":
		key = cfg.AnthropicAPIKey
	}
	if key == "" {
		return fmt.Errorf("configuration validation failed: llm provider %q requires its API key to be set", cfg.Provider)
	}
	return nil
}
