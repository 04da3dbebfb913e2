package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	Export   ExportConfig   `mapstructure:"export"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	// MigrationsDir is the directory containing goose SQL migration files,
	// resolved relative to the server's working directory.
	MigrationsDir string `mapstructure:"migrations_dir" validate:"required"`
}

// AuthConfig contains the settings for the token-validation boundary.
// Credential handling (signup, login, password storage) lives in an
// external service that shares the same signing secret.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// LLMConfig contains all completion-provider related settings.
// Provider selects which backend the server talks to; exactly one
// provider is active per deployment and its API key must be set.
type LLMConfig struct {
	Provider        string `mapstructure:"provider" validate:"required,oneof=groq gemini anthropic"`
	GroqAPIKey      string `mapstructure:"groq_api_key"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`

	// ModelName overrides the provider's default model when non-empty.
	ModelName string `mapstructure:"model_name"`

	// MaxOutputTokens caps the completion length for providers that
	// require an explicit limit. Zero means the provider default.
	MaxOutputTokens int `mapstructure:"max_output_tokens" validate:"gte=0"`
}

// ExportConfig contains settings for the component export path.
type ExportConfig struct {
	// Dir is the parent directory for per-export temporary workspaces.
	// Empty means the operating system's temp directory.
	Dir string `mapstructure:"dir"`
}
