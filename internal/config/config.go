package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Session   SessionConfig
	Redis     RedisConfig
	Assistant AssistantConfig
	GitHub    GitHubConfig
	DND5E     DND5EConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
	OwnerID string `env:"DISCORD_OWNER_ID"` // Optional: only this user may change the sheet
}

// SessionConfig names the one session the bot serves
type SessionConfig struct {
	ID string `env:"SESSION_ID" envDefault:"aegis"`
}

// RedisConfig holds Redis-specific configuration. Empty URL means in-memory storage.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// AssistantConfig selects the language model provider
type AssistantConfig struct {
	Provider     string        `env:"ASSISTANT_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	OpenAIAPIKey string        `env:"OPENAI_API_KEY"`
	Model        string        `env:"ASSISTANT_MODEL"`
	BaseURL      string        `env:"ASSISTANT_BASE_URL"`
	Timeout      time.Duration `env:"ASSISTANT_TIMEOUT" envDefault:"60s"`
}

// APIKey returns the key of the selected provider
func (a AssistantConfig) APIKey() string {
	if strings.EqualFold(a.Provider, "openai") {
		return a.OpenAIAPIKey
	}
	return a.GeminiAPIKey
}

// GitHubConfig locates the saved sheet document
type GitHubConfig struct {
	Token      string        `env:"GITHUB_TOKEN"`
	Repository string        `env:"GITHUB_REPO" envDefault:"dandmin/DnDApp"`
	Path       string        `env:"GITHUB_PATH" envDefault:"aegis_data.json"`
	Branch     string        `env:"GITHUB_BRANCH"`
	Timeout    time.Duration `env:"GITHUB_TIMEOUT" envDefault:"30s"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Timeout time.Duration `env:"DND5E_TIMEOUT" envDefault:"10s"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level    string `env:"LOG_LEVEL" envDefault:"info"`
	Encoding string `env:"LOG_ENCODING" envDefault:"json"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr string `env:"METRICS_ADDR"`
}

// Load loads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the bot cannot start without
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}

	switch strings.ToLower(c.Assistant.Provider) {
	case "gemini":
		if c.Assistant.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	case "openai":
		if c.Assistant.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("ASSISTANT_PROVIDER must be gemini or openai, got %q", c.Assistant.Provider)
	}

	if c.Session.ID == "" {
		return fmt.Errorf("SESSION_ID cannot be empty")
	}

	return nil
}
