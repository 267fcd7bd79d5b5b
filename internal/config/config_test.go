package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	for _, key := range []string{"OPENAI_API_KEY", "ASSISTANT_PROVIDER", "ASSISTANT_TIMEOUT", "REDIS_URL", "METRICS_ADDR", "SESSION_ID", "LOG_LEVEL", "LOG_ENCODING", "GITHUB_REPO", "GITHUB_PATH"} {
		t.Setenv(key, "")
	}
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "aegis", cfg.Session.ID)
	assert.Equal(t, "gemini", cfg.Assistant.Provider)
	assert.Equal(t, "gemini-key", cfg.Assistant.APIKey())
	assert.Equal(t, 60*time.Second, cfg.Assistant.Timeout)
	assert.Equal(t, "dandmin/DnDApp", cfg.GitHub.Repository)
	assert.Equal(t, "aegis_data.json", cfg.GitHub.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ASSISTANT_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("ASSISTANT_TIMEOUT", "5s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_ID", "campaign-2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "openai-key", cfg.Assistant.APIKey())
	assert.Equal(t, 5*time.Second, cfg.Assistant.Timeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "campaign-2", cfg.Session.ID)
}

func TestLoad_Required(t *testing.T) {
	tests := []struct {
		name     string
		unset    string
		provider string
		expected string
	}{
		{name: "discord token", unset: "DISCORD_TOKEN", expected: "DISCORD_TOKEN is required"},
		{name: "app id", unset: "DISCORD_APP_ID", expected: "DISCORD_APP_ID is required"},
		{name: "gemini key", unset: "GEMINI_API_KEY", expected: "GEMINI_API_KEY is required"},
		{name: "openai key", provider: "openai", expected: "OPENAI_API_KEY is required"},
		{name: "unknown provider", provider: "llama", expected: "ASSISTANT_PROVIDER must be gemini or openai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			if tt.unset != "" {
				t.Setenv(tt.unset, "")
			}
			if tt.provider != "" {
				t.Setenv("ASSISTANT_PROVIDER", tt.provider)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}
