package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "0.0.0.0"

database:
  url: "postgres://localhost:5432/creatorhub?sslmode=disable"
  enabled: true

redis:
  addr: "localhost:6380"
  enabled: true
  ttl_hours: 6

openai:
  api_key: "test-api-key"
  model: "gpt-4o-mini"
  timeout_seconds: 45
  max_retries: 3

feeds:
  enabled: true
  max_items: 5
  niche_feeds:
    tech:
      - "https://example.com/tech.xml"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://localhost:5432/creatorhub?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns) // default

	assert.Equal(t, "localhost:6380", cfg.Redis.Addr)
	assert.Equal(t, 6, cfg.Redis.TTLHours)

	assert.Equal(t, "test-api-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 45, cfg.OpenAI.TimeoutSeconds)
	assert.Equal(t, 3, cfg.OpenAI.MaxRetries)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL) // default

	assert.True(t, cfg.Feeds.Enabled)
	assert.Equal(t, 5, cfg.Feeds.MaxItems)
	assert.Equal(t, []string{"https://example.com/tech.xml"}, cfg.Feeds.NicheFeeds["tech"])
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 0\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 24, cfg.Redis.TTLHours)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, 60, cfg.OpenAI.TimeoutSeconds)
	assert.Equal(t, "creatorhub_session", cfg.Auth.CookieName)
	assert.Equal(t, 86400, cfg.Auth.CookieMaxAge)
	assert.Equal(t, "us-east-1", cfg.Storage.AWSRegion)
	assert.Equal(t, 30, cfg.Feeds.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Feeds.MaxItems)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 8080\n"), 0644))

	t.Setenv("DATABASE_URL", "postgres://env-host:5432/creatorhub")
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("BILLING_WEBHOOK_SECRET", "whsec_test")

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-host:5432/creatorhub", cfg.Database.URL)
	assert.True(t, cfg.Database.Enabled) // enabled implicitly by DATABASE_URL
	assert.Equal(t, "env-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "whsec_test", cfg.Billing.WebhookSecret)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadFromEnvMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromEnv("/nonexistent/config.yaml")
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "creatorhub_session", cfg.Auth.CookieName)
}
