package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "0.0.0.0"

database:
  enabled: true
  url: "postgres://localhost:5432/mailprism?sslmode=disable"

redis:
  enabled: true
  addr: "localhost:6380"
  ttl_minutes: 15

bedrock:
  enabled: true
  region: "us-west-2"

classifier:
  min_keyword_score: 6
  ambiguity_ratio: 0.8
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://localhost:5432/mailprism?sslmode=disable", cfg.Database.URL)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr)
	assert.Equal(t, 15, cfg.Redis.TTLMinutes)

	assert.True(t, cfg.Bedrock.Enabled)
	assert.Equal(t, "us-west-2", cfg.Bedrock.Region)
	// Model ID not given in the file, default applies
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", cfg.Bedrock.ModelID)

	assert.Equal(t, 6, cfg.Classifier.MinKeywordScore)
	assert.Equal(t, 0.8, cfg.Classifier.AmbiguityRatio)
}

func TestLoadDefaults(t *testing.T) {
	// Create a minimal config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: {}\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Verify defaults are applied
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 60, cfg.Redis.TTLMinutes)
	assert.Equal(t, "us-east-1", cfg.Bedrock.Region)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Bedrock.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: {}\n"), 0644))

	t.Setenv("DATABASE_URL", "postgres://env-host:5432/envdb")
	t.Setenv("REDIS_ADDR", "env-redis:6379")
	t.Setenv("BEDROCK_MODEL_ID", "anthropic.claude-3-5-haiku-20241022-v1:0")

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	// Environment variables should override file values
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://env-host:5432/envdb", cfg.Database.URL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "env-redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "anthropic.claude-3-5-haiku-20241022-v1:0", cfg.Bedrock.ModelID)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestTTL(t *testing.T) {
	cfg := RedisConfig{TTLMinutes: 45}
	assert.Equal(t, 45*time.Minute, cfg.TTL())
}
