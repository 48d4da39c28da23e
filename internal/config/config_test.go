package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pagardi95/ironunicorn/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
log_level = "debug"
storage_backend = "sqlite"
storage_path = "/tmp/unicorn-dev"
avatar_mode = "generate"
generation_base_delay = "10ms"
batch_delay = "1s"
metrics_port = 9091

[production]
log_level = "warn"
storage_backend = "redis"
redis_host = "redis.internal"
avatar_mode = "static"
static_strategy = "stage"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	path := writeConfig(t, testToml)

	cfg, err := config.Load("dev", path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sqlite", cfg.StorageBackend)
	assert.Equal(t, "/tmp/unicorn-dev", cfg.StoragePath)
	assert.Equal(t, "generate", cfg.AvatarMode)
	assert.Equal(t, 10*time.Millisecond, cfg.GenerationBaseDelay)
	assert.Equal(t, time.Second, cfg.BatchDelay)
	assert.Equal(t, 9091, cfg.MetricsPort)

	// defaults
	assert.Equal(t, "unicorn_stats", cfg.StorageSlot)
	assert.Equal(t, "per_level", cfg.StaticStrategy)
	assert.Equal(t, 4, cfg.GenerationMaxAttempts)
	assert.Equal(t, 2.0, cfg.GenerationMultiplier)
	assert.Equal(t, 32, cfg.AvatarCacheMB)
}

func TestLoad_Production(t *testing.T) {
	path := writeConfig(t, testToml)

	cfg, err := config.Load("production", path)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.StorageBackend)
	assert.Equal(t, "redis.internal", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "stage", cfg.StaticStrategy)
	assert.Equal(t, 3*time.Second, cfg.GenerationBaseDelay)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("dev", "/invalid/path/config.toml")
	assert.Error(t, err)

	path := writeConfig(t, testToml)
	_, err = config.Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")

	path = writeConfig(t, "[production]\nlog_level = \"info\"\n")
	_, err = config.Load("dev", path)
	assert.ErrorContains(t, err, "missing")

	path = writeConfig(t, "[development]\nstorage_backend = \"postgres\"\n")
	_, err = config.Load("dev", path)
	assert.ErrorContains(t, err, "validate config")

	path = writeConfig(t, "[development]\navatar_mode = \"dream\"\n")
	_, err = config.Load("dev", path)
	assert.ErrorContains(t, err, "AvatarMode")
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "file", cfg.StorageBackend)
	assert.Equal(t, "static", cfg.AvatarMode)
	assert.Equal(t, time.Second, cfg.BatchDelay)
	assert.Equal(t, time.Hour, cfg.AvatarCacheTTL)
}
