package configs

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, uint16(8000), cfg.HTTP.Port)
	assert.Equal(t, "sovereign.db", cfg.Database.Path)
	assert.Equal(t, "https://en.wikipedia.org/api/rest_v1", cfg.Encyclopedia.BaseURL)
	assert.Equal(t, DefaultUserAgent, cfg.Encyclopedia.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.Encyclopedia.Timeout)
	assert.Equal(t, DefaultWorldContext, cfg.Mission.WorldContext)
	assert.Equal(t, "zap", cfg.Logger.Logger)
	assert.True(t, cfg.RateLimiter.Enabled)
	assert.Empty(t, cfg.Messaging.URI)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: 9090
database:
  path: /tmp/vault.db
encyclopedia:
  timeout: 2s
logger:
  logger: zerolog
`), 0o600))

	t.Setenv("SOVEREIGN_DB_PATH", "/data/override.db")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "/data/override.db", cfg.Database.Path)
	assert.Equal(t, 2*time.Second, cfg.Encyclopedia.Timeout)
	assert.Equal(t, "zerolog", cfg.Logger.Logger)
	assert.False(t, cfg.RateLimiter.Enabled)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("ENCYCLOPEDIA_TIMEOUT", "soon")

	_, err := Load("")
	assert.Error(t, err)
}

func TestDetermineConfigPathPrefersFlag(t *testing.T) {
	t.Setenv("SOVEREIGN_CONFIG", "/from/env.yaml")

	path, err := DetermineConfigPath(flag.NewFlagSet("test", flag.ContinueOnError), []string{"--config", "/from/flag.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.yaml", path)

	path, err = DetermineConfigPath(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.yaml", path)
}
