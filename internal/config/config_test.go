package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DATA_DIR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, filepath.Join(home, ".aimind"), cfg.Data.Dir)
	assert.Equal(t, filepath.Join(home, ".aimind", "config.json"), cfg.Data.ConfigPath())
	assert.Equal(t, time.Duration(0), cfg.LLM.Timeout)
	assert.Equal(t, 10, cfg.Files.MaxRecent)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("FILES_MAX_RECENT", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.Equal(t, dir, cfg.Data.Dir)
	assert.Equal(t, filepath.Join(dir, "aimind.db"), cfg.Data.DBPath())
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 4, cfg.Files.MaxRecent)
}

func TestLoadConfig_File(t *testing.T) {
	content := `
server:
  port: "7000"
  cors_origins:
    - "http://localhost:5173"
log:
  level: debug
llm:
  timeout: 2m
`
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2*time.Minute, cfg.LLM.Timeout)
}

func TestLoadConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
	t.Setenv(ConfigFileEnv, path)

	_, err := LoadConfig()
	assert.Error(t, err)
}
