package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"catalog/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_PORT", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT", "CATALOG_STATS_SCHEDULE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "@every 5m", cfg.StatsSchedule)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddress())
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	// Given
	clearEnv(t)
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("HTTP_PORT=9090\nLOG_FORMAT=console\nSHUTDOWN_TIMEOUT=3s\nCATALOG_STATS_SCHEDULE=off\n"), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	// When
	cfg, err := cmd.LoadConfig(file)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.StatsSchedule)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_PORT", "http")

		_, err := cmd.LoadConfig()

		require.Error(t, err)
	})

	t.Run("shutdown timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := cmd.LoadConfig()

		require.Error(t, err)
	})
}
