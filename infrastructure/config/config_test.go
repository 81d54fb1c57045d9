package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "https://api.figma.com", cfg.FigmaBaseURL)
	assert.Equal(t, 30, cfg.FetchTimeoutSeconds)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("FIGMA_BASE_URL", "https://figma.internal.example.com")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "https://figma.internal.example.com", cfg.FigmaBaseURL)
	assert.Equal(t, 5, cfg.FetchTimeoutSeconds)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_YAMLFileWithEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server_address: \":7070\"\nlog_level: warn\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddress)
	// Environment wins over the file.
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfig_ProductionRequiresToken(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIGMA_TOKEN")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	cfg, err := LoadConfig()

	assert.Nil(t, cfg)
	assert.Error(t, err)
}
