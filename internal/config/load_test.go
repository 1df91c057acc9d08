package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies that Load fills in defaults when no environment
// variables or config file are present.
func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 3000, cfg.Server.Port, "Default server port should be 3000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, []string{"http://localhost:4200", "http://127.0.0.1:4200"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Store.SeedDemo)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TASKS_SERVER_PORT", "9090")
	t.Setenv("TASKS_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKS_SERVER_SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("TASKS_CORS_ALLOWED_ORIGINS", "https://tasks.example.com,https://admin.example.com")
	t.Setenv("TASKS_STORE_SEED_DEMO", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, 3, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, []string{"https://tasks.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Store.SeedDemo)
}

// TestLoadFromFile verifies that a config.yaml in the working directory is read
// and that environment variables override it.
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte(`server:
  port: 4000
  log_level: warn
store:
  seed_demo: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Setenv("TASKS_SERVER_LOG_LEVEL", "error")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "environment should take precedence over the file")
	assert.True(t, cfg.Store.SeedDemo)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 5050\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5050, cfg.Server.Port)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "LoadFile should fail when the file does not exist")
}

// TestLoadValidationErrors verifies that Load rejects invalid configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"TASKS_SERVER_PORT": "999999"},
		},
		{
			name:    "Zero port",
			envVars: map[string]string{"TASKS_SERVER_PORT": "0"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"TASKS_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Non-positive shutdown timeout",
			envVars: map[string]string{"TASKS_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for name, value := range tc.envVars {
				t.Setenv(name, value)
			}

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
