package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	path := writeConfig(t, `
apps:
  log_level: "debug"
  rest:
    port: 8080
    allowed_origin: "http://localhost:5173"
storage:
  users:
    type: "in-memory"
  rooms:
    type: "in-memory"
`)

	config, err := ParseConfig(path, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Apps.LogLevel)
	assert.Equal(t, 8080, config.Apps.Rest.Port)
	assert.Equal(t, "http://localhost:5173", config.Apps.Rest.AllowedOrigin)
	assert.Equal(t, "in-memory", config.Storage.Users.Type)
	assert.Equal(t, "in-memory", config.Storage.Rooms.Type)
}

func TestParseConfigDefaultPort(t *testing.T) {
	path := writeConfig(t, `
apps:
  log_level: "info"
`)

	config, err := ParseConfig(path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3000, config.Apps.Rest.Port)
}

func TestParseConfigPortFromEnv(t *testing.T) {
	path := writeConfig(t, `
apps:
  rest:
    port: 8080
`)
	t.Setenv("PORT", "9090")

	config, err := ParseConfig(path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 9090, config.Apps.Rest.Port)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop())
	assert.Error(t, err)
}
