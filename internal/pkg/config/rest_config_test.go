//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `
port: "8000"
database:
  type: "sqlite"
  dsn: "data/meetings.db"
storage:
  data_dir: "data"
  upload_dir: "uploads"
  export_dir: "exports"
logger:
  log_level: "info"
  log_type: "console"
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "exports", cfg.Storage.ExportDir)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

func TestInitializeRestConfig_DefaultsApplied(t *testing.T) {
	// Minimal file: every other setting comes from defaults
	path := writeConfigFile(t, "port: \"9000\"\n")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "data/meetings.db", cfg.Database.DSN)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "exports", cfg.Storage.ExportDir)
	assert.Equal(t, 50, cfg.Storage.MaxUploadMB)
	assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
}

func TestInitializeRestConfig_PortEnvOverride(t *testing.T) {
	path := writeConfigFile(t, "port: \"8000\"\n")

	t.Setenv("PORT", "8080")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestInitializeRestConfig_InvalidSettings(t *testing.T) {
	path := writeConfigFile(t, `
database:
  type: "mysql"
  dsn: "whatever"
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
}

func TestInitializeCliConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := InitializeCliConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "data/meetings.db", cfg.Database.DSN)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
}
