//go:build unit
// +build unit

package logger

import (
	"testing"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Console(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	log, err := newLogger(settings)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleLogger{}, log)
}

func TestNewLogger_File(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel:   config.LogLevelDebug,
		LogType:    config.LogTypeFile,
		FilePath:   t.TempDir() + "/app.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	log, err := newLogger(settings)
	require.NoError(t, err)
	assert.IsType(t, &FileLogger{}, log)
}

func TestNewLogger_InvalidSettings(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  "invalid",
	}

	_, err := newLogger(settings)
	require.Error(t, err)
}

func TestInitLoggerAndGetLogger(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)
	require.NotNil(t, log)

	// Initialization is idempotent
	require.NoError(t, InitLogger(settings))
	again, err := GetLogger()
	require.NoError(t, err)
	assert.Equal(t, log, again)
}
