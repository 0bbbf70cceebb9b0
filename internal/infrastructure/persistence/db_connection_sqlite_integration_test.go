//go:build integration
// +build integration

package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExistingDBConnection_MissingDatabase(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "meetings.db")
	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  dsn,
	}

	_, err := NewExistingDBConnection(settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not found at "+dsn)

	// No empty database file or parent directory may be left behind
	_, statErr := os.Stat(dsn)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Dir(dsn))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewExistingDBConnection_ExistingDatabase(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "meetings.db")
	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  dsn,
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE placeholder (id TEXT)").Error)
	require.NoError(t, CloseDB(db))

	db, err = NewExistingDBConnection(settings)
	require.NoError(t, err)
	require.NoError(t, CloseDB(db))
}

func TestNewExistingDBConnection_InMemory(t *testing.T) {
	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewExistingDBConnection(settings)
	require.NoError(t, err)
	require.NoError(t, CloseDB(db))
}
