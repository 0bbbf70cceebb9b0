//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence/models"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestLanguageEnglish = "en"
	TestLanguageHindi   = "hi"
	TestLanguageSpanish = "es"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	MeetingRepo  meetings.MeetingRepository
	DocumentRepo documents.DocumentRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.MeetingModel{}, &models.DocumentModel{})
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	meetingRepo, err := NewGormMeetingRepository(db, log)
	require.NoError(t, err, "Failed to create meeting repository")

	documentRepo, err := NewGormDocumentRepository(db, log)
	require.NoError(t, err, "Failed to create document repository")

	return &TestContext{
		DB:           db,
		MeetingRepo:  meetingRepo,
		DocumentRepo: documentRepo,
	}
}

// CreateTestMeeting creates a test meeting with default values
func CreateTestMeeting(t *testing.T, title string) *meetings.MeetingMeta {
	t.Helper()

	if title == "" {
		title = "test-meeting"
	}

	return &meetings.MeetingMeta{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		Title:           title,
		Language:        TestLanguageEnglish,
		AudioName:       "note.wav",
		AudioPath:       "uploads/" + uuid.NewString() + "-note.wav",
		Size:            2048,
	}
}

// CreateTestMeetingWithOptions creates a test meeting with custom options
func CreateTestMeetingWithOptions(t *testing.T, title, language string, size int64) *meetings.MeetingMeta {
	t.Helper()

	return &meetings.MeetingMeta{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		Title:           title,
		Language:        language,
		AudioName:       "note.wav",
		AudioPath:       "uploads/" + uuid.NewString() + "-note.wav",
		Size:            size,
	}
}

// CreateTestDocument creates a test document for a meeting
func CreateTestDocument(t *testing.T, meeting *meetings.MeetingMeta, name string) *documents.DocumentMeta {
	t.Helper()

	if name == "" {
		name = "test-document.pdf"
	}

	return &documents.DocumentMeta{
		ID:              uuid.NewString(),
		MeetingID:       meeting.ID,
		DateTimeCreated: time.Now(),
		Name:            name,
		FilePath:        "exports/" + uuid.NewString() + "-" + name,
		Size:            1024,
		Format:          documents.FormatPDF,
	}
}
