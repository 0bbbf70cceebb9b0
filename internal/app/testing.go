//go:build integration
// +build integration

package app

import (
	"path/filepath"
	"testing"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/storage"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	// Meeting services
	MeetingUploadService   meetings.MeetingUploadService
	MeetingMetadataService meetings.MeetingMetadataService
	MeetingDownloadService meetings.MeetingDownloadService

	// Document services
	DocumentExportService   documents.DocumentExportService
	DocumentMetadataService documents.DocumentMetadataService
	DocumentDownloadService documents.DocumentDownloadService

	// Maintenance
	MaintenanceService maintenance.MaintenanceService

	// Infrastructure
	DBContext     *persistence.TestContext
	AudioStore    meetings.AudioStore
	DocumentStore documents.DocumentStore
	DataDir       string
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup file stores
	dataDir := t.TempDir()
	audioStore, err := storage.NewLocalFileStore(filepath.Join(dataDir, "uploads"), logger)
	require.NoError(t, err, "Failed to create audio store")

	documentStore, err := storage.NewLocalFileStore(filepath.Join(dataDir, "exports"), logger)
	require.NoError(t, err, "Failed to create document store")

	// Initialize meeting services
	meetingUploadService, err := NewMeetingUploadService(audioStore, dbContext.MeetingRepo, logger)
	require.NoError(t, err, "Failed to create MeetingUploadService")

	meetingMetadataService, err := NewMeetingMetadataService(
		dbContext.MeetingRepo,
		dbContext.DocumentRepo,
		audioStore,
		documentStore,
		logger,
	)
	require.NoError(t, err, "Failed to create MeetingMetadataService")

	meetingDownloadService, err := NewMeetingDownloadService(dbContext.MeetingRepo, audioStore, logger)
	require.NoError(t, err, "Failed to create MeetingDownloadService")

	// Initialize document services
	documentExportService, err := NewDocumentExportService(
		dbContext.MeetingRepo,
		dbContext.DocumentRepo,
		documentStore,
		logger,
	)
	require.NoError(t, err, "Failed to create DocumentExportService")

	documentMetadataService, err := NewDocumentMetadataService(dbContext.DocumentRepo, documentStore, logger)
	require.NoError(t, err, "Failed to create DocumentMetadataService")

	documentDownloadService, err := NewDocumentDownloadService(dbContext.DocumentRepo, documentStore, logger)
	require.NoError(t, err, "Failed to create DocumentDownloadService")

	// Initialize maintenance service
	dbSettings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}
	maintenanceService, err := NewMaintenanceService(
		dbContext.DB,
		dbSettings,
		dataDir,
		dbContext.MeetingRepo,
		dbContext.DocumentRepo,
		audioStore,
		documentStore,
		logger,
	)
	require.NoError(t, err, "Failed to create MaintenanceService")

	return &TestServices{
		MeetingUploadService:    meetingUploadService,
		MeetingMetadataService:  meetingMetadataService,
		MeetingDownloadService:  meetingDownloadService,
		DocumentExportService:   documentExportService,
		DocumentMetadataService: documentMetadataService,
		DocumentDownloadService: documentDownloadService,
		MaintenanceService:      maintenanceService,
		DBContext:               dbContext,
		AudioStore:              audioStore,
		DocumentStore:           documentStore,
		DataDir:                 dataDir,
	}
}
