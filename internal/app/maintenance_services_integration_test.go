//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence/models"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/storage"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// setupFileBackedMaintenance wires a maintenance service against a file-backed
// sqlite database so size, integrity and backup paths can be exercised.
func setupFileBackedMaintenance(t *testing.T) (maintenance.MaintenanceService, *persistence.TestContext, string) {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	dataDir := t.TempDir()
	dbSettings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  filepath.Join(dataDir, "meetings.db"),
	}

	db, err := persistence.NewDBConnection(dbSettings)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = persistence.CloseDB(db)
	})

	err = db.AutoMigrate(&models.MeetingModel{}, &models.DocumentModel{})
	require.NoError(t, err)

	meetingRepo, err := persistence.NewGormMeetingRepository(db, logger)
	require.NoError(t, err)

	documentRepo, err := persistence.NewGormDocumentRepository(db, logger)
	require.NoError(t, err)

	audioStore, err := storage.NewLocalFileStore(filepath.Join(dataDir, "uploads"), logger)
	require.NoError(t, err)

	documentStore, err := storage.NewLocalFileStore(filepath.Join(dataDir, "exports"), logger)
	require.NoError(t, err)

	service, err := NewMaintenanceService(db, dbSettings, dataDir, meetingRepo, documentRepo, audioStore, documentStore, logger)
	require.NoError(t, err)

	dbContext := &persistence.TestContext{
		DB:           db,
		MeetingRepo:  meetingRepo,
		DocumentRepo: documentRepo,
	}
	return service, dbContext, dataDir
}

func TestMaintenanceService_Check_FileBacked_Success(t *testing.T) {
	service, dbContext, _ := setupFileBackedMaintenance(t)

	ctx := context.Background()

	meeting := persistence.CreateTestMeeting(t, "Daily standup")
	err := dbContext.MeetingRepo.Create(ctx, meeting)
	require.NoError(t, err)

	status, err := service.Check(ctx)
	require.NoError(t, err)
	require.Greater(t, status.SizeBytes, int64(0))
	require.Equal(t, int64(1), status.MeetingCount)
	require.Equal(t, int64(0), status.DocumentCount)
	require.Equal(t, "ok", status.Integrity)
}

func TestMaintenanceService_Check_InMemory_SkipsIntegrity(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	ctx := context.Background()

	status, err := services.MaintenanceService.Check(ctx)
	require.NoError(t, err)
	require.Equal(t, "not applicable", status.Integrity)
	require.Equal(t, int64(0), status.SizeBytes)
}

func TestMaintenanceService_Backup_Success(t *testing.T) {
	service, dbContext, dataDir := setupFileBackedMaintenance(t)

	ctx := context.Background()

	meeting := persistence.CreateTestMeeting(t, "Daily standup")
	err := dbContext.MeetingRepo.Create(ctx, meeting)
	require.NoError(t, err)

	backupPath, err := service.Backup(ctx)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dataDir, "backups"), filepath.Dir(backupPath))
	require.True(t, strings.HasPrefix(filepath.Base(backupPath), "meetings_"))
	require.True(t, strings.HasSuffix(backupPath, ".db"))

	info, err := os.Stat(backupPath)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestMaintenanceService_Backup_Fail_InMemory(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	ctx := context.Background()

	backupPath, err := services.MaintenanceService.Backup(ctx)
	require.Error(t, err)
	require.Empty(t, backupPath)
}

func TestMaintenanceService_FindOrphanedFiles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	ctx := context.Background()

	// No files at all: nothing to report
	report, err := services.MaintenanceService.FindOrphanedFiles(ctx)
	require.NoError(t, err)
	require.True(t, report.Empty())

	// A referenced upload is not an orphan
	form, err := testutil.CreateTestFileAndForm(t, "standup.wav", []byte("audio"))
	require.NoError(t, err)
	_, err = services.MeetingUploadService.Upload(ctx, form, "Daily standup", persistence.TestLanguageEnglish)
	require.NoError(t, err)

	report, err = services.MaintenanceService.FindOrphanedFiles(ctx)
	require.NoError(t, err)
	require.True(t, report.Empty())

	// Stray files in both directories are reported
	strayUpload := filepath.Join(services.AudioStore.Dir(), "stray.wav")
	require.NoError(t, os.WriteFile(strayUpload, []byte("x"), 0600))
	strayExport := filepath.Join(services.DocumentStore.Dir(), "stray.pdf")
	require.NoError(t, os.WriteFile(strayExport, []byte("x"), 0600))

	report, err = services.MaintenanceService.FindOrphanedFiles(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{strayUpload}, report.UploadFiles)
	require.Equal(t, []string{strayExport}, report.ExportFiles)
}

func TestMaintenanceService_RemoveFiles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	ctx := context.Background()

	existing := filepath.Join(services.AudioStore.Dir(), "stray.wav")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0600))
	missing := filepath.Join(services.AudioStore.Dir(), "missing.wav")

	deleted, failed := services.MaintenanceService.RemoveFiles(ctx, []string{existing, missing})
	require.Equal(t, 1, deleted)
	require.Equal(t, []string{missing}, failed)

	_, err := os.Stat(existing)
	require.True(t, os.IsNotExist(err))
}
