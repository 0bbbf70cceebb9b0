package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence/models"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"gorm.io/gorm"
)

const backupTimestampLayout = "20060102_150405"

// maintenanceService implements the MaintenanceService interface on top of the
// meetings database and the two file stores
type maintenanceService struct {
	db            *gorm.DB
	dbSettings    config.DatabaseSettings
	dataDir       string
	meetingRepo   meetings.MeetingRepository
	documentRepo  documents.DocumentRepository
	audioStore    meetings.AudioStore
	documentStore documents.DocumentStore
	logger        logger.Logger
}

// NewMaintenanceService creates a new instance of MaintenanceService
func NewMaintenanceService(
	db *gorm.DB,
	dbSettings config.DatabaseSettings,
	dataDir string,
	meetingRepo meetings.MeetingRepository,
	documentRepo documents.DocumentRepository,
	audioStore meetings.AudioStore,
	documentStore documents.DocumentStore,
	logger logger.Logger,
) (maintenance.MaintenanceService, error) {
	return &maintenanceService{
		db:            db,
		dbSettings:    dbSettings,
		dataDir:       dataDir,
		meetingRepo:   meetingRepo,
		documentRepo:  documentRepo,
		audioStore:    audioStore,
		documentStore: documentStore,
		logger:        logger,
	}, nil
}

// Check reports database location, size, record counts and integrity.
func (s *maintenanceService) Check(ctx context.Context) (*maintenance.DatabaseStatus, error) {
	status := &maintenance.DatabaseStatus{
		Path:      s.dbSettings.DSN,
		Integrity: "not applicable",
	}

	if s.isFileBacked() {
		info, err := os.Stat(s.dbSettings.DSN)
		if err != nil {
			return nil, fmt.Errorf("database not found at %s: %w", s.dbSettings.DSN, err)
		}
		status.SizeBytes = info.Size()

		var integrity string
		if err := s.db.WithContext(ctx).Raw("PRAGMA integrity_check").Scan(&integrity).Error; err != nil {
			return nil, fmt.Errorf("integrity check failed: %w", err)
		}
		status.Integrity = integrity
	}

	if err := s.db.WithContext(ctx).Model(&models.MeetingModel{}).Count(&status.MeetingCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count meetings: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.DocumentModel{}).Count(&status.DocumentCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	return status, nil
}

// Backup copies the sqlite database file into <data>/backups with a
// timestamped name.
func (s *maintenanceService) Backup(ctx context.Context) (string, error) {
	if !s.isFileBacked() {
		return "", fmt.Errorf("backup is only supported for file-backed sqlite databases")
	}

	if _, err := os.Stat(s.dbSettings.DSN); err != nil {
		return "", fmt.Errorf("database not found at %s: %w", s.dbSettings.DSN, err)
	}

	// Flush pending WAL pages so the copy is consistent
	if err := s.db.WithContext(ctx).Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
		s.logger.Warn("WAL checkpoint before backup failed: ", err)
	}

	backupDir := filepath.Join(s.dataDir, "backups")
	if err := os.MkdirAll(backupDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format(backupTimestampLayout)
	backupPath := filepath.Join(backupDir, fmt.Sprintf("meetings_%s.db", timestamp))

	if err := copyFile(s.dbSettings.DSN, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	s.logger.Info("Database backed up to ", backupPath)
	return backupPath, nil
}

// FindOrphanedFiles scans the uploads and exports directories for files
// without a database record.
func (s *maintenanceService) FindOrphanedFiles(ctx context.Context) (*maintenance.OrphanReport, error) {
	audioPaths, err := s.meetingRepo.ListAudioPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list referenced audio paths: %w", err)
	}

	documentPaths, err := s.documentRepo.ListFilePaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list referenced document paths: %w", err)
	}

	uploadOrphans, err := orphansInDir(s.audioStore.Dir(), audioPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan uploads directory: %w", err)
	}

	exportOrphans, err := orphansInDir(s.documentStore.Dir(), documentPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan exports directory: %w", err)
	}

	return &maintenance.OrphanReport{
		UploadFiles: uploadOrphans,
		ExportFiles: exportOrphans,
	}, nil
}

// RemoveFiles deletes the given files, returning the number deleted and the
// paths that could not be removed.
func (s *maintenanceService) RemoveFiles(_ context.Context, paths []string) (int, []string) {
	deleted := 0
	var failed []string
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			s.logger.Warn("Failed to delete ", path, ": ", err)
			failed = append(failed, path)
			continue
		}
		deleted++
	}

	s.logger.Info("Deleted ", deleted, " orphaned file(s)")
	return deleted, failed
}

func (s *maintenanceService) isFileBacked() bool {
	return s.dbSettings.Type == config.SqliteDbType && s.dbSettings.DSN != ":memory:"
}

// orphansInDir lists regular files in dir that are not in referenced. Paths
// are compared in cleaned form so DSN-style and store-style paths match.
func orphansInDir(dir string, referenced []string) ([]string, error) {
	known := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		known[filepath.Clean(p)] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var orphans []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, ok := known[filepath.Clean(path)]; !ok {
			orphans = append(orphans, path)
		}
	}
	return orphans, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(filepath.Clean(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return nil
}
