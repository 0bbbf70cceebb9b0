// Package maintenance contains the database and file maintenance contracts
// backing the notes-cli tool and the health endpoint.
package maintenance

import "context"

// DatabaseStatus describes the state of the meetings database.
type DatabaseStatus struct {
	Path          string
	SizeBytes     int64
	MeetingCount  int64
	DocumentCount int64
	// Integrity holds the database integrity check result ("ok" on a healthy
	// sqlite database, "not applicable" on other backends).
	Integrity string
}

// OrphanReport lists files on disk that no database record references.
type OrphanReport struct {
	UploadFiles []string
	ExportFiles []string
}

// Empty reports whether no orphaned files were found.
func (r *OrphanReport) Empty() bool {
	return len(r.UploadFiles) == 0 && len(r.ExportFiles) == 0
}

// MaintenanceService defines database and file maintenance operations.
type MaintenanceService interface {
	// Check reports database location, size, record counts and integrity.
	Check(ctx context.Context) (*DatabaseStatus, error)

	// Backup copies the database file into the backups directory and returns
	// the backup path.
	Backup(ctx context.Context) (string, error)

	// FindOrphanedFiles scans the uploads and exports directories for files
	// without a database record.
	FindOrphanedFiles(ctx context.Context) (*OrphanReport, error)

	// RemoveFiles deletes the given files, returning the number deleted and
	// the paths that could not be removed.
	RemoveFiles(ctx context.Context, paths []string) (int, []string)
}
