package meetings

import (
	"context"
	"mime/multipart"
)

// MeetingUploadService defines methods for uploading meeting audio notes.
type MeetingUploadService interface {
	// Upload stores the audio files contained in the form and persists one
	// meeting metadata record per file. Title and language apply to every
	// file in the form.
	// It returns a slice of MeetingMeta for the stored meetings and any error
	// encountered during the upload process.
	Upload(ctx context.Context, form *multipart.Form, title, language string) ([]*MeetingMeta, error)
}

// MeetingMetadataService defines methods for retrieving and maintaining
// meeting metadata.
type MeetingMetadataService interface {
	// List retrieves all meetings' metadata considering a query filter when set.
	List(ctx context.Context, query *MeetingMetaQuery) ([]*MeetingMeta, error)

	// GetByID retrieves the meeting metadata by ID.
	GetByID(ctx context.Context, meetingID string) (*MeetingMeta, error)

	// UpdateNotesByID updates the transcript and translation of a meeting.
	UpdateNotesByID(ctx context.Context, meetingID string, update *NotesUpdate) (*MeetingMeta, error)

	// DeleteByID deletes a meeting, its stored audio file and any documents
	// exported from it.
	DeleteByID(ctx context.Context, meetingID string) error
}

// MeetingDownloadService defines methods for downloading stored audio notes.
type MeetingDownloadService interface {
	// DownloadByID retrieves a meeting's audio content by meeting ID.
	DownloadByID(ctx context.Context, meetingID string) ([]byte, *MeetingMeta, error)
}

// MeetingRepository defines the interface for meeting metadata persistence
type MeetingRepository interface {
	// Create adds a new MeetingMeta to the database
	Create(ctx context.Context, meeting *MeetingMeta) error
	// List lists meetings in the database with optional filter
	List(ctx context.Context, query *MeetingMetaQuery) ([]*MeetingMeta, error)
	// GetByID retrieves a MeetingMeta from the database by ID
	GetByID(ctx context.Context, meetingID string) (*MeetingMeta, error)
	// UpdateByID updates a MeetingMeta in the database by ID
	UpdateByID(ctx context.Context, meeting *MeetingMeta) error
	// DeleteByID deletes a MeetingMeta in the database by ID
	DeleteByID(ctx context.Context, meetingID string) error
	// ListAudioPaths returns every stored audio path referenced by a meeting
	ListAudioPaths(ctx context.Context) ([]string, error)
}

// AudioStore is an interface for storing audio note files
type AudioStore interface {
	// Save writes content under the store's directory and returns the
	// resulting path.
	Save(name string, content []byte) (string, error)

	// Read retrieves a stored file's content by path.
	Read(path string) ([]byte, error)

	// Delete removes a stored file by path.
	Delete(path string) error

	// Dir returns the store's base directory.
	Dir() string
}
