package documents

import "context"

// DocumentExportService defines methods for exporting meetings as documents.
type DocumentExportService interface {
	// ExportMeeting renders the meeting's notes into a PDF document in the
	// exports directory and persists its metadata.
	ExportMeeting(ctx context.Context, meetingID string) (*DocumentMeta, error)
}

// DocumentMetadataService defines methods for retrieving document metadata and
// deleting a document along with its file.
type DocumentMetadataService interface {
	// List retrieves all documents' metadata considering a query filter when set.
	List(ctx context.Context, query *DocumentMetaQuery) ([]*DocumentMeta, error)

	// GetByID retrieves the document metadata by ID.
	GetByID(ctx context.Context, documentID string) (*DocumentMeta, error)

	// DeleteByID deletes a document file and its metadata by ID.
	DeleteByID(ctx context.Context, documentID string) error
}

// DocumentDownloadService defines methods for downloading exported documents.
type DocumentDownloadService interface {
	// DownloadByID retrieves a document's content by ID.
	DownloadByID(ctx context.Context, documentID string) ([]byte, *DocumentMeta, error)
}

// DocumentRepository defines the interface for document metadata persistence
type DocumentRepository interface {
	// Create adds a new DocumentMeta to the database
	Create(ctx context.Context, document *DocumentMeta) error
	// List lists documents in the database with optional filter
	List(ctx context.Context, query *DocumentMetaQuery) ([]*DocumentMeta, error)
	// GetByID retrieves a DocumentMeta from the database by ID
	GetByID(ctx context.Context, documentID string) (*DocumentMeta, error)
	// DeleteByID deletes a DocumentMeta in the database by ID
	DeleteByID(ctx context.Context, documentID string) error
	// DeleteByMeetingID deletes every DocumentMeta exported from a meeting and
	// returns the deleted records so callers can remove the files as well
	DeleteByMeetingID(ctx context.Context, meetingID string) ([]*DocumentMeta, error)
	// ListFilePaths returns every stored document path referenced by a record
	ListFilePaths(ctx context.Context) ([]string, error)
}

// DocumentStore is an interface for storing exported document files
type DocumentStore interface {
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
