package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"github.com/google/uuid"
)

const defaultLanguage = "en"

// meetingUploadService implements the MeetingUploadService interface for
// storing uploaded audio notes
type meetingUploadService struct {
	audioStore  meetings.AudioStore
	meetingRepo meetings.MeetingRepository
	logger      logger.Logger
}

// NewMeetingUploadService creates a new instance of MeetingUploadService
func NewMeetingUploadService(
	audioStore meetings.AudioStore,
	meetingRepo meetings.MeetingRepository,
	logger logger.Logger,
) (meetings.MeetingUploadService, error) {
	return &meetingUploadService{
		audioStore:  audioStore,
		meetingRepo: meetingRepo,
		logger:      logger,
	}, nil
}

// Upload stores the audio files contained in the form and persists one
// meeting metadata record per file.
func (s *meetingUploadService) Upload(ctx context.Context, form *multipart.Form, title, language string) ([]*meetings.MeetingMeta, error) {
	if form == nil || len(form.File["files"]) == 0 {
		return nil, fmt.Errorf("no files provided in upload request")
	}

	if language == "" {
		language = defaultLanguage
	}

	var metas []*meetings.MeetingMeta
	for _, header := range form.File["files"] {
		content, err := readFileHeader(header)
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file '%s': %w", header.Filename, err)
		}

		path, err := s.audioStore.Save(header.Filename, content)
		if err != nil {
			return nil, fmt.Errorf("failed to store audio file '%s': %w", header.Filename, err)
		}

		meetingTitle := title
		if meetingTitle == "" {
			meetingTitle = titleFromFilename(header.Filename)
		}

		meta := &meetings.MeetingMeta{
			ID:              uuid.NewString(),
			DateTimeCreated: time.Now(),
			Title:           meetingTitle,
			Language:        language,
			AudioName:       header.Filename,
			AudioPath:       path,
			Size:            int64(len(content)),
		}

		if err := s.meetingRepo.Create(ctx, meta); err != nil {
			// best effort: do not leave an unreferenced file behind
			if removeErr := s.audioStore.Delete(path); removeErr != nil {
				s.logger.Warn("Failed to remove stored file after metadata error: ", removeErr)
			}
			return nil, fmt.Errorf("failed to save meeting metadata for '%s': %w", header.Filename, err)
		}

		metas = append(metas, meta)
	}

	s.logger.Info("Uploaded ", len(metas), " audio note(s)")
	return metas, nil
}

// meetingMetadataService implements the MeetingMetadataService interface
type meetingMetadataService struct {
	meetingRepo   meetings.MeetingRepository
	documentRepo  documents.DocumentRepository
	audioStore    meetings.AudioStore
	documentStore documents.DocumentStore
	logger        logger.Logger
}

// NewMeetingMetadataService creates a new instance of MeetingMetadataService
func NewMeetingMetadataService(
	meetingRepo meetings.MeetingRepository,
	documentRepo documents.DocumentRepository,
	audioStore meetings.AudioStore,
	documentStore documents.DocumentStore,
	logger logger.Logger,
) (meetings.MeetingMetadataService, error) {
	return &meetingMetadataService{
		meetingRepo:   meetingRepo,
		documentRepo:  documentRepo,
		audioStore:    audioStore,
		documentStore: documentStore,
		logger:        logger,
	}, nil
}

func (s *meetingMetadataService) List(ctx context.Context, query *meetings.MeetingMetaQuery) ([]*meetings.MeetingMeta, error) {
	metas, err := s.meetingRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return metas, nil
}

func (s *meetingMetadataService) GetByID(ctx context.Context, meetingID string) (*meetings.MeetingMeta, error) {
	meta, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting metadata: %w", err)
	}
	return meta, nil
}

func (s *meetingMetadataService) UpdateNotesByID(ctx context.Context, meetingID string, update *meetings.NotesUpdate) (*meetings.MeetingMeta, error) {
	if update == nil || (update.Transcript == nil && update.Translation == nil) {
		return nil, fmt.Errorf("no note fields provided for update")
	}

	meta, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting metadata: %w", err)
	}

	if update.Transcript != nil {
		meta.Transcript = *update.Transcript
	}
	if update.Translation != nil {
		meta.Translation = *update.Translation
	}

	if err := s.meetingRepo.UpdateByID(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to update meeting notes: %w", err)
	}

	return meta, nil
}

// DeleteByID deletes a meeting, its stored audio file and any documents
// exported from it.
func (s *meetingMetadataService) DeleteByID(ctx context.Context, meetingID string) error {
	meta, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("failed to get meeting metadata: %w", err)
	}

	deletedDocs, err := s.documentRepo.DeleteByMeetingID(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("failed to delete exported documents: %w", err)
	}
	for _, doc := range deletedDocs {
		if err := s.documentStore.Delete(doc.FilePath); err != nil {
			s.logger.Warn("Failed to delete exported document file: ", err)
		}
	}

	if err := s.meetingRepo.DeleteByID(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	if err := s.audioStore.Delete(meta.AudioPath); err != nil {
		s.logger.Warn("Failed to delete audio file: ", err)
	}

	s.logger.Info("Deleted meeting ", meetingID, " with ", len(deletedDocs), " exported document(s)")
	return nil
}

// meetingDownloadService implements the MeetingDownloadService interface
type meetingDownloadService struct {
	meetingRepo meetings.MeetingRepository
	audioStore  meetings.AudioStore
	logger      logger.Logger
}

// NewMeetingDownloadService creates a new instance of MeetingDownloadService
func NewMeetingDownloadService(
	meetingRepo meetings.MeetingRepository,
	audioStore meetings.AudioStore,
	logger logger.Logger,
) (meetings.MeetingDownloadService, error) {
	return &meetingDownloadService{
		meetingRepo: meetingRepo,
		audioStore:  audioStore,
		logger:      logger,
	}, nil
}

func (s *meetingDownloadService) DownloadByID(ctx context.Context, meetingID string) ([]byte, *meetings.MeetingMeta, error) {
	meta, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get meeting metadata: %w", err)
	}

	content, err := s.audioStore.Read(meta.AudioPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	return content, meta, nil
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	return content, nil
}

func titleFromFilename(name string) string {
	trimmed := name
	if idx := strings.LastIndex(trimmed, "."); idx > 0 {
		trimmed = trimmed[:idx]
	}
	trimmed = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(trimmed))
	if trimmed == "" {
		return "Untitled note"
	}
	return trimmed
}
