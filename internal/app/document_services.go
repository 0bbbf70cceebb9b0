package app

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf/v2"
)

// documentExportService implements the DocumentExportService interface for
// rendering meeting notes into PDF documents
type documentExportService struct {
	meetingRepo   meetings.MeetingRepository
	documentRepo  documents.DocumentRepository
	documentStore documents.DocumentStore
	logger        logger.Logger
}

// NewDocumentExportService creates a new instance of DocumentExportService
func NewDocumentExportService(
	meetingRepo meetings.MeetingRepository,
	documentRepo documents.DocumentRepository,
	documentStore documents.DocumentStore,
	logger logger.Logger,
) (documents.DocumentExportService, error) {
	return &documentExportService{
		meetingRepo:   meetingRepo,
		documentRepo:  documentRepo,
		documentStore: documentStore,
		logger:        logger,
	}, nil
}

// ExportMeeting renders the meeting's notes into a PDF document in the
// exports directory and persists its metadata.
func (s *documentExportService) ExportMeeting(ctx context.Context, meetingID string) (*documents.DocumentMeta, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting metadata: %w", err)
	}

	content, err := renderMeetingPDF(meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF for meeting %s: %w", meetingID, err)
	}

	name := documentName(meeting.Title)
	path, err := s.documentStore.Save(name, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store exported document: %w", err)
	}

	meta := &documents.DocumentMeta{
		ID:              uuid.NewString(),
		MeetingID:       meeting.ID,
		DateTimeCreated: time.Now(),
		Name:            name,
		FilePath:        path,
		Size:            int64(len(content)),
		Format:          documents.FormatPDF,
	}

	if err := s.documentRepo.Create(ctx, meta); err != nil {
		if removeErr := s.documentStore.Delete(path); removeErr != nil {
			s.logger.Warn("Failed to remove exported file after metadata error: ", removeErr)
		}
		return nil, fmt.Errorf("failed to save document metadata: %w", err)
	}

	s.logger.Info("Exported meeting ", meeting.ID, " to ", path)
	return meta, nil
}

// documentMetadataService implements the DocumentMetadataService interface
type documentMetadataService struct {
	documentRepo  documents.DocumentRepository
	documentStore documents.DocumentStore
	logger        logger.Logger
}

// NewDocumentMetadataService creates a new instance of DocumentMetadataService
func NewDocumentMetadataService(
	documentRepo documents.DocumentRepository,
	documentStore documents.DocumentStore,
	logger logger.Logger,
) (documents.DocumentMetadataService, error) {
	return &documentMetadataService{
		documentRepo:  documentRepo,
		documentStore: documentStore,
		logger:        logger,
	}, nil
}

func (s *documentMetadataService) List(ctx context.Context, query *documents.DocumentMetaQuery) ([]*documents.DocumentMeta, error) {
	metas, err := s.documentRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return metas, nil
}

func (s *documentMetadataService) GetByID(ctx context.Context, documentID string) (*documents.DocumentMeta, error) {
	meta, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document metadata: %w", err)
	}
	return meta, nil
}

func (s *documentMetadataService) DeleteByID(ctx context.Context, documentID string) error {
	meta, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to get document metadata: %w", err)
	}

	if err := s.documentRepo.DeleteByID(ctx, documentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if err := s.documentStore.Delete(meta.FilePath); err != nil {
		s.logger.Warn("Failed to delete document file: ", err)
	}

	return nil
}

// documentDownloadService implements the DocumentDownloadService interface
type documentDownloadService struct {
	documentRepo  documents.DocumentRepository
	documentStore documents.DocumentStore
	logger        logger.Logger
}

// NewDocumentDownloadService creates a new instance of DocumentDownloadService
func NewDocumentDownloadService(
	documentRepo documents.DocumentRepository,
	documentStore documents.DocumentStore,
	logger logger.Logger,
) (documents.DocumentDownloadService, error) {
	return &documentDownloadService{
		documentRepo:  documentRepo,
		documentStore: documentStore,
		logger:        logger,
	}, nil
}

func (s *documentDownloadService) DownloadByID(ctx context.Context, documentID string) ([]byte, *documents.DocumentMeta, error) {
	meta, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get document metadata: %w", err)
	}

	content, err := s.documentStore.Read(meta.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document file: %w", err)
	}

	return content, meta, nil
}

// renderMeetingPDF renders the meeting title, metadata, transcript and
// translation into a PDF byte stream.
func renderMeetingPDF(meeting *meetings.MeetingMeta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meeting.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 10, meeting.Title, "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(0, 6, fmt.Sprintf("Language: %s", meeting.Language), "", "L", false)
	pdf.MultiCell(0, 6, fmt.Sprintf("Recorded file: %s", meeting.AudioName), "", "L", false)
	pdf.MultiCell(0, 6, fmt.Sprintf("Created: %s", meeting.DateTimeCreated.Format(time.RFC1123)), "", "L", false)
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)

	writeSection := func(heading, body string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 8, heading, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		if body == "" {
			body = "(not available)"
		}
		pdf.MultiCell(0, 6, body, "", "L", false)
		pdf.Ln(3)
	}

	writeSection("Transcript", meeting.Transcript)
	writeSection("Translation", meeting.Translation)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func documentName(title string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = "meeting-notes"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		default:
			return -1
		}
	}, name)
	if name == "" {
		name = "meeting-notes"
	}
	return name + ".pdf"
}
