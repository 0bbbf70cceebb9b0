//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"

	"github.com/stretchr/testify/mock"
)

// MockMeetingUploadService is a mock implementation of MeetingUploadService
type MockMeetingUploadService struct {
	mock.Mock
}

func (m *MockMeetingUploadService) Upload(ctx context.Context, form *multipart.Form, title, language string) ([]*meetings.MeetingMeta, error) {
	args := m.Called(ctx, form, title, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*meetings.MeetingMeta), args.Error(1)
}

// MockMeetingMetadataService is a mock implementation of MeetingMetadataService
type MockMeetingMetadataService struct {
	mock.Mock
}

func (m *MockMeetingMetadataService) List(ctx context.Context, query *meetings.MeetingMetaQuery) ([]*meetings.MeetingMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*meetings.MeetingMeta), args.Error(1)
}

func (m *MockMeetingMetadataService) GetByID(ctx context.Context, meetingID string) (*meetings.MeetingMeta, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meetings.MeetingMeta), args.Error(1)
}

func (m *MockMeetingMetadataService) UpdateNotesByID(ctx context.Context, meetingID string, update *meetings.NotesUpdate) (*meetings.MeetingMeta, error) {
	args := m.Called(ctx, meetingID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meetings.MeetingMeta), args.Error(1)
}

func (m *MockMeetingMetadataService) DeleteByID(ctx context.Context, meetingID string) error {
	args := m.Called(ctx, meetingID)
	return args.Error(0)
}

// MockMeetingDownloadService is a mock implementation of MeetingDownloadService
type MockMeetingDownloadService struct {
	mock.Mock
}

func (m *MockMeetingDownloadService) DownloadByID(ctx context.Context, meetingID string) ([]byte, *meetings.MeetingMeta, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(*meetings.MeetingMeta), args.Error(2)
}

// MockDocumentExportService is a mock implementation of DocumentExportService
type MockDocumentExportService struct {
	mock.Mock
}

func (m *MockDocumentExportService) ExportMeeting(ctx context.Context, meetingID string) (*documents.DocumentMeta, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.DocumentMeta), args.Error(1)
}

// MockDocumentMetadataService is a mock implementation of DocumentMetadataService
type MockDocumentMetadataService struct {
	mock.Mock
}

func (m *MockDocumentMetadataService) List(ctx context.Context, query *documents.DocumentMetaQuery) ([]*documents.DocumentMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.DocumentMeta), args.Error(1)
}

func (m *MockDocumentMetadataService) GetByID(ctx context.Context, documentID string) (*documents.DocumentMeta, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.DocumentMeta), args.Error(1)
}

func (m *MockDocumentMetadataService) DeleteByID(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// MockDocumentDownloadService is a mock implementation of DocumentDownloadService
type MockDocumentDownloadService struct {
	mock.Mock
}

func (m *MockDocumentDownloadService) DownloadByID(ctx context.Context, documentID string) ([]byte, *documents.DocumentMeta, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(*documents.DocumentMeta), args.Error(2)
}

// MockMaintenanceService is a mock implementation of MaintenanceService
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) Check(ctx context.Context) (*maintenance.DatabaseStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.DatabaseStatus), args.Error(1)
}

func (m *MockMaintenanceService) Backup(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockMaintenanceService) FindOrphanedFiles(ctx context.Context) (*maintenance.OrphanReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.OrphanReport), args.Error(1)
}

func (m *MockMaintenanceService) RemoveFiles(ctx context.Context, paths []string) (int, []string) {
	args := m.Called(ctx, paths)
	if args.Get(1) == nil {
		return args.Int(0), nil
	}
	return args.Int(0), args.Get(1).([]string)
}
