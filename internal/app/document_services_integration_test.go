//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/infrastructure/persistence"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/config"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func uploadTestMeeting(t *testing.T, services *TestServices) *meetings.MeetingMeta {
	t.Helper()

	form, err := testutil.CreateTestFileAndForm(t, "standup.wav", []byte("audio"))
	require.NoError(t, err)

	metas, err := services.MeetingUploadService.Upload(context.Background(), form, "Daily standup", persistence.TestLanguageEnglish)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	return metas[0]
}

func TestDocumentExportService_ExportMeeting_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	meeting := uploadTestMeeting(t, services)
	ctx := context.Background()

	transcript := "We discussed the release."
	_, err := services.MeetingMetadataService.UpdateNotesByID(ctx, meeting.ID, &meetings.NotesUpdate{
		Transcript: &transcript,
	})
	require.NoError(t, err)

	meta, err := services.DocumentExportService.ExportMeeting(ctx, meeting.ID)
	require.NoError(t, err)
	require.NotEmpty(t, meta.ID)
	require.Equal(t, meeting.ID, meta.MeetingID)
	require.Equal(t, "Daily-standup.pdf", meta.Name)
	require.Equal(t, documents.FormatPDF, meta.Format)
	require.Greater(t, meta.Size, int64(0))

	content, err := services.DocumentStore.Read(meta.FilePath)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(content[:4]))
}

func TestDocumentExportService_ExportMeeting_Fail_UnknownMeeting(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	ctx := context.Background()

	meta, err := services.DocumentExportService.ExportMeeting(ctx, uuid.NewString())
	require.Error(t, err)
	require.Nil(t, meta)
}

func TestDocumentDownloadService_DownloadByID_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	meeting := uploadTestMeeting(t, services)
	ctx := context.Background()

	meta, err := services.DocumentExportService.ExportMeeting(ctx, meeting.ID)
	require.NoError(t, err)

	content, downloadedMeta, err := services.DocumentDownloadService.DownloadByID(ctx, meta.ID)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	require.Equal(t, meta.ID, downloadedMeta.ID)
	require.Equal(t, meta.Size, int64(len(content)))
}

func TestDocumentMetadataService_List_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	meeting := uploadTestMeeting(t, services)
	ctx := context.Background()

	_, err := services.DocumentExportService.ExportMeeting(ctx, meeting.ID)
	require.NoError(t, err)
	_, err = services.DocumentExportService.ExportMeeting(ctx, meeting.ID)
	require.NoError(t, err)

	query := documents.NewDocumentMetaQuery()
	metas, err := services.DocumentMetadataService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	// Filter by meeting
	query = documents.NewDocumentMetaQuery()
	query.MeetingID = meeting.ID
	metas, err = services.DocumentMetadataService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	query = documents.NewDocumentMetaQuery()
	query.MeetingID = uuid.NewString()
	metas, err = services.DocumentMetadataService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, metas, 0)
}

func TestDocumentMetadataService_DeleteByID_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	meeting := uploadTestMeeting(t, services)
	ctx := context.Background()

	meta, err := services.DocumentExportService.ExportMeeting(ctx, meeting.ID)
	require.NoError(t, err)

	err = services.DocumentMetadataService.DeleteByID(ctx, meta.ID)
	require.NoError(t, err)

	_, err = services.DocumentMetadataService.GetByID(ctx, meta.ID)
	require.Error(t, err)

	_, err = services.DocumentStore.Read(meta.FilePath)
	require.Error(t, err)

	// The meeting itself stays untouched
	_, err = services.MeetingMetadataService.GetByID(ctx, meeting.ID)
	require.NoError(t, err)
}
