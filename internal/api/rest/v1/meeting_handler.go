package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// MeetingHandler defines the interface for handling meeting-related operations
type MeetingHandler interface {
	Upload(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	UpdateNotesByID(ctx *gin.Context)
	DownloadAudioByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type meetingHandler struct {
	meetingUploadService   meetings.MeetingUploadService
	meetingMetadataService meetings.MeetingMetadataService
	meetingDownloadService meetings.MeetingDownloadService
}

// NewMeetingHandler creates a new MeetingHandler
func NewMeetingHandler(
	meetingUploadService meetings.MeetingUploadService,
	meetingDownloadService meetings.MeetingDownloadService,
	meetingMetadataService meetings.MeetingMetadataService,
) MeetingHandler {
	return &meetingHandler{
		meetingUploadService:   meetingUploadService,
		meetingMetadataService: meetingMetadataService,
		meetingDownloadService: meetingDownloadService,
	}
}

// Upload stores uploaded audio notes with optional title and language fields
func (handler *meetingHandler) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := "invalid form data"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var title, language string
	if titles := form.Value["title"]; len(titles) > 0 {
		title = titles[0]
	}
	if languages := form.Value["language"]; len(languages) > 0 {
		language = languages[0]
	}

	metas, err := handler.meetingUploadService.Upload(ctx, form, title, language)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("error uploading audio note: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var responses []MeetingMetaResponse
	for _, meta := range metas {
		responses = append(responses, toMeetingResponse(meta))
	}

	ctx.JSON(http.StatusCreated, responses)
}

// ListMetadata fetches meeting metadata optionally with query parameters
func (handler *meetingHandler) ListMetadata(ctx *gin.Context) {
	query := meetings.NewMeetingMetaQuery()

	if title := ctx.Query("title"); len(title) > 0 {
		query.Title = title
	}

	if language := ctx.Query("language"); len(language) > 0 {
		query.Language = language
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("validation failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	metas, err := handler.meetingMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("list query failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	listResponse := []MeetingMetaResponse{}
	for _, meta := range metas {
		listResponse = append(listResponse, toMeetingResponse(meta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID fetches meeting metadata by ID
func (handler *meetingHandler) GetMetadataByID(ctx *gin.Context) {
	meetingID := ctx.Param("id")

	meta, err := handler.meetingMetadataService.GetByID(ctx, meetingID)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("meeting with id %s not found", meetingID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toMeetingResponse(meta))
}

// UpdateNotesByID updates a meeting's transcript and translation
func (handler *meetingHandler) UpdateNotesByID(ctx *gin.Context) {
	meetingID := ctx.Param("id")

	var request NotesUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("invalid request body: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	update := &meetings.NotesUpdate{
		Transcript:  request.Transcript,
		Translation: request.Translation,
	}

	meta, err := handler.meetingMetadataService.UpdateNotesByID(ctx, meetingID, update)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not update notes for meeting %s: %v", meetingID, err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toMeetingResponse(meta))
}

// DownloadAudioByID downloads a meeting's audio note by ID
func (handler *meetingHandler) DownloadAudioByID(ctx *gin.Context) {
	meetingID := ctx.Param("id")

	bytes, meta, err := handler.meetingDownloadService.DownloadByID(ctx, meetingID)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not download audio for meeting %s: %v", meetingID, err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Writer.Header().Set("Content-Type", "application/octet-stream; charset=utf-8")
	ctx.Writer.Header().Set("Content-Disposition", "attachment; filename="+meta.AudioName)
	ctx.Writer.WriteHeader(http.StatusOK)
	if _, err := ctx.Writer.Write(bytes); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not write bytes: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
}

// DeleteByID deletes a meeting by ID
func (handler *meetingHandler) DeleteByID(ctx *gin.Context) {
	meetingID := ctx.Param("id")

	if err := handler.meetingMetadataService.DeleteByID(ctx, meetingID); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("meeting with id %s not found", meetingID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoMessage := fmt.Sprintf("deleted meeting with id %s", meetingID)
	infoResponse.Message = &infoMessage
	ctx.JSON(http.StatusNoContent, infoResponse)
}

func toMeetingResponse(meta *meetings.MeetingMeta) MeetingMetaResponse {
	return MeetingMetaResponse{
		ID:              meta.ID,
		DateTimeCreated: meta.DateTimeCreated,
		Title:           meta.Title,
		Language:        meta.Language,
		AudioName:       meta.AudioName,
		Size:            meta.Size,
		Transcript:      meta.Transcript,
		Translation:     meta.Translation,
	}
}
