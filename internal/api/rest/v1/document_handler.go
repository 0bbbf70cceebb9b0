package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// DocumentHandler defines the interface for handling document-related operations
type DocumentHandler interface {
	ExportMeeting(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type documentHandler struct {
	documentExportService   documents.DocumentExportService
	documentMetadataService documents.DocumentMetadataService
	documentDownloadService documents.DocumentDownloadService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(
	documentExportService documents.DocumentExportService,
	documentDownloadService documents.DocumentDownloadService,
	documentMetadataService documents.DocumentMetadataService,
) DocumentHandler {
	return &documentHandler{
		documentExportService:   documentExportService,
		documentMetadataService: documentMetadataService,
		documentDownloadService: documentDownloadService,
	}
}

// ExportMeeting renders a meeting into a PDF document
func (handler *documentHandler) ExportMeeting(ctx *gin.Context) {
	meetingID := ctx.Param("id")

	meta, err := handler.documentExportService.ExportMeeting(ctx, meetingID)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not export meeting %s: %v", meetingID, err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toDocumentResponse(meta))
}

// ListMetadata fetches document metadata optionally with query parameters
func (handler *documentHandler) ListMetadata(ctx *gin.Context) {
	query := documents.NewDocumentMetaQuery()

	if meetingID := ctx.Query("meetingId"); len(meetingID) > 0 {
		query.MeetingID = meetingID
	}

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
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

	metas, err := handler.documentMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("list query failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	listResponse := []DocumentMetaResponse{}
	for _, meta := range metas {
		listResponse = append(listResponse, toDocumentResponse(meta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID fetches document metadata by ID
func (handler *documentHandler) GetMetadataByID(ctx *gin.Context) {
	documentID := ctx.Param("id")

	meta, err := handler.documentMetadataService.GetByID(ctx, documentID)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("document with id %s not found", documentID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toDocumentResponse(meta))
}

// DownloadByID downloads an exported document by ID
func (handler *documentHandler) DownloadByID(ctx *gin.Context) {
	documentID := ctx.Param("id")

	bytes, meta, err := handler.documentDownloadService.DownloadByID(ctx, documentID)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not download document %s: %v", documentID, err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Writer.Header().Set("Content-Type", "application/pdf")
	ctx.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", meta.Name))
	ctx.Writer.WriteHeader(http.StatusOK)
	if _, err := ctx.Writer.Write(bytes); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not write bytes: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
}

// DeleteByID deletes a document by ID
func (handler *documentHandler) DeleteByID(ctx *gin.Context) {
	documentID := ctx.Param("id")

	if err := handler.documentMetadataService.DeleteByID(ctx, documentID); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("document with id %s not found", documentID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoMessage := fmt.Sprintf("deleted document with id %s", documentID)
	infoResponse.Message = &infoMessage
	ctx.JSON(http.StatusNoContent, infoResponse)
}

func toDocumentResponse(meta *documents.DocumentMeta) DocumentMetaResponse {
	return DocumentMetaResponse{
		ID:              meta.ID,
		MeetingID:       meta.MeetingID,
		DateTimeCreated: meta.DateTimeCreated,
		Name:            meta.Name,
		Size:            meta.Size,
		Format:          meta.Format,
	}
}
