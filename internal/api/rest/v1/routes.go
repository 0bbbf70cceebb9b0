package v1

import (
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/documents"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"
	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/meetings"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	meetingUploadService meetings.MeetingUploadService,
	meetingDownloadService meetings.MeetingDownloadService,
	meetingMetadataService meetings.MeetingMetadataService,
	documentExportService documents.DocumentExportService,
	documentDownloadService documents.DocumentDownloadService,
	documentMetadataService documents.DocumentMetadataService,
	maintenanceService maintenance.MaintenanceService) {

	v1 := r.Group(BasePath)

	// Meeting routes
	meetingHandler := NewMeetingHandler(meetingUploadService, meetingDownloadService, meetingMetadataService)
	v1.POST("/meetings", meetingHandler.Upload)
	v1.GET("/meetings", meetingHandler.ListMetadata)
	v1.GET("/meetings/:id", meetingHandler.GetMetadataByID)
	v1.PATCH("/meetings/:id/notes", meetingHandler.UpdateNotesByID)
	v1.GET("/meetings/:id/audio", meetingHandler.DownloadAudioByID)
	v1.DELETE("/meetings/:id", meetingHandler.DeleteByID)

	// Document routes
	documentHandler := NewDocumentHandler(documentExportService, documentDownloadService, documentMetadataService)
	v1.POST("/meetings/:id/export", documentHandler.ExportMeeting)
	v1.GET("/documents", documentHandler.ListMetadata)
	v1.GET("/documents/:id", documentHandler.GetMetadataByID)
	v1.GET("/documents/:id/file", documentHandler.DownloadByID)
	v1.DELETE("/documents/:id", documentHandler.DeleteByID)

	// System routes
	systemHandler := NewSystemHandler(maintenanceService)
	v1.GET("/health", systemHandler.Health)
}
