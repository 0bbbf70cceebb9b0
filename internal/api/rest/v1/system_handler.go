package v1

import (
	"fmt"
	"net/http"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"

	"github.com/gin-gonic/gin"
)

// SystemHandler defines the interface for service-level endpoints
type SystemHandler interface {
	Health(ctx *gin.Context)
}

type systemHandler struct {
	maintenanceService maintenance.MaintenanceService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(maintenanceService maintenance.MaintenanceService) SystemHandler {
	return &systemHandler{
		maintenanceService: maintenanceService,
	}
}

// Health reports database status and record counts
func (handler *systemHandler) Health(ctx *gin.Context) {
	status, err := handler.maintenanceService.Check(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("health check failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusServiceUnavailable, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		DatabasePath:  status.Path,
		DatabaseSize:  status.SizeBytes,
		MeetingCount:  status.MeetingCount,
		DocumentCount: status.DocumentCount,
		Integrity:     status.Integrity,
	})
}
