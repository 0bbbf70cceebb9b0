//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CrazyPrash007/Multilingual-Note-Taking/internal/domain/maintenance"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSystemHandler_Health_Success(t *testing.T) {
	mockMaintenanceService := new(MockMaintenanceService)

	handler := NewSystemHandler(mockMaintenanceService)

	status := &maintenance.DatabaseStatus{
		Path:          "data/meetings.db",
		SizeBytes:     2048,
		MeetingCount:  3,
		DocumentCount: 1,
		Integrity:     "ok",
	}

	mockMaintenanceService.On("Check", mock.Anything).Return(status, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "data/meetings.db")
	mockMaintenanceService.AssertExpectations(t)
}

func TestSystemHandler_Health_Error(t *testing.T) {
	mockMaintenanceService := new(MockMaintenanceService)

	handler := NewSystemHandler(mockMaintenanceService)

	mockMaintenanceService.On("Check", mock.Anything).Return(nil, errors.New("database unreachable"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Health(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "health check failed")
	mockMaintenanceService.AssertExpectations(t)
}
