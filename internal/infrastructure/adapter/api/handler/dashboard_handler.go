package handler

import (
	"net/http"

	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(
	dashboardUseCase usecase.DashboardUseCase,
	logger coreport.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// Stats handles the GET /api/dashboard/stats endpoint
func (h *DashboardHandler) Stats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	stats, err := h.dashboardUseCase.Stats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "dashboard stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
