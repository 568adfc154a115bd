package handler

import (
	"net/http"

	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/dto"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SavingsHandler handles savings goal HTTP requests
type SavingsHandler struct {
	savingsUseCase usecase.SavingsUseCase
	logger         coreport.Logger
}

// NewSavingsHandler creates a new savings handler instance
func NewSavingsHandler(
	savingsUseCase usecase.SavingsUseCase,
	logger coreport.Logger,
) *SavingsHandler {
	return &SavingsHandler{
		savingsUseCase: savingsUseCase,
		logger:         logger,
	}
}

// Create handles the POST /api/savings-goals endpoint
func (h *SavingsHandler) Create(c *gin.Context) {
	var req dto.CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)

	goal, err := h.savingsUseCase.Create(c.Request.Context(), user.ID, usecase.CreateSavingsInput{
		GoalName:            req.GoalName,
		TargetAmount:        req.TargetAmount,
		MonthlyContribution: req.MonthlyContribution,
		TargetDate:          req.TargetDate,
	})
	if err != nil {
		respondError(c, h.logger, "create savings goal", err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// List handles the GET /api/savings-goals endpoint
func (h *SavingsHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	goals, err := h.savingsUseCase.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "list savings goals", err)
		return
	}

	c.JSON(http.StatusOK, goals)
}
