package handler

import (
	"net/http"

	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/dto"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// FundingHandler handles funding request HTTP requests
type FundingHandler struct {
	fundingUseCase usecase.FundingUseCase
	logger         coreport.Logger
}

// NewFundingHandler creates a new funding handler instance
func NewFundingHandler(
	fundingUseCase usecase.FundingUseCase,
	logger coreport.Logger,
) *FundingHandler {
	return &FundingHandler{
		fundingUseCase: fundingUseCase,
		logger:         logger,
	}
}

// Create handles the POST /api/funding-requests endpoint
func (h *FundingHandler) Create(c *gin.Context) {
	var req dto.CreateFundingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)

	request, contract, err := h.fundingUseCase.Create(c.Request.Context(), user.ID, usecase.CreateFundingInput{
		Amount:        req.Amount,
		Purpose:       req.Purpose,
		MonthlyIncome: req.MonthlyIncome,
	})
	if err != nil {
		respondError(c, h.logger, "create funding request", err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateFundingRequestResponse{
		FundingRequest: request,
		Contract:       contract,
	})
}

// List handles the GET /api/funding-requests endpoint
func (h *FundingHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	requests, err := h.fundingUseCase.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "list funding requests", err)
		return
	}

	c.JSON(http.StatusOK, requests)
}
