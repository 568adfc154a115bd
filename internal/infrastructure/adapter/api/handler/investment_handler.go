package handler

import (
	"net/http"

	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/dto"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// InvestmentHandler handles investment offer HTTP requests
type InvestmentHandler struct {
	investmentUseCase usecase.InvestmentUseCase
	logger            coreport.Logger
}

// NewInvestmentHandler creates a new investment handler instance
func NewInvestmentHandler(
	investmentUseCase usecase.InvestmentUseCase,
	logger coreport.Logger,
) *InvestmentHandler {
	return &InvestmentHandler{
		investmentUseCase: investmentUseCase,
		logger:            logger,
	}
}

// Create handles the POST /api/investment-offers endpoint
func (h *InvestmentHandler) Create(c *gin.Context) {
	var req dto.CreateInvestmentOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)

	offer, contract, err := h.investmentUseCase.Create(c.Request.Context(), user.ID, usecase.CreateInvestmentInput{
		PlanName:         req.PlanName,
		InvestmentAmount: req.InvestmentAmount,
		ExpectedReturn:   req.ExpectedReturn,
		Duration:         req.Duration,
	})
	if err != nil {
		respondError(c, h.logger, "create investment offer", err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateInvestmentOfferResponse{
		InvestmentOffer: offer,
		Contract:        contract,
	})
}

// List handles the GET /api/investment-offers endpoint
func (h *InvestmentHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	offers, err := h.investmentUseCase.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "list investment offers", err)
		return
	}

	c.JSON(http.StatusOK, offers)
}
