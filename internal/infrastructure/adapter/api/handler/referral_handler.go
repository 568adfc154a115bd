package handler

import (
	"net/http"

	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/dto"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ReferralHandler handles referral HTTP requests
type ReferralHandler struct {
	referralUseCase usecase.ReferralUseCase
	logger          coreport.Logger
}

// NewReferralHandler creates a new referral handler instance
func NewReferralHandler(
	referralUseCase usecase.ReferralUseCase,
	logger coreport.Logger,
) *ReferralHandler {
	return &ReferralHandler{
		referralUseCase: referralUseCase,
		logger:          logger,
	}
}

// List handles the GET /api/referrals endpoint
func (h *ReferralHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	referrals, err := h.referralUseCase.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "list referrals", err)
		return
	}

	c.JSON(http.StatusOK, referrals)
}

// Stats handles the GET /api/referrals/stats endpoint
func (h *ReferralHandler) Stats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	stats, err := h.referralUseCase.Stats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "referral stats", err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferralStatsResponse{
		Count:         stats.Count,
		TotalEarnings: stats.TotalEarnings,
	})
}

// Signup handles the POST /api/referral/signup endpoint. It only answers
// whether the code belongs to a user; no referral row is written here.
func (h *ReferralHandler) Signup(c *gin.Context) {
	var req dto.ReferralSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	validation, err := h.referralUseCase.ValidateCode(c.Request.Context(), req.ReferralCode)
	if err != nil {
		respondError(c, h.logger, "validate referral code", err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferralSignupResponse{
		Valid:      validation.Valid,
		ReferrerID: validation.ReferrerID,
	})
}
