package handler

import (
	"net/http"
	"time"

	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/dto"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// CookieConfig describes how the session cookie is issued
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles login-callback, session and logout HTTP requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookie      CookieConfig
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authUseCase usecase.AuthUseCase,
	cookie CookieConfig,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookie:      cookie,
		logger:      logger,
	}
}

// Login handles the POST /api/auth/login endpoint. The payload carries
// identity claims already verified by the external provider.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	claims := usecase.IdentityClaims{
		ID:              req.ID,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		FullName:        req.FullName,
		Phone:           req.Phone,
		NationalID:      req.NationalID,
		Address:         req.Address,
		Job:             req.Job,
		ProfileImageURL: req.ProfileImageURL,
		ReferralCode:    req.ReferralCode,
	}

	user, session, err := h.authUseCase.Login(c.Request.Context(), claims)
	if err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	c.SetCookie(
		h.cookie.Name,
		session.SID,
		int(h.cookie.TTL.Seconds()),
		"/",
		"",
		h.cookie.Secure,
		true,
	)

	c.JSON(http.StatusOK, user)
}

// Logout handles the POST /api/auth/logout endpoint
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(h.cookie.Name); err == nil && sid != "" {
		if err := h.authUseCase.Logout(c.Request.Context(), sid); err != nil {
			respondError(c, h.logger, "logout", err)
			return
		}
	}

	// Expire the cookie regardless of whether a session existed
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetUser handles the GET /api/auth/user endpoint
func (h *AuthHandler) GetUser(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}
