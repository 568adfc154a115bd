package handler

import (
	"net/http"

	domainerr "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to an HTTP status and writes the
// standardized error body. Server-side failures are logged and masked.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsUnauthorizedError(err):
		status = http.StatusUnauthorized
		message = err.Error()
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"operation": operation,
			"path":      c.Request.URL.Path,
			"error":     err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError writes the standardized body for malformed request payloads
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: "Invalid request payload: " + err.Error(),
	})
}
