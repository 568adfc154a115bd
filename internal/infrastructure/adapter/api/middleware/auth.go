package middleware

import (
	"net/http"

	"github.com/flouscash/platform/internal/domain/entity"
	domainerr "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserKey is the context key under which the authenticated user is stored
const UserKey = "user"

// Auth resolves the session cookie to a user and aborts with 401 when it
// cannot. Handlers behind it can assume CurrentUser succeeds.
func Auth(authUseCase usecase.AuthUseCase, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Authentication required",
			})
			return
		}

		user, err := authUseCase.Authenticate(c.Request.Context(), sid)
		if err != nil {
			logger.Debug("Session authentication failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Authentication required",
			})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Auth
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(UserKey); ok {
		if user, ok := v.(*entity.User); ok {
			return user
		}
	}
	return nil
}
