package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flouscash/platform/internal/domain/entity"
	errs "github.com/flouscash/platform/internal/domain/error"
	coremocks "github.com/flouscash/platform/mocks/port/core"
	usecasemocks "github.com/flouscash/platform/mocks/port/usecase"
)

const testCookieName = "flous_session"

func newAuthRouter(t *testing.T, authUseCase *usecasemocks.MockAuthUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

	router := gin.New()
	router.GET("/me", Auth(authUseCase, testCookieName, logger), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Valid session cookie resolves to the user", func(t *testing.T) {
		authUseCase := usecasemocks.NewMockAuthUseCase(t)
		authUseCase.EXPECT().Authenticate(mock.Anything, "sid-1").
			Return(&entity.User{ID: "user-1", Email: "ahmed@example.com"}, nil).Once()
		router := newAuthRouter(t, authUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "sid-1"})
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"user-1"`)
	})

	t.Run("Missing cookie is a 401 without a lookup", func(t *testing.T) {
		router := newAuthRouter(t, usecasemocks.NewMockAuthUseCase(t))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Expired session is a 401", func(t *testing.T) {
		authUseCase := usecasemocks.NewMockAuthUseCase(t)
		authUseCase.EXPECT().Authenticate(mock.Anything, "sid-old").
			Return(nil, errs.ErrSessionExpired).Once()
		router := newAuthRouter(t, authUseCase)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "sid-old"})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
