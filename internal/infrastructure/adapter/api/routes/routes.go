package routes

import (
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/usecase"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/handler"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler wired into the API
type Handlers struct {
	Auth       *handler.AuthHandler
	Funding    *handler.FundingHandler
	Savings    *handler.SavingsHandler
	Investment *handler.InvestmentHandler
	Referral   *handler.ReferralHandler
	Contract   *handler.ContractHandler
	Dashboard  *handler.DashboardHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	h Handlers,
	authUseCase usecase.AuthUseCase,
	cookieName string,
	logger coreport.Logger,
) {
	api := router.Group("/api")

	// Unauthenticated endpoints
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/referral/signup", h.Referral.Signup)

	// Session-cookie protected endpoints
	authed := api.Group("")
	authed.Use(middleware.Auth(authUseCase, cookieName, logger))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/user", h.Auth.GetUser)

		authed.POST("/funding-requests", h.Funding.Create)
		authed.GET("/funding-requests", h.Funding.List)

		authed.POST("/savings-goals", h.Savings.Create)
		authed.GET("/savings-goals", h.Savings.List)

		authed.POST("/investment-offers", h.Investment.Create)
		authed.GET("/investment-offers", h.Investment.List)

		authed.GET("/referrals", h.Referral.List)
		authed.GET("/referrals/stats", h.Referral.Stats)

		authed.GET("/contracts", h.Contract.List)
		authed.POST("/contracts/:id/sign", h.Contract.Sign)
		authed.GET("/contracts/:id/pdf", h.Contract.DownloadPDF)

		authed.GET("/dashboard/stats", h.Dashboard.Stats)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
