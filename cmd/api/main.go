package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	authUseCase "github.com/flouscash/platform/internal/domain/usecase/auth"
	contractUseCase "github.com/flouscash/platform/internal/domain/usecase/contract"
	dashboardUseCase "github.com/flouscash/platform/internal/domain/usecase/dashboard"
	fundingUseCase "github.com/flouscash/platform/internal/domain/usecase/funding"
	investmentUseCase "github.com/flouscash/platform/internal/domain/usecase/investment"
	"github.com/flouscash/platform/internal/domain/usecase/notification"
	referralUseCase "github.com/flouscash/platform/internal/domain/usecase/referral"
	savingsUseCase "github.com/flouscash/platform/internal/domain/usecase/savings"
	userUseCase "github.com/flouscash/platform/internal/domain/usecase/user"

	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/handler"
	"github.com/flouscash/platform/internal/infrastructure/adapter/api/routes"
	"github.com/flouscash/platform/internal/infrastructure/adapter/database"
	"github.com/flouscash/platform/internal/infrastructure/adapter/document"
	"github.com/flouscash/platform/internal/infrastructure/adapter/logger"
	"github.com/flouscash/platform/internal/infrastructure/adapter/notification/email"
	"github.com/flouscash/platform/internal/infrastructure/adapter/notification/telegram"
	"github.com/flouscash/platform/internal/infrastructure/adapter/repository"
	timeProvider "github.com/flouscash/platform/internal/infrastructure/adapter/time"
	"github.com/flouscash/platform/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(parseLogLevel(cfg.Logger.Level))

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	sessionRepo := repository.NewSessionRepository(dbManager.DB(), tp, appLogger)
	fundingRepo := repository.NewFundingRequestRepository(dbManager.DB(), tp, appLogger)
	savingsRepo := repository.NewSavingsGoalRepository(dbManager.DB(), tp, appLogger)
	investmentRepo := repository.NewInvestmentOfferRepository(dbManager.DB(), tp, appLogger)
	referralRepo := repository.NewReferralRepository(dbManager.DB(), tp, appLogger)
	contractRepo := repository.NewContractRepository(dbManager.DB(), tp, appLogger)

	// Initialize notification channels and the best-effort dispatcher
	emailSender := email.NewSender(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, appLogger)
	telegramNotifier := telegram.NewNotifier(telegram.Config{
		BotToken: cfg.Telegram.BotToken,
		ChatID:   cfg.Telegram.ChatID,
	}, tp, appLogger)
	dispatcher := notification.NewDispatcher(emailSender, telegramNotifier, tp, appLogger, cfg.Notification.Timeout)

	// Initialize the PDF renderer
	pdfRenderer := document.NewPDFRenderer(tp, appLogger)

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	authUseCaseImpl := authUseCase.NewAuthUseCase(userUseCaseImpl, sessionRepo, dispatcher, tp, appLogger, cfg.Session.TTL)
	fundingUseCaseImpl := fundingUseCase.NewFundingUseCase(fundingRepo, contractRepo, userRepo, dispatcher, tp, appLogger)
	savingsUseCaseImpl := savingsUseCase.NewSavingsUseCase(savingsRepo, userRepo, dispatcher, tp, appLogger)
	investmentUseCaseImpl := investmentUseCase.NewInvestmentUseCase(investmentRepo, contractRepo, userRepo, dispatcher, tp, appLogger)
	referralUseCaseImpl := referralUseCase.NewReferralUseCase(referralRepo, userRepo, tp, appLogger)
	contractUseCaseImpl := contractUseCase.NewContractUseCase(contractRepo, userRepo, pdfRenderer, dispatcher, tp, appLogger)
	dashboardUseCaseImpl := dashboardUseCase.NewDashboardUseCase(fundingRepo, savingsRepo, investmentRepo, referralRepo, appLogger)

	// Clear out sessions that expired while the server was down
	if err := authUseCaseImpl.PurgeExpiredSessions(context.Background()); err != nil {
		appLogger.Warn("Failed to purge expired sessions", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize API handlers
	handlers := routes.Handlers{
		Auth: handler.NewAuthHandler(authUseCaseImpl, handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		}, appLogger),
		Funding:    handler.NewFundingHandler(fundingUseCaseImpl, appLogger),
		Savings:    handler.NewSavingsHandler(savingsUseCaseImpl, appLogger),
		Investment: handler.NewInvestmentHandler(investmentUseCaseImpl, appLogger),
		Referral:   handler.NewReferralHandler(referralUseCaseImpl, appLogger),
		Contract:   handler.NewContractHandler(contractUseCaseImpl, appLogger),
		Dashboard:  handler.NewDashboardHandler(dashboardUseCaseImpl, appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, handlers, authUseCaseImpl, cfg.Session.CookieName, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// Let in-flight notification dispatches drain before exit
	appLogger.Info("Draining notification dispatcher...", nil)
	dispatcher.Wait()

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logger: %v", err)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// parseLogLevel maps a configured level string to the logger's level type
func parseLogLevel(level string) coreport.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return coreport.LogLevelDebug
	case "warn", "warning":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("FC_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or FC_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("FC_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or FC_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("FC_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or FC_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("FC_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or FC_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("FC_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or FC_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate session configuration
	if cfg.Session.CookieName == "" {
		missingConfigs = append(missingConfigs, "session.cookieName")
	}

	if cfg.Session.TTL == 0 {
		missingConfigs = append(missingConfigs, "session.ttl")
	}

	if cfg.Notification.Timeout == 0 {
		missingConfigs = append(missingConfigs, "notification.timeout")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment: %s (must be %s, %s or %s)",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingConfigs, ", "))
	}

	return nil
}
