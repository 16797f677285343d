package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spendlens/internal/api"
	"spendlens/internal/api/handlers"
	"spendlens/internal/parser"
	"spendlens/internal/repository"
	"spendlens/internal/service"
	"spendlens/pkg/auth"
	"spendlens/pkg/config"
	"spendlens/pkg/logger"
	"spendlens/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// @title SpendLens API
// @version 1.0
// @description Expense tracking service with rule-driven bank email parsing

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting SpendLens service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	bankPatternRepo := repository.NewBankPatternRepository(db, appLogger)
	processedRepo := repository.NewProcessedEmailRepository(db, appLogger)
	patternStore := repository.NewPatternStore(bankPatternRepo, categoryRepo)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize parser and services
	emailParser := parser.New(patternStore, appLogger)

	defaultUserID := uuid.Nil
	if cfg.EmailSync.DefaultUserID != "" {
		defaultUserID, err = uuid.Parse(cfg.EmailSync.DefaultUserID)
		if err != nil {
			appLogger.Fatal("Invalid EXPENSE_DEFAULT_USER_ID", zap.Error(err))
		}
	}

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, budgetRepo, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, appLogger)
	configService := service.NewConfigService(bankPatternRepo, categoryRepo, appLogger)
	ingestService := service.NewIngestService(emailParser, expenseRepo, processedRepo, defaultUserID, appLogger)

	// No mail provider is wired in this build. Polling endpoints report
	// the client as unavailable until one is plugged in.
	pollingService := service.NewPollingService(cfg.EmailSync, nil, ingestService, bankPatternRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, expenseService, appLogger)
	configHandler := handlers.NewConfigHandler(configService, appLogger)
	ingestHandler := handlers.NewIngestHandler(ingestService, pollingService, appLogger)

	// Setup router
	app := api.SetupRouter(
		authHandler,
		expenseHandler,
		budgetHandler,
		configHandler,
		ingestHandler,
		jwtManager,
		appLogger,
	)

	// Start polling if a mail client is available
	if err := pollingService.Start(ctx); err != nil {
		if err == service.ErrNoMailClient {
			appLogger.Info("Email polling disabled, no mail client configured")
		} else {
			appLogger.Error("Failed to start email polling", zap.Error(err))
		}
	}

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	pollingService.Stop()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
