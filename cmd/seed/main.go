package main

import (
	"context"
	"errors"
	"log"
	"time"

	"spendlens/internal/parser"
	"spendlens/internal/repository"
	"spendlens/pkg/config"
	"spendlens/pkg/logger"
	"spendlens/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Seeds the default categories and bank patterns. Existing rows are
// matched by name and left untouched, so reruns are safe.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	bankPatternRepo := repository.NewBankPatternRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if err := seedCategories(ctx, categoryRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}
	if err := seedBankPatterns(ctx, bankPatternRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed bank patterns", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedCategories(ctx context.Context, repo *repository.CategoryRepository, logger *zap.Logger) error {
	now := time.Now()
	var created, skipped int

	for _, category := range parser.DefaultCategories() {
		existing, err := repo.GetByName(ctx, category.Name)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if existing != nil {
			skipped++
			continue
		}

		category.ID = uuid.New()
		category.CreatedAt = now
		category.UpdatedAt = now
		if err := repo.Create(ctx, &category); err != nil {
			return err
		}

		logger.Info("Created category", zap.String("name", category.Name))
		created++
	}

	logger.Info("Category seeding done", zap.Int("created", created), zap.Int("skipped", skipped))
	return nil
}

func seedBankPatterns(ctx context.Context, repo *repository.BankPatternRepository, logger *zap.Logger) error {
	now := time.Now()
	var created, skipped int

	for _, pattern := range parser.DefaultBankPatterns() {
		existing, err := repo.GetByBankName(ctx, pattern.BankName)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if existing != nil {
			skipped++
			continue
		}

		pattern.ID = uuid.New()
		pattern.CreatedAt = now
		pattern.UpdatedAt = now
		if err := repo.Create(ctx, &pattern); err != nil {
			return err
		}

		logger.Info("Created bank pattern",
			zap.String("bank", pattern.BankName),
			zap.String("domain", pattern.Domain),
		)
		created++
	}

	logger.Info("Bank pattern seeding done", zap.Int("created", created), zap.Int("skipped", skipped))
	return nil
}
