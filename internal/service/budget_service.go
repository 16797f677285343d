package service

import (
	"context"
	"errors"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/models"
	"spendlens/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
	ErrBudgetExists   = errors.New("budget already exists for category")
)

type BudgetService struct {
	budgetRepo *repository.BudgetRepository
	logger     *zap.Logger
}

func NewBudgetService(budgetRepo *repository.BudgetRepository, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		logger:     logger,
	}
}

func (s *BudgetService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*dto.BudgetResponse, error) {
	amount, err := normalizeAmountString(req.Amount)
	if err != nil {
		return nil, err
	}

	existing, err := s.budgetRepo.GetByCategory(ctx, userID, req.Category)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBudgetExists
	}

	budget := &models.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  req.Category,
		Amount:    amount,
		UpdatedAt: time.Now(),
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}
	return budgetResponse(budget), nil
}

func (s *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]*dto.BudgetResponse, error) {
	budgets, err := s.budgetRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.BudgetResponse, len(budgets))
	for i, budget := range budgets {
		out[i] = budgetResponse(budget)
	}
	return out, nil
}

func (s *BudgetService) Update(ctx context.Context, userID uuid.UUID, category string, req *dto.UpdateBudgetRequest) (*dto.BudgetResponse, error) {
	amount, err := normalizeAmountString(req.Amount)
	if err != nil {
		return nil, err
	}

	updated, err := s.budgetRepo.UpdateAmount(ctx, userID, category, amount)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrBudgetNotFound
	}

	budget, err := s.budgetRepo.GetByCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}
	return budgetResponse(budget), nil
}

func (s *BudgetService) Delete(ctx context.Context, userID uuid.UUID, category string) error {
	deleted, err := s.budgetRepo.Delete(ctx, userID, category)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}

func budgetResponse(budget *models.Budget) *dto.BudgetResponse {
	return &dto.BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.Category,
		Amount:    budget.Amount,
		UpdatedAt: budget.UpdatedAt.Format(time.RFC3339),
	}
}
