package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/models"
	"spendlens/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrExpenseNotFound = errors.New("expense not found")

// Budget alert thresholds as a percentage of the monthly budget.
const (
	alertWarningPct  = 80
	alertDangerPct   = 95
	alertExceededPct = 100
)

type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	budgetRepo  *repository.BudgetRepository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo *repository.ExpenseRepository, budgetRepo *repository.BudgetRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	amount, err := normalizeAmountString(req.Amount)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseRequestDate(req.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	now := time.Now()
	expense := &models.Expense{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Merchant:      req.Merchant,
		Category:      req.Category,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Source:        models.SourceManual,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logBudgetAlerts(ctx, userID, expense.Category)

	return expenseResponse(expense), nil
}

func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID) ([]*dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return expenseResponses(expenses), nil
}

func (s *ExpenseService) ListByCategory(ctx context.Context, userID uuid.UUID, category string) ([]*dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}
	return expenseResponses(expenses), nil
}

func (s *ExpenseService) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return expenseResponses(expenses), nil
}

func (s *ExpenseService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return expenseResponse(expense), nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}

	if req.Amount != nil {
		amount, err := normalizeAmountString(*req.Amount)
		if err != nil {
			return nil, err
		}
		expense.Amount = amount
	}
	if req.Merchant != nil {
		expense.Merchant = *req.Merchant
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Date != nil {
		date, err := parseRequestDate(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	if req.PaymentMethod != nil {
		expense.PaymentMethod = *req.PaymentMethod
	}
	if req.Notes != nil {
		expense.Notes = req.Notes
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expenseResponse(expense), nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.expenseRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

// Stats aggregates totals for the dashboard: overall, this month, last
// month, per-category.
func (s *ExpenseService) Stats(ctx context.Context, userID uuid.UUID) (*dto.ExpenseStatsResponse, error) {
	expenses, err := s.expenseRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)

	stats := &dto.ExpenseStatsResponse{
		Count:          len(expenses),
		CategoryTotals: map[string]float64{},
	}

	for _, expense := range expenses {
		amount, err := strconv.ParseFloat(expense.Amount, 64)
		if err != nil {
			continue
		}
		stats.Total += amount
		stats.CategoryTotals[expense.Category] += amount
		if !expense.Date.Before(thisMonthStart) {
			stats.ThisMonth += amount
		} else if !expense.Date.Before(lastMonthStart) {
			stats.LastMonth += amount
		}
	}
	if len(expenses) > 0 {
		stats.Average = stats.Total / float64(len(expenses))
	}
	return stats, nil
}

// BudgetStatus evaluates every budget against current-month spending.
func (s *ExpenseService) BudgetStatus(ctx context.Context, userID uuid.UUID) (*dto.BudgetStatusResponse, error) {
	alerts, err := s.checkBudgetAlerts(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &dto.BudgetStatusResponse{
		HasAlerts: len(alerts) > 0,
		Alerts:    alerts,
	}
	for _, alert := range alerts {
		switch alert.Severity {
		case "warning":
			status.Summary.Warning++
		case "danger":
			status.Summary.Danger++
		case "exceeded":
			status.Summary.Exceeded++
		}
	}
	return status, nil
}

func (s *ExpenseService) checkBudgetAlerts(ctx context.Context, userID uuid.UUID) ([]dto.BudgetAlert, error) {
	budgets, err := s.budgetRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	thisMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	expenses, err := s.expenseRepo.ListByDateRange(ctx, userID, thisMonthStart, now)
	if err != nil {
		return nil, err
	}

	categorySpending := map[string]float64{}
	for _, expense := range expenses {
		if amount, err := strconv.ParseFloat(expense.Amount, 64); err == nil {
			categorySpending[expense.Category] += amount
		}
	}

	alerts := []dto.BudgetAlert{}
	for _, budget := range budgets {
		budgetAmount, err := strconv.ParseFloat(budget.Amount, 64)
		if err != nil || budgetAmount <= 0 {
			continue
		}

		spending := categorySpending[budget.Category]
		percentage := spending / budgetAmount * 100
		if percentage < alertWarningPct {
			continue
		}

		severity := "warning"
		if percentage >= alertExceededPct {
			severity = "exceeded"
		} else if percentage >= alertDangerPct {
			severity = "danger"
		}

		alerts = append(alerts, dto.BudgetAlert{
			Category:        budget.Category,
			BudgetAmount:    budgetAmount,
			CurrentSpending: spending,
			Percentage:      percentage,
			Severity:        severity,
		})
	}
	return alerts, nil
}

// logBudgetAlerts surfaces threshold crossings for the affected category.
// Notification delivery is out of scope; alerts are logged.
func (s *ExpenseService) logBudgetAlerts(ctx context.Context, userID uuid.UUID, category string) {
	alerts, err := s.checkBudgetAlerts(ctx, userID)
	if err != nil {
		s.logger.Warn("Budget alert check failed", zap.Error(err))
		return
	}
	for _, alert := range alerts {
		if alert.Category != category {
			continue
		}
		s.logger.Warn("Budget threshold crossed",
			zap.String("category", alert.Category),
			zap.Float64("percentage", alert.Percentage),
			zap.String("severity", alert.Severity),
		)
	}
}

func normalizeAmountString(raw string) (string, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return "", fmt.Errorf("invalid amount %q", raw)
	}
	return fmt.Sprintf("%.2f", value), nil
}

func parseRequestDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

func expenseResponse(expense *models.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            expense.ID.String(),
		Amount:        expense.Amount,
		Merchant:      expense.Merchant,
		Category:      expense.Category,
		Date:          expense.Date.Format(time.RFC3339),
		PaymentMethod: expense.PaymentMethod,
		Notes:         expense.Notes,
		Source:        string(expense.Source),
		EmailID:       expense.EmailID,
		CreatedAt:     expense.CreatedAt.Format(time.RFC3339),
	}
}

func expenseResponses(expenses []*models.Expense) []*dto.ExpenseResponse {
	out := make([]*dto.ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		out[i] = expenseResponse(expense)
	}
	return out
}
