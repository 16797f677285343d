package repository

import (
	"context"
	"time"

	"spendlens/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

const budgetColumns = "id, user_id, category, amount, updated_at"

func (r *BudgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	query := squirrel.Insert("budgets").
		Columns("id", "user_id", "category", "amount", "updated_at").
		Values(budget.ID, budget.UserID, budget.Category, budget.Amount, budget.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BudgetRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error) {
	query := squirrel.Select(budgetColumns).
		From("budgets").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("category ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Amount, &budget.UpdatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, &budget)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) GetByCategory(ctx context.Context, userID uuid.UUID, category string) (*models.Budget, error) {
	query := squirrel.Select(budgetColumns).
		From("budgets").
		Where(squirrel.Eq{"user_id": userID, "category": category}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var budget models.Budget
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&budget.ID, &budget.UserID, &budget.Category, &budget.Amount, &budget.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

func (r *BudgetRepository) UpdateAmount(ctx context.Context, userID uuid.UUID, category, amount string) (bool, error) {
	query := squirrel.Update("budgets").
		Set("amount", amount).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_id": userID, "category": category}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BudgetRepository) Delete(ctx context.Context, userID uuid.UUID, category string) (bool, error) {
	query := squirrel.Delete("budgets").
		Where(squirrel.Eq{"user_id": userID, "category": category}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
