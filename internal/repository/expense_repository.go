package repository

import (
	"context"
	"time"

	"spendlens/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

const expenseColumns = "id, user_id, amount, merchant, category, date, payment_method, notes, source, email_id, created_at, updated_at"

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns("id", "user_id", "amount", "merchant", "category", "date", "payment_method", "notes", "source", "email_id", "created_at", "updated_at").
		Values(expense.ID, expense.UserID, expense.Amount, expense.Merchant, expense.Category, expense.Date, expense.PaymentMethod, expense.Notes, expense.Source, expense.EmailID, expense.CreatedAt, expense.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Expense, error) {
	query := squirrel.Select(expenseColumns).
		From("expenses").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var expense models.Expense
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&expense.ID, &expense.UserID, &expense.Amount, &expense.Merchant, &expense.Category,
		&expense.Date, &expense.PaymentMethod, &expense.Notes, &expense.Source, &expense.EmailID,
		&expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &expense, nil
}

func (r *ExpenseRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *ExpenseRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Expense, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"user_id": userID},
		squirrel.GtOrEq{"date": start},
		squirrel.LtOrEq{"date": end},
	})
}

func (r *ExpenseRepository) ListByCategory(ctx context.Context, userID uuid.UUID, category string) ([]*models.Expense, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID, "category": category})
}

func (r *ExpenseRepository) list(ctx context.Context, pred squirrel.Sqlizer) ([]*models.Expense, error) {
	query := squirrel.Select(expenseColumns).
		From("expenses").
		Where(pred).
		OrderBy("date DESC").
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

	return scanExpenses(rows)
}

func scanExpenses(rows pgx.Rows) ([]*models.Expense, error) {
	var expenses []*models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(
			&expense.ID, &expense.UserID, &expense.Amount, &expense.Merchant, &expense.Category,
			&expense.Date, &expense.PaymentMethod, &expense.Notes, &expense.Source, &expense.EmailID,
			&expense.CreatedAt, &expense.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, &expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Update("expenses").
		Set("amount", expense.Amount).
		Set("merchant", expense.Merchant).
		Set("category", expense.Category).
		Set("date", expense.Date).
		Set("payment_method", expense.PaymentMethod).
		Set("notes", expense.Notes).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": expense.ID, "user_id": expense.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := squirrel.Delete("expenses").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
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
