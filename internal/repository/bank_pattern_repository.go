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

type BankPatternRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBankPatternRepository(db *pgxpool.Pool, logger *zap.Logger) *BankPatternRepository {
	return &BankPatternRepository{
		db:     db,
		logger: logger,
	}
}

const bankPatternColumns = "id, bank_name, domain, amount_patterns, merchant_patterns, date_patterns, payment_method_patterns, is_active, created_at, updated_at"

func (r *BankPatternRepository) Create(ctx context.Context, pattern *models.BankPattern) error {
	query := squirrel.Insert("bank_patterns").
		Columns("id", "bank_name", "domain", "amount_patterns", "merchant_patterns", "date_patterns", "payment_method_patterns", "is_active", "created_at", "updated_at").
		Values(pattern.ID, pattern.BankName, pattern.Domain, pattern.AmountPatterns, pattern.MerchantPatterns, pattern.DatePatterns, pattern.PaymentMethodPatterns, pattern.IsActive, pattern.CreatedAt, pattern.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns all bank patterns in creation order; the first matching
// pattern in this order wins during extraction.
func (r *BankPatternRepository) List(ctx context.Context) ([]models.BankPattern, error) {
	query := squirrel.Select(bankPatternColumns).
		From("bank_patterns").
		OrderBy("created_at ASC").
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

	var patterns []models.BankPattern
	for rows.Next() {
		var pattern models.BankPattern
		if err := rows.Scan(
			&pattern.ID, &pattern.BankName, &pattern.Domain,
			&pattern.AmountPatterns, &pattern.MerchantPatterns, &pattern.DatePatterns, &pattern.PaymentMethodPatterns,
			&pattern.IsActive, &pattern.CreatedAt, &pattern.UpdatedAt,
		); err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}
	return patterns, rows.Err()
}

func (r *BankPatternRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BankPattern, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *BankPatternRepository) GetByBankName(ctx context.Context, bankName string) (*models.BankPattern, error) {
	return r.getBy(ctx, squirrel.Eq{"bank_name": bankName})
}

func (r *BankPatternRepository) getBy(ctx context.Context, pred squirrel.Eq) (*models.BankPattern, error) {
	query := squirrel.Select(bankPatternColumns).
		From("bank_patterns").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var pattern models.BankPattern
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&pattern.ID, &pattern.BankName, &pattern.Domain,
		&pattern.AmountPatterns, &pattern.MerchantPatterns, &pattern.DatePatterns, &pattern.PaymentMethodPatterns,
		&pattern.IsActive, &pattern.CreatedAt, &pattern.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &pattern, nil
}

func (r *BankPatternRepository) Update(ctx context.Context, pattern *models.BankPattern) error {
	query := squirrel.Update("bank_patterns").
		Set("bank_name", pattern.BankName).
		Set("domain", pattern.Domain).
		Set("amount_patterns", pattern.AmountPatterns).
		Set("merchant_patterns", pattern.MerchantPatterns).
		Set("date_patterns", pattern.DatePatterns).
		Set("payment_method_patterns", pattern.PaymentMethodPatterns).
		Set("is_active", pattern.IsActive).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": pattern.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BankPatternRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := squirrel.Delete("bank_patterns").
		Where(squirrel.Eq{"id": id}).
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
