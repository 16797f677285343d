package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ProcessedEmailRepository records which mail messages have been evaluated.
// A message is marked processed whether or not it produced an expense, so
// it is never re-evaluated.
type ProcessedEmailRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProcessedEmailRepository(db *pgxpool.Pool, logger *zap.Logger) *ProcessedEmailRepository {
	return &ProcessedEmailRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProcessedEmailRepository) IsProcessed(ctx context.Context, emailID string) (bool, error) {
	query := squirrel.Select("count(1)").
		From("processed_emails").
		Where(squirrel.Eq{"email_id": emailID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProcessedEmailRepository) MarkProcessed(ctx context.Context, emailID string) error {
	query := squirrel.Insert("processed_emails").
		Columns("id", "email_id", "processed_at").
		Values(uuid.New(), emailID, time.Now()).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
