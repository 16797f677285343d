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

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

const categoryColumns = "id, name, icon, color, keywords, is_active, created_at, updated_at"

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := squirrel.Insert("categories").
		Columns("id", "name", "icon", "color", "keywords", "is_active", "created_at", "updated_at").
		Values(category.ID, category.Name, category.Icon, category.Color, category.Keywords, category.IsActive, category.CreatedAt, category.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns all categories in creation order; the parser relies on this
// ordering for keyword tie-breaks.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := squirrel.Select(categoryColumns).
		From("categories").
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

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
			&category.ID, &category.Name, &category.Icon, &category.Color,
			&category.Keywords, &category.IsActive, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return r.getBy(ctx, squirrel.Eq{"name": name})
}

func (r *CategoryRepository) getBy(ctx context.Context, pred squirrel.Eq) (*models.Category, error) {
	query := squirrel.Select(categoryColumns).
		From("categories").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&category.ID, &category.Name, &category.Icon, &category.Color,
		&category.Keywords, &category.IsActive, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := squirrel.Update("categories").
		Set("name", category.Name).
		Set("icon", category.Icon).
		Set("color", category.Color).
		Set("keywords", category.Keywords).
		Set("is_active", category.IsActive).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": category.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := squirrel.Delete("categories").
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
