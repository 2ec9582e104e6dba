package repository

import (
	"context"

	"quikchek/internal/models"

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

var categoryColumns = []string{"id", "user_id", "name", "created_at", "updated_at"}

func (r *CategoryRepository) Create(ctx context.Context, category *models.SpendingCategory) error {
	query := squirrel.Insert("spending_categories").
		Columns(categoryColumns...).
		Values(category.ID, category.UserID, category.Name, category.CreatedAt, category.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SpendingCategory, error) {
	query := squirrel.Select(categoryColumns...).
		From("spending_categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var category models.SpendingCategory
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&category.ID, &category.UserID, &category.Name, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// GetByName looks a category up case-insensitively, matching the unique index.
func (r *CategoryRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.SpendingCategory, error) {
	query := squirrel.Select(categoryColumns...).
		From("spending_categories").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr("LOWER(name) = LOWER(?)", name)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var category models.SpendingCategory
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&category.ID, &category.UserID, &category.Name, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *CategoryRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.SpendingCategory, error) {
	query := squirrel.Select(categoryColumns...).
		From("spending_categories").
		Where(squirrel.Eq{"user_id": userID}).
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

	var categories []*models.SpendingCategory
	for rows.Next() {
		var category models.SpendingCategory
		if err := rows.Scan(
			&category.ID, &category.UserID, &category.Name, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	query := squirrel.Update("spending_categories").
		Set("name", name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("spending_categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// CountDocuments reports how many documents still reference the category,
// which guards deletion.
func (r *CategoryRepository) CountDocuments(ctx context.Context, id uuid.UUID) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("document_categories").
		Where(squirrel.Eq{"category_id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
