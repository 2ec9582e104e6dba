package repository

import (
	"context"

	"quikchek/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PeriodRepository stores a user's custom comparison periods. Position is the
// period's index in the comparison view; the two seeded periods occupy 0 and
// 1 and are never stored, so stored positions start at 2.
type PeriodRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPeriodRepository(db *pgxpool.Pool, logger *zap.Logger) *PeriodRepository {
	return &PeriodRepository{
		db:     db,
		logger: logger,
	}
}

var periodColumns = []string{"id", "user_id", "position", "start_date", "end_date", "created_at"}

func (r *PeriodRepository) Create(ctx context.Context, period *models.Period) error {
	query := squirrel.Insert("periods").
		Columns(periodColumns...).
		Values(period.ID, period.UserID, period.Position, period.StartDate, period.EndDate, period.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PeriodRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Period, error) {
	query := squirrel.Select(periodColumns...).
		From("periods").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("position ASC").
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

	var periods []*models.Period
	for rows.Next() {
		var period models.Period
		if err := rows.Scan(
			&period.ID, &period.UserID, &period.Position,
			&period.StartDate, &period.EndDate, &period.CreatedAt,
		); err != nil {
			return nil, err
		}
		periods = append(periods, &period)
	}

	return periods, rows.Err()
}

func (r *PeriodRepository) GetByPosition(ctx context.Context, userID uuid.UUID, position int) (*models.Period, error) {
	query := squirrel.Select(periodColumns...).
		From("periods").
		Where(squirrel.Eq{"user_id": userID, "position": position}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var period models.Period
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&period.ID, &period.UserID, &period.Position,
		&period.StartDate, &period.EndDate, &period.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &period, nil
}

func (r *PeriodRepository) UpdateDates(ctx context.Context, period *models.Period) error {
	query := squirrel.Update("periods").
		Set("start_date", period.StartDate).
		Set("end_date", period.EndDate).
		Where(squirrel.Eq{"id": period.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Delete removes one period and shifts later positions down so the stored
// order stays contiguous.
func (r *PeriodRepository) Delete(ctx context.Context, period *models.Period) error {
	deleteQuery := squirrel.Delete("periods").
		Where(squirrel.Eq{"id": period.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := deleteQuery.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return err
	}

	shiftQuery := squirrel.Update("periods").
		Set("position", squirrel.Expr("position - 1")).
		Where(squirrel.Eq{"user_id": period.UserID}).
		Where(squirrel.Gt{"position": period.Position}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = shiftQuery.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// MaxPosition returns the highest stored position for the user, or 1 when no
// custom periods exist (the seeded slots).
func (r *PeriodRepository) MaxPosition(ctx context.Context, userID uuid.UUID) (int, error) {
	query := squirrel.Select("COALESCE(MAX(position), 1)").
		From("periods").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var position int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&position); err != nil {
		return 0, err
	}

	return position, nil
}
