package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const courseColumns = "price, original_price, start_date, updated_at"

func (r *Repository) ReadCourse(ctx context.Context) (*domain.Course, error) {
	statement := r.db.QueryBuilder.
		Select(courseColumns).
		From("course").
		Where(sq.Eq{"id": 1})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanCourse(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) UpdateCoursePrice(ctx context.Context, price int64, originalPrice *int64) (*domain.Course, error) {
	statement := r.db.QueryBuilder.
		Update("course").
		Set("price", price).
		Set("original_price", originalPrice).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": 1}).
		Suffix("RETURNING " + courseColumns)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanCourse(r.db.QueryRow(ctx, sql, args...))
}

func scanCourse(row pgx.Row) (*domain.Course, error) {
	course := domain.Course{}
	err := row.Scan(
		&course.Price,
		&course.OriginalPrice,
		&course.StartDate,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &course, nil
}
