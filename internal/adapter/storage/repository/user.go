package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = "id, email, password, name, phone, is_admin, is_enrolled, enrolled_date, created_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	user := domain.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.Phone,
		&user.IsAdmin,
		&user.IsEnrolled,
		&user.EnrolledDate,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("email", "password", "name", "phone", "is_admin", "created_at").
		Values(user.Email, user.Password, user.Name, user.Phone, user.IsAdmin, user.CreatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint64) (*domain.User, error) {
	return r.getUser(ctx, sq.Eq{"id": userID})
}

func (r *Repository) getUser(ctx context.Context, where sq.Eq) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select(userColumns).
		From("users").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *Repository) EnrollUser(ctx context.Context, userID uint64, at time.Time) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Update("users").
		Set("is_enrolled", true).
		Set("enrolled_date", at).
		Where(sq.Eq{"id": userID, "is_enrolled": false}).
		Suffix("RETURNING " + userColumns)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoUpdatedData
		}
		return nil, err
	}
	return user, nil
}
