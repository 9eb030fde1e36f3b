package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const promotionColumns = "code, discount_percent, description, is_active, valid_from, valid_until, " +
	"max_uses, used_count, created_at, created_by"

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	promo := domain.Promotion{}
	var createdBy pgtype.Int8
	err := row.Scan(
		&promo.Code,
		&promo.DiscountPercent,
		&promo.Description,
		&promo.IsActive,
		&promo.ValidFrom,
		&promo.ValidUntil,
		&promo.MaxUses,
		&promo.UsedCount,
		&promo.CreatedAt,
		&createdBy,
	)
	if err != nil {
		return nil, err
	}
	if createdBy.Valid {
		promo.CreatedBy = uint64(createdBy.Int64)
	}
	return &promo, nil
}

func (r *Repository) CreatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	statement := r.db.QueryBuilder.
		Insert("promotions").
		Columns("code", "discount_percent", "description", "is_active", "valid_from", "valid_until",
			"max_uses", "used_count", "created_at", "created_by").
		Values(promo.Code, promo.DiscountPercent, promo.Description, promo.IsActive, promo.ValidFrom,
			promo.ValidUntil, promo.MaxUses, promo.UsedCount, promo.CreatedAt, nullID(promo.CreatedBy)).
		Suffix("RETURNING " + promotionColumns)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanPromotion(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return created, nil
}

func (r *Repository) ReadPromotion(ctx context.Context, code string) (*domain.Promotion, error) {
	statement := r.db.QueryBuilder.
		Select(promotionColumns).
		From("promotions").
		Where(sq.Eq{"code": code})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	promo, err := scanPromotion(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return promo, nil
}

func (r *Repository) ListPromotions(ctx context.Context) ([]*domain.Promotion, error) {
	statement := r.db.QueryBuilder.
		Select(promotionColumns).
		From("promotions").
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Promotion, 0)
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, promo)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	statement := r.db.QueryBuilder.
		Update("promotions").
		Set("discount_percent", promo.DiscountPercent).
		Set("description", promo.Description).
		Set("is_active", promo.IsActive).
		Set("valid_until", promo.ValidUntil).
		Set("max_uses", promo.MaxUses).
		Where(sq.Eq{"code": promo.Code}).
		Suffix("RETURNING " + promotionColumns)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanPromotion(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *Repository) DeletePromotion(ctx context.Context, code string) error {
	statement := r.db.QueryBuilder.
		Delete("promotions").
		Where(sq.Eq{"code": code})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) IncrementPromotionUsage(ctx context.Context, code string) error {
	statement := r.db.QueryBuilder.
		Update("promotions").
		Set("used_count", sq.Expr("used_count + 1")).
		Where(sq.Eq{"code": code}).
		Where("(max_uses IS NULL OR used_count < max_uses)")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.ReadPromotion(ctx, code); err != nil {
			return err
		}
		return domain.ErrPromotionExhausted
	}
	return nil
}

func (r *Repository) ReleasePromotionUsage(ctx context.Context, code string) error {
	statement := r.db.QueryBuilder.
		Update("promotions").
		Set("used_count", sq.Expr("used_count - 1")).
		Where(sq.Eq{"code": code}).
		Where("used_count > 0")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
