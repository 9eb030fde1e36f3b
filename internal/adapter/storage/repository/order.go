package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = "order_id, user_id, amount, currency, gateway_session_id, status, payment_method, " +
	"transaction_reference, promo_code, discount_percent, discount_amount, created_at, settled_at"

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var session, method, reference, promo pgtype.Text
	err := row.Scan(
		&order.OrderID,
		&order.UserID,
		&order.Amount,
		&order.Currency,
		&session,
		&order.Status,
		&method,
		&reference,
		&promo,
		&order.DiscountPercent,
		&order.DiscountAmount,
		&order.CreatedAt,
		&order.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	order.GatewaySessionID = session.String
	order.Method = method.String
	order.TransactionReference = reference.String
	order.PromoCode = promo.String
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("order_id", "user_id", "amount", "currency", "gateway_session_id", "status",
			"promo_code", "discount_percent", "discount_amount", "created_at").
		Values(order.OrderID, order.UserID, order.Amount, order.Currency, nullText(order.GatewaySessionID),
			order.Status, nullText(order.PromoCode), order.DiscountPercent, order.DiscountAmount, order.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		// Either the order id or the one-pending-per-user index.
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateOrder
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"order_id": orderID})

	return r.readOrder(ctx, statement)
}

func (r *Repository) ReadPendingOrderByUser(ctx context.Context, userID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"user_id": userID, "status": domain.OrderStatusPending}).
		OrderBy("created_at DESC").
		Limit(1)

	return r.readOrder(ctx, statement)
}

func (r *Repository) readOrder(ctx context.Context, statement sq.SelectBuilder) (*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus,
	createdBefore time.Time) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"status": status}).
		Where(sq.Lt{"created_at": createdBefore}).
		OrderBy("created_at")

	return r.listOrders(ctx, statement)
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateOrderSession(ctx context.Context, orderID string, sessionID string) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("gateway_session_id", nullText(sessionID)).
		Where(sq.Eq{"order_id": orderID, "status": string(domain.OrderStatusPending)})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.ReadOrder(ctx, orderID); err != nil {
			return err
		}
		return domain.ErrNoUpdatedData
	}
	return nil
}

func (r *Repository) TransitionOrder(ctx context.Context, orderID string,
	s domain.Settlement) (*domain.Order, bool, error) {
	if !s.Status.IsTerminal() {
		return nil, false, domain.ErrIllegalTransition
	}

	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", s.Status).
		Set("settled_at", s.SettledAt)
	if s.Status == domain.OrderStatusSuccess {
		statement = statement.
			Set("payment_method", nullText(s.Method)).
			Set("transaction_reference", nullText(s.TransactionReference))
	}
	statement = statement.
		Where(sq.Eq{"order_id": orderID, "status": domain.OrderStatusPending}).
		Suffix("RETURNING " + orderColumns)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, false, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err == nil {
		return order, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// Already settled, or unknown.
	order, err = r.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	return order, false, nil
}
