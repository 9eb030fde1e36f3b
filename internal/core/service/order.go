package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/MikeRez0/enrollment/internal/core/domain"
	"go.uber.org/zap"
)

// CreateOrder prices the enrollment, records a PENDING order and opens it at the gateway.
func (s *Service) CreateOrder(ctx context.Context, userID uint64, promoCode string) (*domain.Order, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUnauthorized
		}
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if user.IsEnrolled {
		return nil, domain.ErrAlreadyEnrolled
	}

	err = s.supersedePending(ctx, userID)
	if err != nil {
		return nil, err
	}

	course, err := s.GetCourse(ctx)
	if err != nil {
		return nil, err
	}

	discount, appliedCode := 0, ""
	if code := domain.NormalizePromoCode(promoCode); code != "" {
		discount, appliedCode = s.consumePromotion(ctx, code)
	}

	quote, err := domain.NewQuote(course.Price, s.taxRate, discount)
	if err != nil {
		s.releasePromotion(ctx, appliedCode)
		s.logger.Error("Quote", zap.Int64("price", course.Price), zap.Error(err))
		return nil, domain.ErrInternal
	}
	if quote.Total <= 0 {
		s.releasePromotion(ctx, appliedCode)
		return nil, domain.ErrZeroAmountOrder
	}

	now := s.now()
	order := &domain.Order{
		OrderID:         domain.NewOrderID(userID, now),
		UserID:          userID,
		Amount:          quote.Total,
		Currency:        s.currency,
		Status:          domain.OrderStatusPending,
		PromoCode:       appliedCode,
		DiscountPercent: quote.DiscountPercent,
		DiscountAmount:  quote.DiscountAmount,
		CreatedAt:       now,
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.releasePromotion(ctx, appliedCode)
		if errors.Is(err, domain.ErrDuplicateOrder) {
			return nil, domain.ErrDuplicateOrder
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.logger.Info("order created",
		zap.String("order", newOrder.OrderID),
		zap.Int64("base", quote.BaseAmount),
		zap.Int64("discount", quote.DiscountAmount),
		zap.Int64("total", quote.Total))

	session, err := s.gateway.CreateOrder(ctx, domain.GatewayOrderRequest{
		OrderID:  newOrder.OrderID,
		Amount:   newOrder.Amount,
		Currency: newOrder.Currency,
		Customer: domain.Customer{
			ID:    strconv.FormatUint(user.ID, 10),
			Email: user.Email,
			Phone: user.Phone,
			Name:  user.Name,
		},
	})
	if err != nil {
		if errors.Is(err, domain.ErrGatewayRejected) {
			s.logger.Warn("Gateway rejected order", zap.String("order", newOrder.OrderID), zap.Error(err))
			if _, err := s.settle(ctx, newOrder, domain.Settlement{
				Status:    domain.OrderStatusCancelled,
				SettledAt: s.now(),
			}); err != nil {
				return nil, err
			}
			s.releasePromotion(ctx, appliedCode)
			return nil, domain.ErrGatewayRejected
		}
		// The PENDING order stays for later reconciliation.
		s.logger.Error("Gateway create order", zap.String("order", newOrder.OrderID), zap.Error(err))
		return nil, domain.ErrGatewayUnavailable
	}

	err = s.repo.UpdateOrderSession(ctx, newOrder.OrderID, session.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			// Settled while the gateway call was in flight; the session must not be paid.
			s.logger.Warn("order settled before its session was stored", zap.String("order", newOrder.OrderID))
			if err := s.gateway.TerminateOrder(ctx, newOrder.OrderID); err != nil {
				s.logger.Warn("Gateway terminate order", zap.String("order", newOrder.OrderID), zap.Error(err))
			}
			return nil, domain.ErrOrderSuperseded
		}
		s.logger.Error("Save gateway session", zap.String("order", newOrder.OrderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	newOrder.GatewaySessionID = session.SessionID

	return newOrder, nil
}

// supersedePending clears the way for a new order: a paid pending order means the user
// is enrolled, a live one is terminated at the gateway and cancelled.
func (s *Service) supersedePending(ctx context.Context, userID uint64) error {
	pending, err := s.repo.ReadPendingOrderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil
		}
		s.logger.Error("Read pending order", zap.Error(err))
		return domain.ErrInternal
	}

	status, err := s.reconcileShared(ctx, pending)
	if err != nil {
		return err
	}
	switch status {
	case domain.OrderStatusSuccess:
		return domain.ErrAlreadyEnrolled
	case domain.OrderStatusFailed, domain.OrderStatusCancelled:
		return nil
	}
	if s.mayBeOpening(pending) {
		// Another create-order for this user is still talking to the gateway.
		return domain.ErrDuplicateOrder
	}

	err = s.gateway.TerminateOrder(ctx, pending.OrderID)
	if err != nil && !errors.Is(err, domain.ErrGatewayOrderNotFound) {
		s.logger.Error("Gateway terminate order", zap.String("order", pending.OrderID), zap.Error(err))
		return domain.ErrGatewayUnavailable
	}

	status, err = s.settle(ctx, pending, domain.Settlement{
		Status:    domain.OrderStatusCancelled,
		SettledAt: s.now(),
	})
	if err != nil {
		return err
	}
	if status == domain.OrderStatusSuccess {
		return domain.ErrAlreadyEnrolled
	}
	return nil
}

func (s *Service) GetOrder(ctx context.Context, userID uint64, orderID string) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) ListStalePendingOrders(ctx context.Context, olderThan time.Time) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByStatus(ctx, domain.OrderStatusPending, olderThan)
	if err != nil {
		s.logger.Error("List pending orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) readOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.String("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}
