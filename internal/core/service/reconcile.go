package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// ReconcileOrder applies the gateway's authoritative status to a stored order.
func (s *Service) ReconcileOrder(ctx context.Context, orderID string) (domain.OrderStatus, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	return s.reconcileShared(ctx, order)
}

// VerifyOrder is ReconcileOrder restricted to the caller's own orders.
func (s *Service) VerifyOrder(ctx context.Context, userID uint64, orderID string) (domain.OrderStatus, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return "", err
	}
	return s.reconcileShared(ctx, order)
}

// CheckPending looks at the user's latest PENDING order and refreshes it from the gateway.
func (s *Service) CheckPending(ctx context.Context, userID uint64) (*domain.PendingCheck, error) {
	pending, err := s.repo.ReadPendingOrderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return &domain.PendingCheck{HasPending: false}, nil
		}
		s.logger.Error("Read pending order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	status, err := s.reconcileShared(ctx, pending)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			s.logger.Warn("pending check without gateway status", zap.String("order", pending.OrderID))
			return &domain.PendingCheck{HasPending: true, Order: pending}, nil
		}
		return nil, err
	}

	if status != domain.OrderStatusPending {
		if settled, err := s.readOrder(ctx, pending.OrderID); err == nil {
			pending = settled
		} else {
			pending.Status = status
		}
	}

	return &domain.PendingCheck{HasPending: status == domain.OrderStatusPending, Order: pending}, nil
}

// HandleWebhook applies a signed gateway push. Only a payment success whose amount
// matches is trusted as is; everything else is re-read from the gateway.
func (s *Service) HandleWebhook(ctx context.Context, signature, timestamp string,
	body []byte) (domain.OrderStatus, error) {
	event, err := s.gateway.ParseWebhook(signature, timestamp, body)
	if err != nil {
		return "", err
	}

	key := event.DeliveryKey()
	if s.deliveries != nil {
		seen, err := s.deliveries.Seen(ctx, key)
		if err != nil {
			s.logger.Warn("webhook dedup unavailable", zap.Error(err))
		} else if seen {
			s.logger.Debug("webhook delivery already handled", zap.String("key", key))
			order, err := s.readOrder(ctx, event.OrderID)
			if err != nil {
				return "", err
			}
			return order.Status, nil
		}
	}

	status, err := s.applyWebhook(ctx, event)
	if err != nil && s.deliveries != nil {
		if ferr := s.deliveries.Forget(ctx, key); ferr != nil {
			s.logger.Warn("webhook dedup release", zap.String("key", key), zap.Error(ferr))
		}
	}
	return status, err
}

func (s *Service) applyWebhook(ctx context.Context, event *domain.WebhookEvent) (domain.OrderStatus, error) {
	order, err := s.readOrder(ctx, event.OrderID)
	if err != nil {
		return "", err
	}
	if order.Status.IsTerminal() {
		return s.reconcileOrder(ctx, order)
	}

	switch event.PaymentStatus {
	case domain.PaymentEventSuccess:
		if amountMatches(order, event.Amount) {
			return s.settle(ctx, order, domain.Settlement{
				Status:               domain.OrderStatusSuccess,
				Method:               event.Method,
				TransactionReference: event.TransactionReference,
				SettledAt:            s.now(),
			})
		}
		s.logger.Warn("webhook amount mismatch",
			zap.String("order", order.OrderID),
			zap.Int64("expected", order.Amount),
			zap.Stringer("got", event.Amount))
		return s.reconcileShared(ctx, order)
	case domain.PaymentEventFailed:
		return s.reconcileShared(ctx, order)
	}

	return order.Status, nil
}

func amountMatches(order *domain.Order, amount decimal.Decimal) bool {
	expected, err := decimal.New(order.Amount, 0)
	if err != nil {
		return false
	}
	return expected.Cmp(amount) == 0
}

// reconcileShared collapses concurrent reconciliations of one order into a single
// gateway round trip.
func (s *Service) reconcileShared(ctx context.Context, order *domain.Order) (domain.OrderStatus, error) {
	v, err, _ := s.inflight.Do(order.OrderID, func() (any, error) {
		// Joined callers must not fail because the first one went away.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reconcileTimeout)
		defer cancel()
		return s.reconcileOrder(ctx, order)
	})
	if err != nil {
		return "", err
	}
	return v.(domain.OrderStatus), nil
}

// mayBeOpening reports whether a create-order call for order can still be in flight.
func (s *Service) mayBeOpening(order *domain.Order) bool {
	return order.GatewaySessionID == "" && s.now().Sub(order.CreatedAt) < s.openGrace
}

func (s *Service) reconcileOrder(ctx context.Context, order *domain.Order) (domain.OrderStatus, error) {
	if order.Status.IsTerminal() {
		if order.Status == domain.OrderStatusSuccess {
			if err := s.enroll(ctx, order); err != nil {
				return "", err
			}
		}
		return order.Status, nil
	}

	gwStatus, err := s.gateway.FetchOrderStatus(ctx, order.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayOrderNotFound) {
			if s.mayBeOpening(order) || order.GatewaySessionID != "" {
				s.logger.Warn("gateway does not know the order yet", zap.String("order", order.OrderID))
				return domain.OrderStatusPending, nil
			}
			s.logger.Info("order never opened at gateway", zap.String("order", order.OrderID))
			return s.settle(ctx, order, domain.Settlement{
				Status:    domain.OrderStatusCancelled,
				SettledAt: s.now(),
			})
		}
		s.logger.Warn("gateway status unavailable", zap.String("order", order.OrderID), zap.Error(err))
		return "", domain.ErrGatewayUnavailable
	}

	target := gwStatus.OrderStatus()
	if target == domain.OrderStatusPending {
		return domain.OrderStatusPending, nil
	}

	settlement := domain.Settlement{Status: target, SettledAt: s.now()}
	if target == domain.OrderStatusSuccess {
		s.fillPaymentDetails(ctx, order.OrderID, &settlement)
	} else {
		s.logger.Info("gateway reports unpaid order",
			zap.String("order", order.OrderID), zap.String("gateway_status", string(gwStatus)))
	}
	return s.settle(ctx, order, settlement)
}

// fillPaymentDetails is best effort; the settlement goes ahead without them.
func (s *Service) fillPaymentDetails(ctx context.Context, orderID string, settlement *domain.Settlement) {
	payments, err := s.gateway.FetchPayments(ctx, orderID)
	if err != nil {
		s.logger.Warn("could not fetch payment details", zap.String("order", orderID), zap.Error(err))
		return
	}
	if len(payments) == 0 {
		return
	}
	chosen := payments[0]
	for _, p := range payments {
		if p.Status == string(domain.PaymentEventSuccess) {
			chosen = p
			break
		}
	}
	settlement.Method = chosen.Method
	settlement.TransactionReference = chosen.TransactionReference
}

func (s *Service) settle(ctx context.Context, order *domain.Order, settlement domain.Settlement) (domain.OrderStatus, error) {
	settled, changed, err := s.repo.TransitionOrder(ctx, order.OrderID, settlement)
	if err != nil {
		s.logger.Error("Transition order", zap.String("order", order.OrderID), zap.Error(err))
		return "", domain.ErrInternal
	}
	if changed {
		s.logger.Info("order settled",
			zap.String("order", settled.OrderID), zap.String("status", string(settled.Status)))
	}

	if settled.Status == domain.OrderStatusSuccess {
		if err := s.enroll(ctx, settled); err != nil {
			return "", err
		}
	}
	return settled.Status, nil
}

// enroll flips the user's enrollment latch; only the call that flips it notifies.
func (s *Service) enroll(ctx context.Context, order *domain.Order) error {
	user, err := s.repo.EnrollUser(ctx, order.UserID, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrNoUpdatedData) {
			return nil
		}
		s.logger.Error("Enroll user", zap.Uint64("user", order.UserID), zap.Error(err))
		return domain.ErrInternal
	}

	s.logger.Info("user enrolled", zap.Uint64("user", user.ID), zap.String("order", order.OrderID))
	s.notify(user, order)
	return nil
}

func (s *Service) notify(user *domain.User, order *domain.Order) {
	if s.notifier == nil {
		return
	}

	n := domain.Notification{
		Email:                user.Email,
		Name:                 user.Name,
		OrderID:              order.OrderID,
		Amount:               order.Amount,
		Currency:             order.Currency,
		TransactionReference: order.TransactionReference,
	}
	if order.SettledAt != nil {
		n.SettledAt = *order.SettledAt
	} else {
		n.SettledAt = s.now()
	}

	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := s.notifier.SendEnrollmentConfirmation(ctx, n)
		if err != nil {
			s.logger.Error("Enrollment notification",
				zap.String("order", n.OrderID),
				zap.Error(fmt.Errorf("%w: %w", domain.ErrNotificationFailed, err)))
			return
		}
		s.logger.Debug("enrollment notification sent", zap.String("order", n.OrderID))
	}()
}
