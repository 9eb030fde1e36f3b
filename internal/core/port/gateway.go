package port

import (
	"context"

	"github.com/MikeRez0/enrollment/internal/core/domain"
)

// PaymentGateway is the narrow view of the payment processor.
//
//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req domain.GatewayOrderRequest) (*domain.GatewaySession, error)
	FetchOrderStatus(ctx context.Context, orderID string) (domain.GatewayStatus, error)
	FetchPayments(ctx context.Context, orderID string) ([]domain.GatewayPayment, error)
	TerminateOrder(ctx context.Context, orderID string) error
	ParseWebhook(signature, timestamp string, body []byte) (*domain.WebhookEvent, error)
}

// Notifier sends the enrollment confirmation.
type Notifier interface {
	SendEnrollmentConfirmation(ctx context.Context, n domain.Notification) error
}

// DeliveryStore remembers webhook deliveries that were already handled.
type DeliveryStore interface {
	Seen(ctx context.Context, key string) (bool, error)
	Forget(ctx context.Context, key string) error
}
