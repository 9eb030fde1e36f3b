package port

import (
	"context"
	"time"

	"github.com/MikeRez0/enrollment/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (string, error)

	GetCourse(ctx context.Context) (*domain.Course, error)
	UpdateCoursePrice(ctx context.Context, price int64, originalPrice *int64) (*domain.Course, error)

	ValidatePromotion(ctx context.Context, code string) (*domain.Promotion, error)
	ListPromotions(ctx context.Context) ([]*domain.Promotion, error)
	CreatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	UpdatePromotion(ctx context.Context, code string, upd domain.PromotionUpdate) (*domain.Promotion, error)
	DeletePromotion(ctx context.Context, code string) error

	CreateOrder(ctx context.Context, userID uint64, promoCode string) (*domain.Order, error)
	VerifyOrder(ctx context.Context, userID uint64, orderID string) (domain.OrderStatus, error)
	CheckPending(ctx context.Context, userID uint64) (*domain.PendingCheck, error)
	GetOrder(ctx context.Context, userID uint64, orderID string) (*domain.Order, error)
	GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	HandleWebhook(ctx context.Context, signature, timestamp string, body []byte) (domain.OrderStatus, error)
}

// OrderReconciler is what the stale order sweeper needs from the core.
type OrderReconciler interface {
	ListStalePendingOrders(ctx context.Context, olderThan time.Time) ([]*domain.Order, error)
	ReconcileOrder(ctx context.Context, orderID string) (domain.OrderStatus, error)
}
