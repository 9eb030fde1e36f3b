package port

import (
	"context"
	"time"

	"github.com/MikeRez0/enrollment/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*domain.User, error)
	// EnrollUser flips the enrollment latch; ErrNoUpdatedData when already enrolled.
	EnrollUser(ctx context.Context, userID uint64, at time.Time) (*domain.User, error)

	// Course
	ReadCourse(ctx context.Context) (*domain.Course, error)
	UpdateCoursePrice(ctx context.Context, price int64, originalPrice *int64) (*domain.Course, error)

	// Promotion
	CreatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	ReadPromotion(ctx context.Context, code string) (*domain.Promotion, error)
	ListPromotions(ctx context.Context) ([]*domain.Promotion, error)
	UpdatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error)
	DeletePromotion(ctx context.Context, code string) error
	// IncrementPromotionUsage consumes one use; ErrPromotionExhausted when the cap is hit.
	IncrementPromotionUsage(ctx context.Context, code string) error
	// ReleasePromotionUsage gives back a use consumed by an order that was never opened.
	ReleasePromotionUsage(ctx context.Context, code string) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ReadPendingOrderByUser(ctx context.Context, userID uint64) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus, createdBefore time.Time) ([]*domain.Order, error)
	// UpdateOrderSession stores the session of a PENDING order; ErrNoUpdatedData when the
	// order has already settled.
	UpdateOrderSession(ctx context.Context, orderID string, sessionID string) error
	// TransitionOrder settles a PENDING order. A non-PENDING order is returned as is
	// with changed=false.
	TransitionOrder(ctx context.Context, orderID string, s domain.Settlement) (order *domain.Order, changed bool, err error)
}
