package http

import (
	"time"

	"github.com/MikeRez0/enrollment/internal/core/domain"
)

type userResponse struct {
	ID           uint64     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	IsAdmin      bool       `json:"is_admin"`
	IsEnrolled   bool       `json:"is_enrolled"`
	EnrolledDate *time.Time `json:"enrolled_date,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type courseResponse struct {
	Price         int64     `json:"price"`
	OriginalPrice *int64    `json:"original_price,omitempty"`
	StartDate     time.Time `json:"start_date"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		Price:         c.Price,
		OriginalPrice: c.OriginalPrice,
		StartDate:     c.StartDate,
		UpdatedAt:     c.UpdatedAt,
	}
}

type promotionResponse struct {
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	Description     string     `json:"description"`
	IsActive        bool       `json:"is_active"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	MaxUses         *int       `json:"max_uses,omitempty"`
	UsedCount       int        `json:"used_count"`
	CreatedAt       time.Time  `json:"created_at"`
}

func newPromotionResponse(p *domain.Promotion) promotionResponse {
	return promotionResponse{
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		Description:     p.Description,
		IsActive:        p.IsActive,
		ValidFrom:       p.ValidFrom,
		ValidUntil:      p.ValidUntil,
		MaxUses:         p.MaxUses,
		UsedCount:       p.UsedCount,
		CreatedAt:       p.CreatedAt,
	}
}

type promotionCheckResponse struct {
	Valid           bool   `json:"valid"`
	Code            string `json:"code,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	Description     string `json:"description,omitempty"`
}

type orderResponse struct {
	OrderID              string     `json:"order_id"`
	Amount               int64      `json:"amount"`
	Currency             string     `json:"currency"`
	Status               string     `json:"status"`
	Method               string     `json:"method,omitempty"`
	TransactionReference string     `json:"transaction_reference,omitempty"`
	PromoCode            string     `json:"promo_code,omitempty"`
	DiscountPercent      int        `json:"discount_percent,omitempty"`
	DiscountAmount       int64      `json:"discount_amount,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	SettledAt            *time.Time `json:"settled_at,omitempty"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		OrderID:              o.OrderID,
		Amount:               o.Amount,
		Currency:             o.Currency,
		Status:               string(o.Status),
		Method:               o.Method,
		TransactionReference: o.TransactionReference,
		PromoCode:            o.PromoCode,
		DiscountPercent:      o.DiscountPercent,
		DiscountAmount:       o.DiscountAmount,
		CreatedAt:            o.CreatedAt,
		SettledAt:            o.SettledAt,
	}
}

type createOrderResponse struct {
	OrderID          string `json:"order_id"`
	GatewaySessionID string `json:"gateway_session_id"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	PromoCode        string `json:"promo_code,omitempty"`
	DiscountPercent  int    `json:"discount_percent,omitempty"`
	DiscountAmount   int64  `json:"discount_amount,omitempty"`
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var verifyMessages = map[domain.OrderStatus]string{
	domain.OrderStatusSuccess:   "Payment successful! You are now enrolled.",
	domain.OrderStatusPending:   "Payment is still pending. Please complete the payment.",
	domain.OrderStatusFailed:    "Payment failed or was cancelled. Please try again.",
	domain.OrderStatusCancelled: "Payment failed or was cancelled. Please try again.",
}

type pendingResponse struct {
	HasPending bool           `json:"has_pending"`
	Order      *orderResponse `json:"order,omitempty"`
}
