package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusSuccess   OrderStatus = "SUCCESS"
	OrderStatusFailed    OrderStatus = "FAILED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal reports whether the status can no longer change.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusSuccess, OrderStatusFailed, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	OrderID              string
	UserID               uint64
	Amount               int64
	Currency             string
	GatewaySessionID     string
	Status               OrderStatus
	Method               string
	TransactionReference string
	PromoCode            string
	DiscountPercent      int
	DiscountAmount       int64
	CreatedAt            time.Time
	SettledAt            *time.Time
}

// NewOrderID builds the ORDER_<user>_<millis> identifier shared with the gateway.
func NewOrderID(userID uint64, at time.Time) string {
	return fmt.Sprintf("ORDER_%d_%d", userID, at.UnixMilli())
}

// Settlement carries the fields written when an order leaves PENDING.
type Settlement struct {
	Status               OrderStatus
	Method               string
	TransactionReference string
	SettledAt            time.Time
}

// PendingCheck is the answer to "does this user have a payment in flight".
type PendingCheck struct {
	HasPending bool
	Order      *Order
}
