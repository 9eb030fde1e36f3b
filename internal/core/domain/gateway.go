package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// GatewayStatus is the order state reported by the payment gateway.
type GatewayStatus string

const (
	GatewayStatusPaid                 GatewayStatus = "PAID"
	GatewayStatusActive               GatewayStatus = "ACTIVE"
	GatewayStatusExpired              GatewayStatus = "EXPIRED"
	GatewayStatusTerminated           GatewayStatus = "TERMINATED"
	GatewayStatusTerminationRequested GatewayStatus = "TERMINATION_REQUESTED"
	GatewayStatusUnrecognized         GatewayStatus = "UNRECOGNIZED"
)

func ParseGatewayStatus(s string) GatewayStatus {
	switch st := GatewayStatus(s); st {
	case GatewayStatusPaid, GatewayStatusActive, GatewayStatusExpired,
		GatewayStatusTerminated, GatewayStatusTerminationRequested:
		return st
	}
	return GatewayStatusUnrecognized
}

// OrderStatus maps the gateway state onto the ledger; unknown states fail the order.
func (s GatewayStatus) OrderStatus() OrderStatus {
	switch s {
	case GatewayStatusPaid:
		return OrderStatusSuccess
	case GatewayStatusActive:
		return OrderStatusPending
	}
	return OrderStatusFailed
}

type Customer struct {
	ID    string
	Email string
	Phone string
	Name  string
}

type GatewayOrderRequest struct {
	OrderID  string
	Amount   int64
	Currency string
	Customer Customer
}

type GatewaySession struct {
	SessionID string
}

type GatewayPayment struct {
	Method               string
	TransactionReference string
	Status               string
}

// PaymentEventStatus is the payment outcome asserted by a webhook.
type PaymentEventStatus string

const (
	PaymentEventSuccess PaymentEventStatus = "SUCCESS"
	PaymentEventFailed  PaymentEventStatus = "FAILED"
	PaymentEventPending PaymentEventStatus = "PENDING"
	PaymentEventOther   PaymentEventStatus = "OTHER"
)

type WebhookEvent struct {
	Type                 string
	OrderID              string
	Amount               decimal.Decimal
	PaymentStatus        PaymentEventStatus
	Method               string
	TransactionReference string
	EventTime            time.Time
}

// DeliveryKey identifies one webhook delivery for dedup.
func (e *WebhookEvent) DeliveryKey() string {
	return "webhook:" + e.OrderID + ":" + e.TransactionReference + ":" + string(e.PaymentStatus)
}

// Notification is the payload of the enrollment confirmation.
type Notification struct {
	Email                string
	Name                 string
	OrderID              string
	Amount               int64
	Currency             string
	SettledAt            time.Time
	TransactionReference string
}
