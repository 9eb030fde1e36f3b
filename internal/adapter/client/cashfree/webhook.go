package cashfree

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type webhookPayload struct {
	Type      string `json:"type"`
	EventTime string `json:"event_time"`
	Data      struct {
		Order struct {
			OrderID     string      `json:"order_id"`
			OrderAmount json.Number `json:"order_amount"`
		} `json:"order"`
		Payment struct {
			CfPaymentID   flexString `json:"cf_payment_id"`
			PaymentStatus string     `json:"payment_status"`
			PaymentGroup  string     `json:"payment_group"`
		} `json:"payment"`
	} `json:"data"`
}

// ParseWebhook verifies the x-webhook-signature of a push and decodes it.
func (c *Client) ParseWebhook(signature, timestamp string, body []byte) (*domain.WebhookEvent, error) {
	err := c.verifySignature(signature, timestamp, body)
	if err != nil {
		c.logger.Warn("webhook rejected", zap.Error(err))
		return nil, domain.ErrInvalidWebhookSignature
	}

	var payload webhookPayload
	err = json.Unmarshal(body, &payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedWebhook, err)
	}
	if payload.Data.Order.OrderID == "" {
		return nil, fmt.Errorf("%w: missing order id", domain.ErrMalformedWebhook)
	}

	event := domain.WebhookEvent{
		Type:                 payload.Type,
		OrderID:              payload.Data.Order.OrderID,
		PaymentStatus:        paymentEventStatus(payload.Type, payload.Data.Payment.PaymentStatus),
		Method:               payload.Data.Payment.PaymentGroup,
		TransactionReference: string(payload.Data.Payment.CfPaymentID),
	}
	if amount := payload.Data.Order.OrderAmount.String(); amount != "" {
		event.Amount, err = decimal.Parse(amount)
		if err != nil {
			return nil, fmt.Errorf("%w: order amount %q", domain.ErrMalformedWebhook, amount)
		}
	}
	if t, err := time.Parse(time.RFC3339, payload.EventTime); err == nil {
		event.EventTime = t
	}

	return &event, nil
}

func (c *Client) verifySignature(signature, timestamp string, body []byte) error {
	if signature == "" || timestamp == "" {
		return fmt.Errorf("missing signature headers")
	}

	mac := hmac.New(sha256.New, []byte(c.secret))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch")
	}

	if c.tolerance > 0 {
		ms, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			return fmt.Errorf("bad timestamp %q: %w", timestamp, err)
		}
		skew := c.now().Sub(time.UnixMilli(ms))
		if skew > c.tolerance || skew < -c.tolerance {
			return fmt.Errorf("timestamp outside tolerance: %s", skew)
		}
	}
	return nil
}

func paymentEventStatus(eventType, status string) domain.PaymentEventStatus {
	if !strings.HasPrefix(eventType, "PAYMENT_") {
		return domain.PaymentEventOther
	}
	switch status {
	case "SUCCESS":
		return domain.PaymentEventSuccess
	case "FAILED", "USER_DROPPED", "CANCELLED", "VOID":
		return domain.PaymentEventFailed
	case "PENDING", "NOT_ATTEMPTED", "FLAGGED":
		return domain.PaymentEventPending
	}
	return domain.PaymentEventOther
}
