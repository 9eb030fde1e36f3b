package cashfree

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"testing"
	"time"

	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sign(secret, ts string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

const successPayload = `{
	"data": {
		"order": {"order_id": "ORDER_1_1", "order_amount": 17700.00, "order_currency": "INR"},
		"payment": {"cf_payment_id": 5114910, "payment_status": "SUCCESS", "payment_amount": 17700.00,
			"payment_group": "upi"}
	},
	"event_time": "2026-10-14T15:30:00+05:30",
	"type": "PAYMENT_SUCCESS_WEBHOOK"
}`

func TestClient_ParseWebhook(t *testing.T) {
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	stale := strconv.FormatInt(now.Add(-time.Hour).UnixMilli(), 10)

	tests := []struct {
		name      string
		body      string
		ts        string
		signature func(body []byte, ts string) string
		expError  error
		check     func(t *testing.T, e *domain.WebhookEvent)
	}{
		{
			name: "success",
			body: successPayload,
			ts:   ts,
			check: func(t *testing.T, e *domain.WebhookEvent) {
				assert.Equal(t, "ORDER_1_1", e.OrderID)
				assert.Equal(t, domain.PaymentEventSuccess, e.PaymentStatus)
				assert.Equal(t, "upi", e.Method)
				assert.Equal(t, "5114910", e.TransactionReference)
				assert.Zero(t, e.Amount.Cmp(decimal.MustParse("17700")))
				assert.Equal(t, "PAYMENT_SUCCESS_WEBHOOK", e.Type)
				assert.True(t, e.EventTime.Equal(time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)))
			},
		},
		{
			name: "user dropped counts as failed",
			body: `{"data":{"order":{"order_id":"ORDER_1_1","order_amount":1},` +
				`"payment":{"cf_payment_id":"1","payment_status":"USER_DROPPED"}},"type":"PAYMENT_USER_DROPPED_WEBHOOK"}`,
			ts: ts,
			check: func(t *testing.T, e *domain.WebhookEvent) {
				assert.Equal(t, domain.PaymentEventFailed, e.PaymentStatus)
			},
		},
		{
			name: "non payment event",
			body: `{"data":{"order":{"order_id":"ORDER_1_1"}},"type":"REFUND_STATUS_WEBHOOK"}`,
			ts:   ts,
			check: func(t *testing.T, e *domain.WebhookEvent) {
				assert.Equal(t, domain.PaymentEventOther, e.PaymentStatus)
			},
		},
		{
			name:      "tampered body",
			body:      successPayload,
			ts:        ts,
			signature: func(_ []byte, ts string) string { return sign("secret", ts, []byte(`{}`)) },
			expError:  domain.ErrInvalidWebhookSignature,
		},
		{
			name:      "wrong secret",
			body:      successPayload,
			ts:        ts,
			signature: func(body []byte, ts string) string { return sign("other", ts, body) },
			expError:  domain.ErrInvalidWebhookSignature,
		},
		{
			name:      "missing signature",
			body:      successPayload,
			ts:        ts,
			signature: func([]byte, string) string { return "" },
			expError:  domain.ErrInvalidWebhookSignature,
		},
		{
			name:     "stale timestamp",
			body:     successPayload,
			ts:       stale,
			expError: domain.ErrInvalidWebhookSignature,
		},
		{
			name:     "malformed json",
			body:     `{"data":`,
			ts:       ts,
			expError: domain.ErrMalformedWebhook,
		},
		{
			name:     "missing order",
			body:     `{"data":{"payment":{"payment_status":"SUCCESS"}},"type":"PAYMENT_SUCCESS_WEBHOOK"}`,
			ts:       ts,
			expError: domain.ErrMalformedWebhook,
		},
	}

	c := &Client{logger: zap.NewNop(), secret: "secret", tolerance: 5 * time.Minute,
		now: func() time.Time { return now }}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			body := []byte(test.body)
			sig := sign("secret", test.ts, body)
			if test.signature != nil {
				sig = test.signature(body, test.ts)
			}

			event, err := c.ParseWebhook(sig, test.ts, body)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			test.check(t, event)
		})
	}
}

