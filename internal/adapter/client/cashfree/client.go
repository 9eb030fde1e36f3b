package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MikeRez0/enrollment/internal/adapter/config"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const apiVersion = "2023-08-01"

// defaultPhone is sent when the customer has not given one; the gateway requires it.
const defaultPhone = "9999999999"

// Client talks to the Cashfree PG REST API.
type Client struct {
	logger    *zap.Logger
	http      *http.Client
	baseURL   string
	appID     string
	secret    string
	returnURL string
	tolerance time.Duration
	now       func() time.Time
}

func NewClient(cfg *config.Gateway, frontendURL string, log *zap.Logger) (*Client, error) {
	if cfg.AppID == "" || cfg.SecretKey == "" {
		return nil, errors.New("cashfree app id and secret key are required")
	}
	return &Client{
		logger:    log,
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.Endpoint(), "/"),
		appID:     cfg.AppID,
		secret:    cfg.SecretKey,
		returnURL: strings.TrimRight(frontendURL, "/") + "/payment/verify?order_id={order_id}",
		tolerance: cfg.WebhookTolerance,
		now:       time.Now,
	}, nil
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone"`
	CustomerName  string `json:"customer_name,omitempty"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
}

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     int64           `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type orderResponse struct {
	OrderID          string `json:"order_id"`
	OrderStatus      string `json:"order_status"`
	PaymentSessionID string `json:"payment_session_id"`
}

type paymentResponse struct {
	CfPaymentID   flexString `json:"cf_payment_id"`
	PaymentStatus string     `json:"payment_status"`
	PaymentGroup  string     `json:"payment_group"`
}

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}

// flexString accepts a JSON string or number; payment ids come as either.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (c *Client) CreateOrder(ctx context.Context, req domain.GatewayOrderRequest) (*domain.GatewaySession, error) {
	phone := req.Customer.Phone
	if phone == "" {
		phone = defaultPhone
	}
	body := createOrderRequest{
		OrderID:       req.OrderID,
		OrderAmount:   req.Amount,
		OrderCurrency: req.Currency,
		CustomerDetails: customerDetails{
			CustomerID:    req.Customer.ID,
			CustomerEmail: req.Customer.Email,
			CustomerPhone: phone,
			CustomerName:  req.Customer.Name,
		},
		OrderMeta: orderMeta{ReturnURL: c.returnURL},
	}

	var resp orderResponse
	err := c.do(ctx, http.MethodPost, "/orders", req.OrderID, body, &resp)
	if err != nil {
		return nil, err
	}
	if resp.PaymentSessionID == "" {
		return nil, fmt.Errorf("%w: empty payment session for %s", domain.ErrGatewayUnavailable, req.OrderID)
	}

	c.logger.Debug("gateway order created", zap.String("order", req.OrderID))
	return &domain.GatewaySession{SessionID: resp.PaymentSessionID}, nil
}

func (c *Client) FetchOrderStatus(ctx context.Context, orderID string) (domain.GatewayStatus, error) {
	var resp orderResponse
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), "", nil, &resp)
	if err != nil {
		return "", err
	}

	status := domain.ParseGatewayStatus(resp.OrderStatus)
	if status == domain.GatewayStatusUnrecognized {
		c.logger.Warn("unrecognized gateway order status",
			zap.String("order", orderID), zap.String("status", resp.OrderStatus))
	}
	return status, nil
}

func (c *Client) FetchPayments(ctx context.Context, orderID string) ([]domain.GatewayPayment, error) {
	var resp []paymentResponse
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID)+"/payments", "", nil, &resp)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.GatewayPayment, 0, len(resp))
	for _, p := range resp {
		payments = append(payments, domain.GatewayPayment{
			Method:               p.PaymentGroup,
			TransactionReference: string(p.CfPaymentID),
			Status:               p.PaymentStatus,
		})
	}
	return payments, nil
}

func (c *Client) TerminateOrder(ctx context.Context, orderID string) error {
	body := map[string]string{"order_status": string(domain.GatewayStatusTerminated)}
	return c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(orderID), "", body, nil)
}

func (c *Client) do(ctx context.Context, method, path, idempotencyKey string, body, result any) error {
	requestStr := c.baseURL + path

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request %s: %w", requestStr, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestStr, reader)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("x-client-id", c.appID)
	req.Header.Set("x-client-secret", c.secret)
	req.Header.Set("x-api-version", apiVersion)
	req.Header.Set("x-request-id", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("x-idempotency-key", idempotencyKey)
	}

	c.logger.Debug("gateway request",
		zap.String("method", method), zap.String("path", path), zap.String("request_id", requestID))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request %s %s: %w", domain.ErrGatewayUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&errResp)
		c.logger.Warn("unexpected status for gateway request",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("code", errResp.Code),
			zap.String("message", errResp.Message), zap.String("request_id", requestID))

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: %s", domain.ErrGatewayOrderNotFound, errResp.Message)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("%w: status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
		case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict ||
			resp.StatusCode == http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %s", domain.ErrGatewayRejected, errResp.Message)
		}
		return fmt.Errorf("bad response %d for request %s %s: %s", resp.StatusCode, method, path, errResp.Message)
	}

	if result == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return fmt.Errorf("%w: error on response decode: %w", domain.ErrGatewayUnavailable, err)
	}
	return nil
}
