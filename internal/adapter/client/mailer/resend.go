package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MikeRez0/enrollment/internal/adapter/config"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"go.uber.org/zap"
)

const subject = "Welcome to the Live Classes Bootcamp!"

// ResendClient sends enrollment confirmations through the Resend email API.
type ResendClient struct {
	logger  *zap.Logger
	http    *http.Client
	baseURL string
	apiKey  string
	from    string
}

func NewResendClient(cfg *config.Mailer, log *zap.Logger) (*ResendClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("resend api key is required")
	}
	return &ResendClient{
		logger:  log,
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		from:    cfg.From,
	}, nil
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

func (c *ResendClient) SendEnrollmentConfirmation(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(sendEmailRequest{
		From:    c.from,
		To:      []string{n.Email},
		Subject: subject,
		Text:    enrollmentText(n),
	})
	if err != nil {
		return fmt.Errorf("error encoding email: %w", err)
	}

	requestStr := c.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("bad response %v for request %s: %s", resp.StatusCode, requestStr, msg)
	}

	var result sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Debug("email sent, unreadable response", zap.Error(err))
		return nil
	}
	c.logger.Debug("email sent", zap.String("order", n.OrderID), zap.String("email_id", result.ID))
	return nil
}

func enrollmentText(n domain.Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", n.Name)
	b.WriteString("Your payment was received and you are now enrolled in the Live Classes Bootcamp.\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", n.OrderID)
	fmt.Fprintf(&b, "Amount paid: %s %d\n", n.Currency, n.Amount)
	fmt.Fprintf(&b, "Payment date: %s\n", n.SettledAt.Format("02 Jan 2006 15:04 MST"))
	if n.TransactionReference != "" {
		fmt.Fprintf(&b, "Transaction ID: %s\n", n.TransactionReference)
	}
	b.WriteString("\nSee you in class!\n")
	return b.String()
}
