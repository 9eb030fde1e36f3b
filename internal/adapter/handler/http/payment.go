package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MikeRez0/enrollment/internal/adapter/metrics"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/MikeRez0/enrollment/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxWebhookBody = 1 << 20

const (
	webhookSignatureHeader = "x-webhook-signature"
	webhookTimestampHeader = "x-webhook-timestamp"
)

type PaymentHandler struct {
	Handler
	service port.Service
	metrics *metrics.Metrics
}

type CreateOrderRequest struct {
	PromoCode string `json:"promo_code"`
}

type VerifyRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// NewPaymentHandler builds the payment endpoints. m may be nil.
func NewPaymentHandler(service port.Service, m *metrics.Metrics, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
		metrics: m,
	}, nil
}

// CreateOrder
//
//	@Summary	Start a payment for the course
//	@Tags		Payment
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		CreateOrderRequest	false	"Optional promo code"
//	@Success	200		{object}	createOrderResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	409		{object}	errorResponse
//	@Failure	422		{object}	errorResponse
//	@Failure	503		{object}	errorResponse
//	@Router		/api/payment/create-order [post]
func (ph *PaymentHandler) CreateOrder(ctx *gin.Context) {
	req := CreateOrderRequest{}
	if ctx.Request.ContentLength != 0 {
		err := ctx.ShouldBindBodyWithJSON(&req)
		if err != nil {
			ph.handleValidationError(ctx, err)
			return
		}
	}

	order, err := ph.service.CreateOrder(ctx, getAuthPayload(ctx).UserID, req.PromoCode)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, createOrderResponse{
		OrderID:          order.OrderID,
		GatewaySessionID: order.GatewaySessionID,
		Amount:           order.Amount,
		Currency:         order.Currency,
		PromoCode:        order.PromoCode,
		DiscountPercent:  order.DiscountPercent,
		DiscountAmount:   order.DiscountAmount,
	})
}

// VerifyOrder
//
//	@Summary	Reconcile a payment after checkout
//	@Tags		Payment
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		VerifyRequest	true	"Order"
//	@Success	200		{object}	verifyResponse
//	@Failure	404		{object}	errorResponse
//	@Failure	503		{object}	errorResponse
//	@Router		/api/payment/verify [post]
func (ph *PaymentHandler) VerifyOrder(ctx *gin.Context) {
	req := VerifyRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	status, err := ph.service.VerifyOrder(ctx, getAuthPayload(ctx).UserID, req.OrderID)
	if err != nil {
		ph.metrics.ObserveReconciliation("verify", "error")
		ph.handleError(ctx, err)
		return
	}
	ph.metrics.ObserveReconciliation("verify", string(status))

	ph.handleSuccess(ctx, verifyResponse{
		Status:  string(status),
		Message: verifyMessages[status],
	})
}

// CheckPending
//
//	@Summary	Refresh the caller's payment in flight
//	@Tags		Payment
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	pendingResponse
//	@Router		/api/payment/check-pending [get]
func (ph *PaymentHandler) CheckPending(ctx *gin.Context) {
	check, err := ph.service.CheckPending(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	resp := pendingResponse{HasPending: check.HasPending}
	if check.Order != nil {
		o := newOrderResponse(check.Order)
		resp.Order = &o
	}
	ph.handleSuccess(ctx, resp)
}

// GetOrder
//
//	@Summary	One of the caller's orders
//	@Tags		Payment
//	@Produce	json
//	@Security	BearerAuth
//	@Param		orderId	path		string	true	"Order id"
//	@Success	200		{object}	orderResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/api/payment/status/{orderId} [get]
func (ph *PaymentHandler) GetOrder(ctx *gin.Context) {
	order, err := ph.service.GetOrder(ctx, getAuthPayload(ctx).UserID, ctx.Param("orderId"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newOrderResponse(order))
}

// ListOrdersByUser
//
//	@Summary	Caller's payment history, newest first
//	@Tags		Payment
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	orderResponse
//	@Router		/api/payment/history [get]
func (ph *PaymentHandler) ListOrdersByUser(ctx *gin.Context) {
	list, err := ph.service.GetOrdersByUser(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}

	ph.handleSuccess(ctx, result)
}

type webhookResponse struct {
	Status string `json:"status"`
}

// Webhook accepts gateway pushes. Undeliverable payloads are acknowledged so the
// gateway stops retrying; transient failures are not.
//
//	@Summary	Gateway payment notification
//	@Tags		Payment
//	@Accept		json
//	@Produce	json
//	@Param		x-webhook-signature	header		string	true	"HMAC signature"
//	@Param		x-webhook-timestamp	header		string	true	"Signature timestamp"
//	@Success	200					{object}	webhookResponse
//	@Failure	401					{object}	errorResponse
//	@Failure	503					{object}	errorResponse
//	@Router		/api/payment/webhook [post]
func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxWebhookBody))
	if err != nil {
		ph.metrics.ObserveWebhook("malformed")
		ph.handleValidationError(ctx, err)
		return
	}
	defer ctx.Request.Body.Close()

	status, err := ph.service.HandleWebhook(ctx,
		ctx.GetHeader(webhookSignatureHeader), ctx.GetHeader(webhookTimestampHeader), body)
	switch {
	case err == nil:
		ph.metrics.ObserveWebhook("applied")
		ph.metrics.ObserveReconciliation("webhook", string(status))
		ph.handleSuccess(ctx, webhookResponse{Status: string(status)})
	case errors.Is(err, domain.ErrMalformedWebhook), errors.Is(err, domain.ErrOrderNotFound):
		ph.logger.Warn("webhook ignored", zap.Error(err))
		ph.metrics.ObserveWebhook("ignored")
		ph.handleSuccess(ctx, webhookResponse{Status: "ignored"})
	case errors.Is(err, domain.ErrInvalidWebhookSignature):
		ph.logger.Warn("webhook rejected", zap.String("ip", ctx.ClientIP()))
		ph.metrics.ObserveWebhook("rejected")
		ph.handleError(ctx, err)
	default:
		ph.metrics.ObserveWebhook("retry")
		ph.handleError(ctx, err)
	}
}
