package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is matched in order with errors.Is.
var errorStatusMap = []errorStatus{
	{domain.ErrAlreadyEnrolled, http.StatusBadRequest},
	{domain.ErrCourseNotFound, http.StatusNotFound},
	{domain.ErrInvalidPrice, http.StatusBadRequest},
	{domain.ErrInvalidDiscount, http.StatusBadRequest},
	{domain.ErrPromotionExists, http.StatusConflict},
	{domain.ErrPromotionNotFound, http.StatusNotFound},
	{domain.ErrInvalidPromotion, http.StatusBadRequest},
	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrDuplicateOrder, http.StatusConflict},
	{domain.ErrOrderSuperseded, http.StatusConflict},
	{domain.ErrZeroAmountOrder, http.StatusBadRequest},

	{domain.ErrGatewayUnavailable, http.StatusServiceUnavailable},
	{domain.ErrGatewayRejected, http.StatusUnprocessableEntity},
	{domain.ErrInvalidWebhookSignature, http.StatusUnauthorized},
	{domain.ErrMalformedWebhook, http.StatusBadRequest},

	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationType, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrExpiredToken, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},

	{domain.ErrNoUpdatedData, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},

	{domain.ErrInternal, http.StatusInternalServerError},
	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrConflictingData, http.StatusConflict},
}

func statusFor(err error) (int, bool) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) errorBody(err error) (int, errorResponse) {
	statusCode, ok := statusFor(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
		return statusCode, errorResponse{Message: domain.ErrInternal.Error()}
	}
	if statusCode == http.StatusInternalServerError {
		return statusCode, errorResponse{Message: domain.ErrInternal.Error()}
	}
	return statusCode, errorResponse{Message: err.Error()}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.String("path", ctx.FullPath()), zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Message: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, body := h.errorBody(err)
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(statusCode, body)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, body := h.errorBody(err)
	_ = ctx.Error(err)
	ctx.JSON(statusCode, body)
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
