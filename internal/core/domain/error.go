package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenDuration              = errors.New("invalid token duration format")
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrAlreadyEnrolled    = errors.New("you are already enrolled in the course")
	ErrOrderNotFound      = errors.New("payment not found")
	ErrDuplicateOrder     = errors.New("user already has a pending order")
	ErrOrderSuperseded    = errors.New("order was replaced by a newer request")
	ErrZeroAmountOrder    = errors.New("order total must be positive")
	ErrIllegalTransition  = errors.New("order status transition is not allowed")
	ErrCourseNotFound     = errors.New("course information not found")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidDiscount    = errors.New("discount must be between 0 and 100")
	ErrPromotionExists    = errors.New("this promo code already exists")
	ErrNotificationFailed = errors.New("enrollment notification failed")

	// * Gateway errors.
	ErrGatewayUnavailable      = errors.New("payment gateway is unavailable, please retry")
	ErrGatewayOrderNotFound    = errors.New("order is unknown to the payment gateway")
	ErrGatewayRejected         = errors.New("payment gateway rejected the order")
	ErrInvalidWebhookSignature = errors.New("webhook signature is invalid")
	ErrMalformedWebhook        = errors.New("webhook payload is malformed")
)

// ErrInvalidPromotion matches every promotion rejection reason.
var ErrInvalidPromotion = errors.New("invalid promotion")

// PromotionError is a promotion rejection reason with its user-facing text.
type PromotionError struct {
	reason string
}

func (e *PromotionError) Error() string {
	return e.reason
}

func (e *PromotionError) Is(target error) bool {
	return target == ErrInvalidPromotion
}

var (
	ErrPromotionNotFound   = &PromotionError{reason: "Invalid promo code"}
	ErrPromotionInactive   = &PromotionError{reason: "This promo code has been deactivated"}
	ErrPromotionNotStarted = &PromotionError{reason: "This promo code is not yet active"}
	ErrPromotionExpired    = &PromotionError{reason: "This promo code has expired"}
	ErrPromotionExhausted  = &PromotionError{reason: "This promo code has reached its usage limit"}
)
