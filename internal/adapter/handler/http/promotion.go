package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/MikeRez0/enrollment/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PromotionHandler struct {
	Handler
	service port.Service
}

type ValidatePromoRequest struct {
	Code string `json:"code" binding:"required"`
}

type CreatePromoRequest struct {
	Code            string     `json:"code" binding:"required"`
	DiscountPercent *int       `json:"discount_percent" binding:"required"`
	Description     string     `json:"description"`
	IsActive        *bool      `json:"is_active"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidUntil      *time.Time `json:"valid_until"`
	MaxUses         *int       `json:"max_uses"`
}

// UpdatePromoRequest leaves absent fields unchanged. The clear_* flags reset the
// respective limit to "unlimited".
type UpdatePromoRequest struct {
	DiscountPercent *int       `json:"discount_percent"`
	Description     *string    `json:"description"`
	IsActive        *bool      `json:"is_active"`
	MaxUses         *int       `json:"max_uses"`
	ValidUntil      *time.Time `json:"valid_until"`
	ClearMaxUses    bool       `json:"clear_max_uses"`
	ClearValidUntil bool       `json:"clear_valid_until"`
}

func NewPromotionHandler(service port.Service, logger *zap.Logger) (*PromotionHandler, error) {
	return &PromotionHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// ValidatePromotion
//
//	@Summary	Check a promo code
//	@Tags		Promo
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		ValidatePromoRequest	true	"Code"
//	@Success	200		{object}	promotionCheckResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/api/promo/validate [post]
func (ph *PromotionHandler) ValidatePromotion(ctx *gin.Context) {
	req := ValidatePromoRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	promo, err := ph.service.ValidatePromotion(ctx, req.Code)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, promotionCheckResponse{
		Valid:           true,
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		Description:     promo.Description,
	})
}

// ListPromotions
//
//	@Summary	All promo codes
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		promotionResponse
//	@Failure	403	{object}	errorResponse
//	@Router		/api/admin/promos [get]
func (ph *PromotionHandler) ListPromotions(ctx *gin.Context) {
	list, err := ph.service.ListPromotions(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]promotionResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newPromotionResponse(p))
	}

	ph.handleSuccess(ctx, result)
}

// CreatePromotion
//
//	@Summary	Add a promo code
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		CreatePromoRequest	true	"Promotion"
//	@Success	201		{object}	promotionResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	409		{object}	errorResponse
//	@Router		/api/admin/promos [post]
func (ph *PromotionHandler) CreatePromotion(ctx *gin.Context) {
	req := CreatePromoRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	promo := &domain.Promotion{
		Code:            req.Code,
		DiscountPercent: *req.DiscountPercent,
		Description:     req.Description,
		IsActive:        req.IsActive == nil || *req.IsActive,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
		MaxUses:         req.MaxUses,
		CreatedBy:       getAuthPayload(ctx).UserID,
	}

	created, err := ph.service.CreatePromotion(ctx, promo)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPromotionResponse(created), http.StatusCreated)
}

// UpdatePromotion
//
//	@Summary	Change a promo code
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		code	path		string				true	"Promo code"
//	@Param		request	body		UpdatePromoRequest	true	"Fields to change"
//	@Success	200		{object}	promotionResponse
//	@Failure	404		{object}	errorResponse
//	@Router		/api/admin/promos/{code} [put]
func (ph *PromotionHandler) UpdatePromotion(ctx *gin.Context) {
	req := UpdatePromoRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	updated, err := ph.service.UpdatePromotion(ctx, ctx.Param("code"), domain.PromotionUpdate{
		DiscountPercent: req.DiscountPercent,
		Description:     req.Description,
		IsActive:        req.IsActive,
		MaxUses:         req.MaxUses,
		ValidUntil:      req.ValidUntil,
		ClearMaxUses:    req.ClearMaxUses,
		ClearValidUntil: req.ClearValidUntil,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPromotionResponse(updated))
}

// DeletePromotion
//
//	@Summary	Remove a promo code
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		code	path	string	true	"Promo code"
//	@Success	204
//	@Failure	404	{object}	errorResponse
//	@Router		/api/admin/promos/{code} [delete]
func (ph *PromotionHandler) DeletePromotion(ctx *gin.Context) {
	err := ph.service.DeletePromotion(ctx, ctx.Param("code"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
