package http

import (
	"github.com/MikeRez0/enrollment/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CourseHandler struct {
	Handler
	service port.Service
}

type CoursePriceRequest struct {
	Price         *int64 `json:"price" binding:"required"`
	OriginalPrice *int64 `json:"original_price"`
}

func NewCourseHandler(service port.Service, logger *zap.Logger) (*CourseHandler, error) {
	return &CourseHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// GetCourse
//
//	@Summary	Course price and start date
//	@Tags		Course
//	@Produce	json
//	@Success	200	{object}	courseResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/api/course [get]
func (ch *CourseHandler) GetCourse(ctx *gin.Context) {
	course, err := ch.service.GetCourse(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCourseResponse(course))
}

// UpdatePrice
//
//	@Summary	Change the course price
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		CoursePriceRequest	true	"Price in rupees"
//	@Success	200		{object}	courseResponse
//	@Failure	400		{object}	errorResponse
//	@Failure	403		{object}	errorResponse
//	@Router		/api/admin/course/price [put]
func (ch *CourseHandler) UpdatePrice(ctx *gin.Context) {
	req := CoursePriceRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	course, err := ch.service.UpdateCoursePrice(ctx, *req.Price, req.OriginalPrice)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCourseResponse(course))
}
