package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/enrollment/docs"
	"github.com/MikeRez0/enrollment/internal/adapter/config"
	"github.com/MikeRez0/enrollment/internal/adapter/metrics"
	"github.com/MikeRez0/enrollment/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Router struct {
	*gin.Engine
	logger *zap.Logger
}

type Handlers struct {
	User      *UserHandler
	Course    *CourseHandler
	Promotion *PromotionHandler
	Payment   *PaymentHandler
}

// NewRouter mounts the API. m may be nil, /metrics is then not served.
func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	handlers Handlers,
	m *metrics.Metrics,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.ContextWithFallback = true
	router.Use(gin.Recovery(), requestID(), cors(conf.FrontendURL))

	h := NewHandler(logger)

	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", handlers.User.RegisterUser)
			user.POST("/login", handlers.User.LoginUser)
		}

		api.GET("/course", handlers.Course.GetCourse)

		promo := api.Group("/promo")
		{
			promo.Use(authCheck(h, tokenService))
			promo.POST("/validate", handlers.Promotion.ValidatePromotion)
		}

		payment := api.Group("/payment")
		{
			payment.POST("/webhook", handlers.Payment.Webhook)

			authorized := payment.Group("")
			authorized.Use(authCheck(h, tokenService))
			authorized.POST("/create-order", handlers.Payment.CreateOrder)
			authorized.POST("/verify", handlers.Payment.VerifyOrder)
			authorized.GET("/check-pending", handlers.Payment.CheckPending)
			authorized.GET("/status/:orderId", handlers.Payment.GetOrder)
			authorized.GET("/history", handlers.Payment.ListOrdersByUser)
		}

		admin := api.Group("/admin")
		{
			admin.Use(authCheck(h, tokenService), adminCheck(h))
			admin.PUT("/course/price", handlers.Course.UpdatePrice)
			admin.GET("/promos", handlers.Promotion.ListPromotions)
			admin.POST("/promos", handlers.Promotion.CreatePromotion)
			admin.PUT("/promos/:code", handlers.Promotion.UpdatePromotion)
			admin.DELETE("/promos/:code", handlers.Promotion.DeletePromotion)
		}
	}

	return &Router{Engine: router, logger: logger}, nil
}

// Serve starts the HTTP server and shuts it down gracefully when ctx is done
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", zap.String("addr", listenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
