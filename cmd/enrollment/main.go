package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MikeRez0/enrollment/internal/adapter/auth"
	"github.com/MikeRez0/enrollment/internal/adapter/client/cashfree"
	"github.com/MikeRez0/enrollment/internal/adapter/client/mailer"
	"github.com/MikeRez0/enrollment/internal/adapter/config"
	"github.com/MikeRez0/enrollment/internal/adapter/handler/http"
	"github.com/MikeRez0/enrollment/internal/adapter/logger"
	"github.com/MikeRez0/enrollment/internal/adapter/metrics"
	"github.com/MikeRez0/enrollment/internal/adapter/storage"
	"github.com/MikeRez0/enrollment/internal/adapter/storage/delivery"
	"github.com/MikeRez0/enrollment/internal/adapter/storage/repository"
	"github.com/MikeRez0/enrollment/internal/adapter/worker"
	"github.com/MikeRez0/enrollment/internal/core/port"
	"github.com/MikeRez0/enrollment/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return err
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return err
	}
	defer db.Close()
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return err
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return err
	}
	tokenService, err := auth.New(conf.Auth.TokenKey, conf.Auth.TokenTTL)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return err
	}

	gateway, err := cashfree.NewClient(conf.Gateway, conf.HTTP.FrontendURL, log.Named("Cashfree"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return err
	}

	var notifier port.Notifier
	if conf.Mailer.APIKey != "" {
		resend, err := mailer.NewResendClient(conf.Mailer, log.Named("Mailer"))
		if err != nil {
			log.Error("mailer creating error", zap.Error(err))
			return err
		}
		notifier = resend
	} else {
		log.Warn("RESEND_API_KEY is not set, enrollment emails are disabled")
	}

	var deliveries port.DeliveryStore
	if conf.Redis.Address != "" {
		rdb, err := delivery.NewRedisClient(ctx, conf.Redis)
		if err != nil {
			log.Error("redis error", zap.Error(err))
			return err
		}
		defer rdb.Close()
		deliveries = delivery.NewStore(rdb, conf.Redis.DedupTTL)
	}

	m := metrics.New()

	svc, err := service.NewService(repo, tokenService, gateway, notifier, deliveries, service.Options{
		TaxRate:     &conf.Pricing.TaxRate,
		Currency:    conf.Pricing.Currency,
		AdminEmails: conf.Auth.AdminEmails,
		OpenGrace:   conf.Sweeper.MinAge,
	}, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return err
	}
	defer svc.Wait()

	sweeper := worker.NewSweeper(conf.Sweeper, svc, m, log.Named("Sweeper"))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.Run(ctx)
	}()
	defer func() {
		stop()
		wg.Wait()
	}()

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return err
	}
	courseHandler, err := http.NewCourseHandler(svc, log.Named("Course handler"))
	if err != nil {
		log.Error("course handler creating error", zap.Error(err))
		return err
	}
	promoHandler, err := http.NewPromotionHandler(svc, log.Named("Promotion handler"))
	if err != nil {
		log.Error("promotion handler creating error", zap.Error(err))
		return err
	}
	paymentHandler, err := http.NewPaymentHandler(svc, m, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return err
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, http.Handlers{
		User:      userHandler,
		Course:    courseHandler,
		Promotion: promoHandler,
		Payment:   paymentHandler,
	}, m, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return err
	}

	err = r.Serve(ctx, conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return err
	}
	return nil
}
