package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MikeRez0/enrollment/internal/adapter/config"
	"github.com/MikeRez0/enrollment/internal/adapter/metrics"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/MikeRez0/enrollment/internal/core/port"
	"go.uber.org/zap"
)

// Sweeper periodically reconciles PENDING orders that nobody polled to completion.
type Sweeper struct {
	logger     *zap.Logger
	reconciler port.OrderReconciler
	metrics    *metrics.Metrics
	interval   time.Duration
	minAge     time.Duration
	workers    int
	orderQueue chan string
	now        func() time.Time

	mu     sync.Mutex
	queued map[string]struct{}
}

func NewSweeper(cfg *config.Sweeper, reconciler port.OrderReconciler, m *metrics.Metrics,
	log *zap.Logger) *Sweeper {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Sweeper{
		logger:     log,
		reconciler: reconciler,
		metrics:    m,
		interval:   cfg.Interval,
		minAge:     cfg.MinAge,
		workers:    workers,
		orderQueue: make(chan string, workers*16),
		now:        time.Now,
		queued:     make(map[string]struct{}),
	}
}

// Run sweeps once at start and then every interval until ctx is done. It returns after
// the workers have finished their current order. A zero interval disables the sweeper.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("sweeper disabled")
		return
	}

	wg := sync.WaitGroup{}
	for range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.work(ctx)
		}()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("sweep failed", zap.Error(err))
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			wg.Wait()
			s.logger.Debug("sweeper stopped")
			return
		}
	}
}

// Sweep queues every PENDING order older than minAge that is not queued yet.
func (s *Sweeper) Sweep(ctx context.Context) error {
	orders, err := s.reconciler.ListStalePendingOrders(ctx, s.now().Add(-s.minAge))
	if err != nil {
		return err
	}

	n := 0
	for _, order := range orders {
		if !s.mark(order.OrderID) {
			continue
		}
		select {
		case s.orderQueue <- order.OrderID:
			n++
		case <-ctx.Done():
			s.unmark(order.OrderID)
			return ctx.Err()
		}
	}

	if n > 0 {
		s.logger.Debug("stale orders queued", zap.Int("count", n))
	}
	s.metrics.ObserveSweepQueued(n)
	return nil
}

func (s *Sweeper) work(ctx context.Context) {
	for {
		select {
		case orderID := <-s.orderQueue:
			s.reconcile(ctx, orderID)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Sweeper) reconcile(ctx context.Context, orderID string) {
	defer s.unmark(orderID)

	status, err := s.reconciler.ReconcileOrder(ctx, orderID)
	if err != nil {
		s.metrics.ObserveReconciliation("sweep", "error")
		if errors.Is(err, domain.ErrGatewayUnavailable) || errors.Is(err, context.Canceled) {
			s.logger.Debug("stale order left for next sweep", zap.String("order", orderID), zap.Error(err))
			return
		}
		s.logger.Error("stale order reconciliation", zap.String("order", orderID), zap.Error(err))
		return
	}

	s.metrics.ObserveReconciliation("sweep", string(status))
	if status != domain.OrderStatusPending {
		s.logger.Info("stale order settled", zap.String("order", orderID), zap.String("status", string(status)))
	}
}

func (s *Sweeper) mark(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.queued[orderID]; ok {
		return false
	}
	s.queued[orderID] = struct{}{}
	return true
}

func (s *Sweeper) unmark(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.queued, orderID)
}
