package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MikeRez0/enrollment/internal/adapter/config"
	"github.com/MikeRez0/enrollment/internal/adapter/metrics"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/MikeRez0/enrollment/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

func newTestSweeper(t *testing.T, workers int) (*Sweeper, *mock.MockOrderReconciler) {
	ctrl := gomock.NewController(t)
	reconciler := mock.NewMockOrderReconciler(ctrl)
	s := NewSweeper(&config.Sweeper{
		Interval: time.Hour,
		MinAge:   2 * time.Minute,
		Workers:  workers,
	}, reconciler, metrics.New(), zap.NewNop())
	s.now = func() time.Time { return fixedNow }
	return s, reconciler
}

func TestSweeper_SweepQueuesOnce(t *testing.T) {
	s, reconciler := newTestSweeper(t, 1)

	reconciler.EXPECT().ListStalePendingOrders(gomock.Any(), fixedNow.Add(-2*time.Minute)).
		Return([]*domain.Order{{OrderID: "A"}, {OrderID: "B"}}, nil).Times(2)

	require.NoError(t, s.Sweep(context.Background()))
	// A and B are still queued, the second sweep adds nothing.
	require.NoError(t, s.Sweep(context.Background()))

	assert.Len(t, s.orderQueue, 2)
	assert.Equal(t, "A", <-s.orderQueue)
	assert.Equal(t, "B", <-s.orderQueue)
}

func TestSweeper_SweepListError(t *testing.T) {
	s, reconciler := newTestSweeper(t, 1)
	reconciler.EXPECT().ListStalePendingOrders(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInternal)

	assert.Equal(t, domain.ErrInternal, s.Sweep(context.Background()))
}

func TestSweeper_ReconcileUnmarks(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "settled"},
		{name: "gateway unavailable", err: domain.ErrGatewayUnavailable},
		{name: "unexpected", err: errors.New("boom")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, reconciler := newTestSweeper(t, 1)
			status := domain.OrderStatusSuccess
			if test.err != nil {
				status = ""
			}
			reconciler.EXPECT().ReconcileOrder(gomock.Any(), "A").Return(status, test.err)

			require.True(t, s.mark("A"))
			s.reconcile(context.Background(), "A")
			assert.True(t, s.mark("A"), "order must be queueable again")
		})
	}
}

func TestSweeper_Run(t *testing.T) {
	s, reconciler := newTestSweeper(t, 2)

	var mu sync.Mutex
	done := make(map[string]bool)
	all := make(chan struct{})

	reconciler.EXPECT().ListStalePendingOrders(gomock.Any(), gomock.Any()).
		Return([]*domain.Order{{OrderID: "A"}, {OrderID: "B"}, {OrderID: "C"}}, nil)
	reconciler.EXPECT().ReconcileOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (domain.OrderStatus, error) {
			mu.Lock()
			defer mu.Unlock()
			done[id] = true
			if len(done) == 3 {
				close(all)
			}
			return domain.OrderStatusFailed, nil
		}).Times(3)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(stopped)
	}()

	select {
	case <-all:
	case <-time.After(5 * time.Second):
		t.Fatal("orders were not reconciled")
	}
	cancel()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
	assert.Len(t, done, 3)
}

func TestSweeper_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewSweeper(&config.Sweeper{}, mock.NewMockOrderReconciler(ctrl), nil, zap.NewNop())

	finished := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("disabled sweeper must return immediately")
	}
}
