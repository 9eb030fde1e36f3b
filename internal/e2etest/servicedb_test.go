package service_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MikeRez0/enrollment/internal/adapter/auth"
	"github.com/MikeRez0/enrollment/internal/adapter/config"
	"github.com/MikeRez0/enrollment/internal/adapter/storage"
	"github.com/MikeRez0/enrollment/internal/adapter/storage/repository"
	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/MikeRez0/enrollment/internal/core/port"
	"github.com/MikeRez0/enrollment/internal/core/port/mock"
	"github.com/MikeRez0/enrollment/internal/core/service"
	"github.com/MikeRez0/enrollment/internal/e2etest/testdb"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var dbtest *testdb.TestDBInstance

func setup() {
	var err error
	dbtest, err = testdb.NewTestDBInstance()
	if err != nil {
		log.Println("e2e database unavailable:", err)
		dbtest = nil
	}
}

func shutdown() {
	if dbtest != nil {
		dbtest.Down()
	}
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	shutdown()
	os.Exit(code)
}

var migrateOnce sync.Once

func getDeps(t *testing.T) (port.Repository, port.TokenService) {
	t.Helper()
	if dbtest == nil {
		t.Skip("no docker and no TEST_DATABASE_URI")
	}

	db, err := storage.NewDBStorage(context.Background(), &config.Database{DSN: dbtest.DSN})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	migrateOnce.Do(func() {
		require.NoError(t, db.RunMigrations())
	})

	repo, err := repository.NewRepository(db)
	require.NoError(t, err)
	ts, err := auth.New("", time.Hour)
	require.NoError(t, err)

	return repo, ts
}

var userSeq atomic.Int64

func newUser(t *testing.T, s *service.Service) *domain.User {
	t.Helper()
	n := userSeq.Add(1)
	user, err := s.RegisterUser(context.Background(), &domain.User{
		Email:    fmt.Sprintf("student%d_%d@example.com", n, time.Now().UnixNano()),
		Password: "test",
		Name:     "Student",
		Phone:    "9876543210",
	})
	require.NoError(t, err)
	return user
}

func TestServiceDB_UserRegisterLogin(t *testing.T) {
	repo, ts := getDeps(t)
	s, err := service.NewService(repo, ts, nil, nil, nil, service.Options{}, zap.NewNop())
	require.NoError(t, err)

	user := newUser(t, s)
	assert.NotZero(t, user.ID)
	assert.False(t, user.IsEnrolled)

	_, err = s.RegisterUser(context.Background(), &domain.User{Email: user.Email, Password: "x"})
	assert.Equal(t, domain.ErrConflictingData, err)

	token, err := s.LoginUser(context.Background(), user.Email, "test")
	require.NoError(t, err)
	payload, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, payload.UserID)

	_, err = s.LoginUser(context.Background(), user.Email, "hacker")
	assert.Equal(t, domain.ErrInvalidCredentials, err)
}

func TestServiceDB_Course(t *testing.T) {
	repo, _ := getDeps(t)
	ctx := context.Background()

	course, err := repo.ReadCourse(ctx)
	require.NoError(t, err)
	assert.Positive(t, course.Price)

	original := int64(20000)
	updated, err := repo.UpdateCoursePrice(ctx, 15000, &original)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), updated.Price)
	require.NotNil(t, updated.OriginalPrice)
	assert.Equal(t, original, *updated.OriginalPrice)
}

func TestServiceDB_Ledger(t *testing.T) {
	repo, ts := getDeps(t)
	ctx := context.Background()
	s, err := service.NewService(repo, ts, nil, nil, nil, service.Options{}, zap.NewNop())
	require.NoError(t, err)
	user := newUser(t, s)

	now := time.Now().UTC().Truncate(time.Millisecond)
	order := &domain.Order{
		OrderID:   domain.NewOrderID(user.ID, now),
		UserID:    user.ID,
		Amount:    17700,
		Currency:  "INR",
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
	}
	_, err = repo.CreateOrder(ctx, order)
	require.NoError(t, err)

	t.Run("one pending order per user", func(t *testing.T) {
		second := *order
		second.OrderID = domain.NewOrderID(user.ID, now.Add(time.Second))
		_, err := repo.CreateOrder(ctx, &second)
		assert.Equal(t, domain.ErrDuplicateOrder, err)
	})

	t.Run("session stored", func(t *testing.T) {
		require.NoError(t, repo.UpdateOrderSession(ctx, order.OrderID, "session_1"))
		pending, err := repo.ReadPendingOrderByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "session_1", pending.GatewaySessionID)
		assert.Empty(t, pending.Method)
		assert.Nil(t, pending.SettledAt)
	})

	t.Run("stale listing", func(t *testing.T) {
		list, err := repo.ListOrdersByStatus(ctx, domain.OrderStatusPending, now.Add(time.Second))
		require.NoError(t, err)
		found := false
		for _, o := range list {
			found = found || o.OrderID == order.OrderID
		}
		assert.True(t, found)
	})

	t.Run("non terminal target rejected", func(t *testing.T) {
		_, _, err := repo.TransitionOrder(ctx, order.OrderID, domain.Settlement{Status: domain.OrderStatusPending})
		assert.Equal(t, domain.ErrIllegalTransition, err)
	})

	t.Run("exactly one concurrent transition wins", func(t *testing.T) {
		const callers = 10
		var changed atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				status := domain.OrderStatusSuccess
				if i%2 == 1 {
					status = domain.OrderStatusFailed
				}
				_, ok, err := repo.TransitionOrder(ctx, order.OrderID, domain.Settlement{
					Status:               status,
					Method:               "upi",
					TransactionReference: fmt.Sprintf("ref_%d", i),
					SettledAt:            now,
				})
				assert.NoError(t, err)
				if ok {
					changed.Add(1)
				}
			}(i)
		}
		wg.Wait()
		assert.Equal(t, int32(1), changed.Load())

		settled, err := repo.ReadOrder(ctx, order.OrderID)
		require.NoError(t, err)
		assert.True(t, settled.Status.IsTerminal())
		if settled.Status == domain.OrderStatusSuccess {
			assert.Equal(t, "upi", settled.Method)
		} else {
			assert.Empty(t, settled.Method)
		}

		again, ok, err := repo.TransitionOrder(ctx, order.OrderID, domain.Settlement{
			Status: domain.OrderStatusCancelled, SettledAt: now,
		})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, settled.Status, again.Status)
	})

	t.Run("session not stored on a settled order", func(t *testing.T) {
		err := repo.UpdateOrderSession(ctx, order.OrderID, "late_session")
		assert.Equal(t, domain.ErrNoUpdatedData, err)
		assert.Equal(t, domain.ErrDataNotFound, repo.UpdateOrderSession(ctx, "ORDER_0_0", "late_session"))
	})

	t.Run("history newest first", func(t *testing.T) {
		next := *order
		next.OrderID = domain.NewOrderID(user.ID, now.Add(time.Minute))
		next.CreatedAt = now.Add(time.Minute)
		_, err := repo.CreateOrder(ctx, &next)
		require.NoError(t, err)

		list, err := repo.ListOrdersByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, next.OrderID, list[0].OrderID)
	})
}

func TestServiceDB_EnrollmentLatch(t *testing.T) {
	repo, ts := getDeps(t)
	s, err := service.NewService(repo, ts, nil, nil, nil, service.Options{}, zap.NewNop())
	require.NoError(t, err)
	user := newUser(t, s)

	const callers = 10
	var flipped atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.EnrollUser(context.Background(), user.ID, time.Now())
			if err == nil {
				flipped.Add(1)
				return
			}
			assert.Equal(t, domain.ErrNoUpdatedData, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), flipped.Load())

	stored, err := repo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsEnrolled)
	assert.NotNil(t, stored.EnrolledDate)
}

func TestServiceDB_PromotionUsage(t *testing.T) {
	repo, ts := getDeps(t)
	s, err := service.NewService(repo, ts, nil, nil, nil, service.Options{}, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	maxUses := 1
	code := fmt.Sprintf("ONCE%d", time.Now().UnixNano())
	_, err = s.CreatePromotion(ctx, &domain.Promotion{
		Code: code, DiscountPercent: 20, IsActive: true, MaxUses: &maxUses,
	})
	require.NoError(t, err)

	_, err = s.CreatePromotion(ctx, &domain.Promotion{Code: code, DiscountPercent: 10})
	assert.Equal(t, domain.ErrPromotionExists, err)

	const callers = 8
	var consumed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.IncrementPromotionUsage(ctx, code)
			if err == nil {
				consumed.Add(1)
				return
			}
			assert.Equal(t, domain.ErrPromotionExhausted, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), consumed.Load())

	require.NoError(t, repo.ReleasePromotionUsage(ctx, code))
	require.NoError(t, repo.IncrementPromotionUsage(ctx, code))
	require.NoError(t, repo.ReleasePromotionUsage(ctx, code))
	require.NoError(t, repo.ReleasePromotionUsage(ctx, code))
	released, err := repo.ReadPromotion(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, 0, released.UsedCount)
	require.NoError(t, repo.IncrementPromotionUsage(ctx, code))

	_, err = s.ValidatePromotion(ctx, code)
	assert.Equal(t, domain.ErrPromotionExhausted, err)

	assert.Equal(t, domain.ErrDataNotFound, repo.IncrementPromotionUsage(ctx, "NO_SUCH_CODE"))
	require.NoError(t, s.DeletePromotion(ctx, code))
	assert.Equal(t, domain.ErrDataNotFound, s.DeletePromotion(ctx, code))
}

func TestServiceDB_ConcurrentReconcile(t *testing.T) {
	repo, ts := getDeps(t)
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockPaymentGateway(ctrl)
	notifier := mock.NewMockNotifier(ctrl)

	s, err := service.NewService(repo, ts, gateway, notifier, nil, service.Options{}, zap.NewNop())
	require.NoError(t, err)
	user := newUser(t, s)

	gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(&domain.GatewaySession{SessionID: "session_e2e"}, nil)
	order, err := s.CreateOrder(context.Background(), user.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)

	gateway.EXPECT().FetchOrderStatus(gomock.Any(), order.OrderID).
		Return(domain.GatewayStatusPaid, nil).AnyTimes()
	gateway.EXPECT().FetchPayments(gomock.Any(), order.OrderID).
		Return([]domain.GatewayPayment{{Method: "upi", TransactionReference: "5114910", Status: "SUCCESS"}}, nil).
		AnyTimes()
	notifier.EXPECT().SendEnrollmentConfirmation(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Two processes share the database but not the singleflight group.
	other, err := service.NewService(repo, ts, gateway, notifier, nil, service.Options{}, zap.NewNop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc := s
			if i%2 == 1 {
				svc = other
			}
			status, err := svc.ReconcileOrder(context.Background(), order.OrderID)
			assert.NoError(t, err)
			assert.Equal(t, domain.OrderStatusSuccess, status)
		}(i)
	}
	wg.Wait()
	s.Wait()
	other.Wait()

	stored, err := repo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsEnrolled)
	require.NotNil(t, stored.EnrolledDate)

	settled, err := repo.ReadOrder(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "5114910", settled.TransactionReference)

	_, err = s.CreateOrder(context.Background(), user.ID, "")
	assert.Equal(t, domain.ErrAlreadyEnrolled, err)
}
