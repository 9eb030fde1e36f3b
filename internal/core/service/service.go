package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MikeRez0/enrollment/internal/core/domain"
	"github.com/MikeRez0/enrollment/internal/core/port"
	"github.com/MikeRez0/enrollment/internal/core/utils"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	notifyTimeout    = 30 * time.Second
	reconcileTimeout = 30 * time.Second
	defaultOpenGrace = 2 * time.Minute
)

type Options struct {
	// TaxRate nil means domain.DefaultTaxRate; zero is a valid rate.
	TaxRate     *decimal.Decimal
	Currency    string
	AdminEmails []string
	// OpenGrace is how long a PENDING order without a gateway session is assumed to be
	// still opening. The gateway not knowing such an order settles nothing.
	OpenGrace time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	gateway      port.PaymentGateway
	notifier     port.Notifier
	deliveries   port.DeliveryStore
	logger       *zap.Logger

	taxRate   decimal.Decimal
	currency  string
	admins    map[string]struct{}
	openGrace time.Duration
	now       func() time.Time

	inflight      singleflight.Group
	notifications sync.WaitGroup
}

// NewService wires the enrollment core. deliveries may be nil, webhook deliveries are
// then not deduplicated and rely on the ledger guard alone.
func NewService(repo port.Repository, tokenService port.TokenService,
	gateway port.PaymentGateway, notifier port.Notifier, deliveries port.DeliveryStore,
	opts Options, logger *zap.Logger) (*Service, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Currency == "" {
		opts.Currency = "INR"
	}
	taxRate := domain.DefaultTaxRate
	if opts.TaxRate != nil {
		taxRate = *opts.TaxRate
	}
	if opts.OpenGrace <= 0 {
		opts.OpenGrace = defaultOpenGrace
	}
	admins := make(map[string]struct{}, len(opts.AdminEmails))
	for _, e := range opts.AdminEmails {
		admins[normalizeEmail(e)] = struct{}{}
	}

	return &Service{
		repo:         repo,
		tokenService: tokenService,
		gateway:      gateway,
		notifier:     notifier,
		deliveries:   deliveries,
		logger:       logger,
		taxRate:      taxRate,
		currency:     opts.Currency,
		admins:       admins,
		openGrace:    opts.OpenGrace,
		now:          opts.Clock,
	}, nil
}

// Wait blocks until in-flight enrollment notifications are done.
func (s *Service) Wait() {
	s.notifications.Wait()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Email == "" || user.Password == "" {
		return nil, domain.ErrBadRequest
	}

	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}
	user.Password = hashed
	_, user.IsAdmin = s.admins[user.Email]
	user.CreatedAt = s.now()

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) GetCourse(ctx context.Context) (*domain.Course, error) {
	course, err := s.repo.ReadCourse(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		s.logger.Error("Read course", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return course, nil
}

func (s *Service) UpdateCoursePrice(ctx context.Context, price int64, originalPrice *int64) (*domain.Course, error) {
	if price <= 0 || (originalPrice != nil && *originalPrice < 0) {
		return nil, domain.ErrInvalidPrice
	}
	course, err := s.repo.UpdateCoursePrice(ctx, price, originalPrice)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		s.logger.Error("Update course price", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return course, nil
}
