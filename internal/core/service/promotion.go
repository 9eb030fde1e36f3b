package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/enrollment/internal/core/domain"
	"go.uber.org/zap"
)

// ValidatePromotion reports why a code cannot be used, without consuming it.
func (s *Service) ValidatePromotion(ctx context.Context, code string) (*domain.Promotion, error) {
	code = domain.NormalizePromoCode(code)
	if code == "" {
		return nil, domain.ErrBadRequest
	}

	promo, err := s.repo.ReadPromotion(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPromotionNotFound
		}
		s.logger.Error("Read promotion", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := promo.Check(s.now()); err != nil {
		return nil, err
	}
	return promo, nil
}

// consumePromotion returns the discount to apply. Unusable codes are ignored.
func (s *Service) consumePromotion(ctx context.Context, code string) (int, string) {
	promo, err := s.repo.ReadPromotion(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Read promotion", zap.String("code", code), zap.Error(err))
		}
		s.logger.Debug("promo code ignored", zap.String("code", code), zap.Error(err))
		return 0, ""
	}

	if err := promo.Check(s.now()); err != nil {
		s.logger.Debug("promo code ignored", zap.String("code", code), zap.Error(err))
		return 0, ""
	}

	err = s.repo.IncrementPromotionUsage(ctx, promo.Code)
	if err != nil {
		if errors.Is(err, domain.ErrPromotionExhausted) {
			s.logger.Debug("promo code exhausted concurrently", zap.String("code", code))
		} else {
			s.logger.Error("Increment promotion usage", zap.String("code", code), zap.Error(err))
		}
		return 0, ""
	}

	s.logger.Info("promo code applied",
		zap.String("code", promo.Code), zap.Int("discount", promo.DiscountPercent))
	return promo.DiscountPercent, promo.Code
}

// releasePromotion returns a use taken by consumePromotion for an order that did not open.
func (s *Service) releasePromotion(ctx context.Context, code string) {
	if code == "" {
		return
	}
	err := s.repo.ReleasePromotionUsage(ctx, code)
	if err != nil {
		s.logger.Error("Release promotion usage", zap.String("code", code), zap.Error(err))
	}
}

func (s *Service) ListPromotions(ctx context.Context) ([]*domain.Promotion, error) {
	list, err := s.repo.ListPromotions(ctx)
	if err != nil {
		s.logger.Error("List promotions", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) CreatePromotion(ctx context.Context, promo *domain.Promotion) (*domain.Promotion, error) {
	promo.Code = domain.NormalizePromoCode(promo.Code)
	if promo.Code == "" {
		return nil, domain.ErrBadRequest
	}
	if err := domain.ValidateDiscountPercent(promo.DiscountPercent); err != nil {
		return nil, err
	}
	if promo.MaxUses != nil && *promo.MaxUses <= 0 {
		promo.MaxUses = nil
	}
	promo.UsedCount = 0
	promo.CreatedAt = s.now()

	created, err := s.repo.CreatePromotion(ctx, promo)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrPromotionExists
		}
		s.logger.Error("Create promotion", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return created, nil
}

func (s *Service) UpdatePromotion(ctx context.Context, code string,
	upd domain.PromotionUpdate) (*domain.Promotion, error) {
	promo, err := s.repo.ReadPromotion(ctx, domain.NormalizePromoCode(code))
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Read promotion", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := promo.Apply(upd); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdatePromotion(ctx, promo)
	if err != nil {
		s.logger.Error("Update promotion", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}

func (s *Service) DeletePromotion(ctx context.Context, code string) error {
	err := s.repo.DeletePromotion(ctx, domain.NormalizePromoCode(code))
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrDataNotFound
		}
		s.logger.Error("Delete promotion", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}
