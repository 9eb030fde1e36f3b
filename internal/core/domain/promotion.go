package domain

import (
	"strings"
	"time"
)

type Promotion struct {
	Code            string
	DiscountPercent int
	Description     string
	IsActive        bool
	ValidFrom       *time.Time
	ValidUntil      *time.Time
	MaxUses         *int
	UsedCount       int
	CreatedAt       time.Time
	CreatedBy       uint64
}

// PromotionUpdate holds the fields an admin may change; nil means keep.
type PromotionUpdate struct {
	DiscountPercent *int
	Description     *string
	IsActive        *bool
	MaxUses         *int
	ValidUntil      *time.Time
	ClearMaxUses    bool
	ClearValidUntil bool
}

func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Check returns nil when the promotion is usable at now, otherwise the first failing reason.
func (p *Promotion) Check(now time.Time) error {
	if !p.IsActive {
		return ErrPromotionInactive
	}
	if p.ValidFrom != nil && p.ValidFrom.After(now) {
		return ErrPromotionNotStarted
	}
	if p.ValidUntil != nil && p.ValidUntil.Before(now) {
		return ErrPromotionExpired
	}
	if p.MaxUses != nil && p.UsedCount >= *p.MaxUses {
		return ErrPromotionExhausted
	}
	return nil
}

func (p *Promotion) Apply(u PromotionUpdate) error {
	if u.DiscountPercent != nil {
		if err := ValidateDiscountPercent(*u.DiscountPercent); err != nil {
			return err
		}
		p.DiscountPercent = *u.DiscountPercent
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
	if u.ClearMaxUses {
		p.MaxUses = nil
	} else if u.MaxUses != nil {
		p.MaxUses = u.MaxUses
	}
	if u.ClearValidUntil {
		p.ValidUntil = nil
	} else if u.ValidUntil != nil {
		p.ValidUntil = u.ValidUntil
	}
	return nil
}

func ValidateDiscountPercent(percent int) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidDiscount
	}
	return nil
}
