package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// DefaultTaxRate is the GST markup applied to the course price.
var DefaultTaxRate = decimal.MustParse("0.18")

var half = decimal.MustParse("0.5")

// Quote is the payable breakdown of one enrollment.
type Quote struct {
	BaseAmount      int64
	DiscountPercent int
	DiscountAmount  int64
	Total           int64
}

// NewQuote applies tax, then the discount, rounding half-up after each step.
func NewQuote(basePrice int64, taxRate decimal.Decimal, discountPercent int) (Quote, error) {
	if basePrice < 0 {
		return Quote{}, ErrInvalidPrice
	}
	if err := ValidateDiscountPercent(discountPercent); err != nil {
		return Quote{}, err
	}

	markup, err := decimal.One.Add(taxRate)
	if err != nil {
		return Quote{}, fmt.Errorf("tax markup: %w", err)
	}
	price, err := decimal.New(basePrice, 0)
	if err != nil {
		return Quote{}, fmt.Errorf("base price: %w", err)
	}
	taxed, err := price.Mul(markup)
	if err != nil {
		return Quote{}, fmt.Errorf("tax: %w", err)
	}
	base, err := roundHalfUp(taxed)
	if err != nil {
		return Quote{}, err
	}

	baseDec, err := decimal.New(base, 0)
	if err != nil {
		return Quote{}, fmt.Errorf("base amount: %w", err)
	}
	rate, err := decimal.New(int64(discountPercent), 2)
	if err != nil {
		return Quote{}, fmt.Errorf("discount rate: %w", err)
	}
	raw, err := baseDec.Mul(rate)
	if err != nil {
		return Quote{}, fmt.Errorf("discount: %w", err)
	}
	discount, err := roundHalfUp(raw)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		BaseAmount:      base,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		Total:           base - discount,
	}, nil
}

// roundHalfUp works on non-negative amounts only.
func roundHalfUp(d decimal.Decimal) (int64, error) {
	shifted, err := d.Add(half)
	if err != nil {
		return 0, fmt.Errorf("rounding: %w", err)
	}
	whole, _, ok := shifted.Floor(0).Int64(0)
	if !ok {
		return 0, fmt.Errorf("rounding: %s overflows int64", d)
	}
	return whole, nil
}
