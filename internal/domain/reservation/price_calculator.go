package reservation

import (
	"hotel-backoffice/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// Quote is the priced breakdown of a stay. Total always equals Base + Tax - Discount.
type Quote struct {
	Nights      int
	NightlyRate decimal.Decimal
	TaxRate     decimal.Decimal
	Base        decimal.Decimal
	Tax         decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

type PriceCalculator interface {
	Quote(nightlyRate decimal.Decimal, nights int, discount decimal.Decimal) (Quote, error)
	TaxRate() decimal.Decimal
}

// DefaultPriceCalculator applies a flat percentage tax on the room base amount.
type DefaultPriceCalculator struct {
	taxRatePercent decimal.Decimal
}

func NewDefaultPriceCalculator(taxRatePercent decimal.Decimal) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{taxRatePercent: taxRatePercent}
}

func (pc *DefaultPriceCalculator) TaxRate() decimal.Decimal {
	return pc.taxRatePercent
}

func (pc *DefaultPriceCalculator) Quote(nightlyRate decimal.Decimal, nights int, discount decimal.Decimal) (Quote, error) {
	if nightlyRate.IsNegative() {
		return Quote{}, ErrNegativeRate
	}
	if nights < 1 {
		return Quote{}, ErrInvalidDateRange
	}
	if discount.IsNegative() {
		return Quote{}, ErrNegativeDiscount
	}

	base := money.Round(nightlyRate.Mul(decimal.NewFromInt(int64(nights))))
	tax := money.Percent(base, pc.taxRatePercent)
	gross := base.Add(tax)
	discount = money.Round(discount)
	if discount.GreaterThan(gross) {
		discount = gross
	}

	return Quote{
		Nights:      nights,
		NightlyRate: nightlyRate,
		TaxRate:     pc.taxRatePercent,
		Base:        base,
		Tax:         tax,
		Discount:    discount,
		Total:       gross.Sub(discount),
	}, nil
}
