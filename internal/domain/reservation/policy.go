package reservation

import (
	"time"

	"hotel-backoffice/internal/pkg/money"

	"github.com/shopspring/decimal"
)

type RefundTier string

const (
	RefundFull RefundTier = "full"
	RefundHalf RefundTier = "half"
	RefundNone RefundTier = "none"
)

// Policy holds the time windows of the lifecycle rules. All windows are measured
// from now to the start of the check-in day in Location.
type Policy struct {
	Location           *time.Location
	ModificationCutoff time.Duration
	FullRefundAfter    time.Duration
	HalfRefundAfter    time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		Location:           time.UTC,
		ModificationCutoff: 24 * time.Hour,
		FullRefundAfter:    48 * time.Hour,
		HalfRefundAfter:    24 * time.Hour,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// Today is the hotel's current calendar day.
func (p Policy) Today(now time.Time) time.Time {
	return DateIn(now, p.location())
}

func (p Policy) UntilCheckIn(now, checkIn time.Time) time.Duration {
	return StartOfDay(checkIn, p.location()).Sub(now)
}

// CanModify requires strictly more than the cutoff before check-in.
func (p Policy) CanModify(now, checkIn time.Time) bool {
	return p.UntilCheckIn(now, checkIn) > p.ModificationCutoff
}

// Refund: more than FullRefundAfter gives everything back, at least
// HalfRefundAfter gives half, anything closer gives nothing.
func (p Policy) Refund(now, checkIn time.Time, total decimal.Decimal) (RefundTier, decimal.Decimal) {
	until := p.UntilCheckIn(now, checkIn)
	switch {
	case until > p.FullRefundAfter:
		return RefundFull, total
	case until >= p.HalfRefundAfter:
		return RefundHalf, money.Percent(total, decimal.NewFromInt(50))
	default:
		return RefundNone, decimal.Zero
	}
}
