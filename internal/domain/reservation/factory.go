package reservation

import (
	"hotel-backoffice/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Policy          Policy
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator, policy Policy) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		Policy:          policy,
	}
}

// ValidateDates runs the checks that need neither the room nor the ledger,
// in the order the booking flow reports them.
func (f *Factory) ValidateDates(period StayPeriod) error {
	if period.CheckIn().Before(f.Policy.Today(f.Clock.Now())) {
		return ErrCheckInInPast
	}
	return nil
}

// CreateReservation prices a new stay in PENDING_PAYMENT. Overlap with other
// bookings is checked by the caller inside its transaction.
func (f *Factory) CreateReservation(
	customerID uuid.UUID,
	room RoomSpec,
	period StayPeriod,
	guests GuestCount,
	requests SpecialRequests,
) (*Reservation, error) {
	if err := f.ValidateDates(period); err != nil {
		return nil, err
	}
	if guests.Total() > room.MaxOccupancy {
		return nil, ErrCapacityExceeded
	}

	quote, err := f.PriceCalculator.Quote(room.NightlyRate, period.Nights(), decimal.Zero)
	if err != nil {
		return nil, err
	}

	return newReservation(uuid.New(), customerID, room, period, guests, requests, quote, f.Clock.Now()), nil
}
