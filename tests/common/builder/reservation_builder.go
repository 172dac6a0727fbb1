//go:build unit || e2e

package builder

import (
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultNow is the fixed "current time" used by builders: 2026-06-01 09:00 UTC.
var DefaultNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	now        time.Time
	customerID uuid.UUID
	room       reservation.RoomSpec
	checkIn    time.Time
	checkOut   time.Time
	adults     int
	children   int
	requests   string
	taxRate    decimal.Decimal
	policy     reservation.Policy
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		now:        DefaultNow,
		customerID: uuid.New(),
		room: reservation.RoomSpec{
			ID:           uuid.New(),
			NightlyRate:  decimal.RequireFromString("100.00"),
			MaxOccupancy: 2,
			Available:    true,
		},
		checkIn:  reservation.Date(2026, 6, 11),
		checkOut: reservation.Date(2026, 6, 14),
		adults:   2,
		children: 0,
		requests: "Late arrival, around 22:00",
		taxRate:  decimal.RequireFromString("12.00"),
		policy:   reservation.DefaultPolicy(),
	}
}

func (b *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	b.now = now
	return b
}

func (b *ReservationBuilder) WithCustomerID(id uuid.UUID) *ReservationBuilder {
	b.customerID = id
	return b
}

func (b *ReservationBuilder) WithRoom(room reservation.RoomSpec) *ReservationBuilder {
	b.room = room
	return b
}

func (b *ReservationBuilder) WithRate(rate string) *ReservationBuilder {
	b.room.NightlyRate = decimal.RequireFromString(rate)
	return b
}

func (b *ReservationBuilder) WithCapacity(maxOccupancy int) *ReservationBuilder {
	b.room.MaxOccupancy = maxOccupancy
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

func (b *ReservationBuilder) WithGuests(adults, children int) *ReservationBuilder {
	b.adults = adults
	b.children = children
	return b
}

func (b *ReservationBuilder) WithRequests(s string) *ReservationBuilder {
	b.requests = s
	return b
}

func (b *ReservationBuilder) Room() reservation.RoomSpec {
	return b.room
}

func (b *ReservationBuilder) Now() time.Time {
	return b.now
}

func (b *ReservationBuilder) Clock() *clock.MockClock {
	return clock.NewMockClock(b.now)
}

func (b *ReservationBuilder) Policy() reservation.Policy {
	return b.policy
}

func (b *ReservationBuilder) Calculator() *reservation.DefaultPriceCalculator {
	return reservation.NewDefaultPriceCalculator(b.taxRate)
}

func (b *ReservationBuilder) Factory() *reservation.Factory {
	return reservation.NewFactory(b.Clock(), b.Calculator(), b.policy)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriod(b.checkIn, b.checkOut)
	if err != nil {
		return nil, err
	}
	guests, err := reservation.NewGuestCount(b.adults, b.children)
	if err != nil {
		return nil, err
	}
	requests, err := reservation.NewSpecialRequests(b.requests)
	if err != nil {
		return nil, err
	}
	return b.Factory().CreateReservation(b.customerID, b.room, period, guests, requests)
}

func (b *ReservationBuilder) MustBuildDomain() *reservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
