package room

import (
	"strings"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomNumber     = errs.InvalidRequest("room number cannot be empty")
	ErrRoomNumberTooLong   = errs.InvalidRequest("room number is too long (max 20 characters)")
	ErrInvalidRoomType     = errs.InvalidRequest("invalid room type")
	ErrNegativeNightlyRate = errs.InvalidRequest("nightly rate cannot be negative")
	ErrInvalidOccupancy    = errs.InvalidRequest("max occupancy must be positive")

	ErrRoomNotFound = errs.NotFound("room not found")
)

const MaxRoomNumberLength = 20

// Room is the catalog's view of a room. The booking engine only reads it.
type Room struct {
	id           uuid.UUID
	number       string
	roomType     Type
	nightlyRate  decimal.Decimal
	maxOccupancy int
	available    bool
	floor        int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoom(id uuid.UUID, number string, roomType Type, nightlyRate decimal.Decimal, maxOccupancy, floor int, now time.Time) (*Room, error) {
	if err := validateRoomNumber(number); err != nil {
		return nil, err
	}
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if nightlyRate.IsNegative() {
		return nil, ErrNegativeNightlyRate
	}
	if maxOccupancy < 1 {
		return nil, ErrInvalidOccupancy
	}

	return &Room{
		id:           id,
		number:       strings.TrimSpace(number),
		roomType:     roomType,
		nightlyRate:  nightlyRate.Round(2),
		maxOccupancy: maxOccupancy,
		available:    true,
		floor:        floor,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	roomType Type,
	nightlyRate decimal.Decimal,
	maxOccupancy int,
	available bool,
	floor int,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:           id,
		number:       number,
		roomType:     roomType,
		nightlyRate:  nightlyRate,
		maxOccupancy: maxOccupancy,
		available:    available,
		floor:        floor,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func validateRoomNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrEmptyRoomNumber
	}
	if len(number) > MaxRoomNumberLength {
		return ErrRoomNumberTooLong
	}
	return nil
}

// SetAvailable flips the administrative flag; it says nothing about bookings.
func (r *Room) SetAvailable(available bool, now time.Time) {
	r.available = available
	r.updatedAt = now
}

// Spec is the subset of the room the reservation lifecycle works with.
func (r *Room) Spec() reservation.RoomSpec {
	return reservation.RoomSpec{
		ID:           r.id,
		NightlyRate:  r.nightlyRate,
		MaxOccupancy: r.maxOccupancy,
		Available:    r.available,
	}
}

func (r *Room) ID() uuid.UUID                { return r.id }
func (r *Room) Number() string               { return r.number }
func (r *Room) Type() Type                   { return r.roomType }
func (r *Room) NightlyRate() decimal.Decimal { return r.nightlyRate }
func (r *Room) MaxOccupancy() int            { return r.maxOccupancy }
func (r *Room) IsAvailable() bool            { return r.available }
func (r *Room) Floor() int                   { return r.floor }
func (r *Room) CreatedAt() time.Time         { return r.createdAt }
func (r *Room) UpdatedAt() time.Time         { return r.updatedAt }
