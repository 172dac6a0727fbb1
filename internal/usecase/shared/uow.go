package shared

import (
	"context"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/customer"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one isolated transaction for a whole lifecycle step; nothing is
	// visible to others unless fn returns nil
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Bills() BillRepository
	Rooms() RoomRepository
	Customers() CustomerRepository
	Locks() Locks
}

// Locks serializes writers on shared resources for the rest of the transaction.
type Locks interface {
	// LockRooms takes the per-room booking locks in a stable order.
	LockRooms(ctx context.Context, roomIDs ...uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	// FindByID loads the reservation and holds its row until the transaction ends.
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// LiveOccupancies returns the live reservations of the room that overlap period.
	LiveOccupancies(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) ([]reservation.Occupancy, error)
}

type BillRepository interface {
	Create(ctx context.Context, b *billing.Bill) error
	Update(ctx context.Context, b *billing.Bill) error
	// FindByID and FindByReservationID hold the bill row until the transaction ends.
	FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*billing.Bill, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	FindByUserID(ctx context.Context, userID string) (*customer.Customer, error)
}
