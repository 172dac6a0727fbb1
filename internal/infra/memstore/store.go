// Package memstore keeps the booking engine's state in process memory. It backs
// STORAGE_DRIVER=memory and the lifecycle tests.
package memstore

import (
	"context"
	"sync"
	"time"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type customerRecord struct {
	ID        uuid.UUID
	UserID    *string
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

type state struct {
	rooms             map[uuid.UUID]*room.Room
	customers         map[uuid.UUID]customerRecord
	reservations      map[uuid.UUID]reservation.Snapshot
	bills             map[uuid.UUID]billing.Snapshot
	billByReservation map[uuid.UUID]uuid.UUID
}

func newState() *state {
	return &state{
		rooms:             make(map[uuid.UUID]*room.Room),
		customers:         make(map[uuid.UUID]customerRecord),
		reservations:      make(map[uuid.UUID]reservation.Snapshot),
		bills:             make(map[uuid.UUID]billing.Snapshot),
		billByReservation: make(map[uuid.UUID]uuid.UUID),
	}
}

// clone copies everything a transaction may write. Rooms are read-only to the
// engine and are shared.
func (s *state) clone() *state {
	c := newState()
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.bills {
		v.Items = append([]billing.Item(nil), v.Items...)
		c.bills[k] = v
	}
	for k, v := range s.billByReservation {
		c.billByReservation[k] = v
	}
	return c
}

// Store serializes whole transactions under one mutex. Writes go to a staged
// copy that replaces the committed state only when the transaction succeeds.
type Store struct {
	mu    sync.Mutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

// PutRoom adds or replaces a catalog room.
func (s *Store) PutRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.rooms[r.ID()] = room.ReconstructRoom(
		r.ID(), r.Number(), r.Type(), r.NightlyRate(), r.MaxOccupancy(),
		r.IsAvailable(), r.Floor(), r.CreatedAt(), r.UpdatedAt(),
	)
}

// PutCustomer adds a directory entry.
func (s *Store) PutCustomer(id uuid.UUID, userID *string, fullName, email string, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.customers[id] = customerRecord{ID: id, UserID: userID, FullName: fullName, Email: email, CreatedAt: createdAt}
}

func (s *Store) read(fn func(*state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

type UoW struct {
	store *Store
}

func NewUoW(store *Store) shared.UnitOfWork {
	return &UoW{store: store}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	staged := u.store.state.clone()
	if err := fn(ctx, &memTx{state: staged}); err != nil {
		return err
	}
	u.store.state = staged
	return nil
}

type memTx struct {
	state *state
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{state: t.state}
}

func (t *memTx) Bills() shared.BillRepository {
	return &billRepo{state: t.state}
}

func (t *memTx) Rooms() shared.RoomRepository {
	return &roomRepo{state: t.state}
}

func (t *memTx) Customers() shared.CustomerRepository {
	return &customerRepo{state: t.state}
}

// Locks is a no-op: the store mutex already covers the whole transaction.
func (t *memTx) Locks() shared.Locks {
	return noLocks{}
}

type noLocks struct{}

func (noLocks) LockRooms(context.Context, ...uuid.UUID) error { return nil }
