package memstore

import (
	"context"
	"sort"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomReadStore struct {
	store *Store
}

func NewRoomReadStore(store *Store) *RoomReadStore {
	return &RoomReadStore{store: store}
}

func (s *RoomReadStore) Search(_ context.Context, c room.SearchCriteria) ([]*queries.RoomView, int, error) {
	preds := c.Predicates()

	var matched []*room.Room
	s.store.read(func(st *state) {
		for _, rm := range st.rooms {
			if room.MatchesAll(preds, rm, occupanciesOf(st, rm.ID())) {
				matched = append(matched, rm)
			}
		}
	})
	room.SortRooms(matched, c.SortBy, c.SortOrder)

	total := len(matched)
	views := make([]*queries.RoomView, 0, c.Size)
	for _, rm := range paginate(matched, c.Offset(), c.Size) {
		views = append(views, queries.NewRoomView(rm))
	}
	return views, total, nil
}

type ReservationReadStore struct {
	store *Store
}

func NewReservationReadStore(store *Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (s *ReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view *queries.ReservationView
		ok   bool
	)
	s.store.read(func(st *state) {
		var snap reservation.Snapshot
		if snap, ok = st.reservations[id]; ok {
			view = reservationView(st, snap)
		}
	})
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return view, nil
}

func (s *ReservationReadStore) FindByUserID(_ context.Context, userID string) ([]*queries.ReservationView, error) {
	var views []*queries.ReservationView
	s.store.read(func(st *state) {
		for _, snap := range st.reservations {
			c, ok := st.customers[snap.CustomerID]
			if !ok || c.UserID == nil || *c.UserID != userID {
				continue
			}
			views = append(views, reservationView(st, snap))
		}
	})
	sortByCheckInDesc(views)
	return views, nil
}

func (s *ReservationReadStore) Search(_ context.Context, f queries.ReservationFilter) ([]*queries.ReservationView, int, error) {
	preds := f.Predicates()

	var views []*queries.ReservationView
	s.store.read(func(st *state) {
		for _, snap := range st.reservations {
			v := reservationView(st, snap)
			if matchesAll(preds, v) {
				views = append(views, v)
			}
		}
	})
	sortByCheckInDesc(views)
	return paginate(views, f.Offset(), f.Size), len(views), nil
}

func matchesAll(preds []queries.ReservationPredicate, v *queries.ReservationView) bool {
	for _, p := range preds {
		if !p.Matches(v) {
			return false
		}
	}
	return true
}

func sortByCheckInDesc(views []*queries.ReservationView) {
	sort.SliceStable(views, func(i, j int) bool {
		if !views[i].CheckInDate.Equal(views[j].CheckInDate) {
			return views[i].CheckInDate.After(views[j].CheckInDate)
		}
		return views[i].ID.String() < views[j].ID.String()
	})
}

func reservationView(st *state, snap reservation.Snapshot) *queries.ReservationView {
	v := &queries.ReservationView{}
	// Field names shared with the snapshot are copied; the rest are joins and renames.
	_ = copier.Copy(v, &snap)

	v.CheckInDate = snap.CheckIn
	v.CheckOutDate = snap.CheckOut
	v.Status = string(snap.Status)
	v.PaymentStatus = string(snap.PaymentStatus)
	if snap.PaymentMethod != nil {
		m := string(*snap.PaymentMethod)
		v.PaymentMethod = &m
	}
	v.CancellationReason = snap.CancelReason
	v.CancellationDate = snap.CancelledAt
	v.RefundAmount = snap.RefundAmount

	if c, ok := st.customers[snap.CustomerID]; ok {
		v.CustomerName = c.FullName
		v.CustomerEmail = c.Email
	}
	if rm, ok := st.rooms[snap.RoomID]; ok {
		v.RoomNumber = rm.Number()
		v.RoomType = string(rm.Type())
	}
	return v
}

type BillReadStore struct {
	store *Store
}

func NewBillReadStore(store *Store) *BillReadStore {
	return &BillReadStore{store: store}
}

func (s *BillReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BillView, error) {
	var (
		snap billing.Snapshot
		ok   bool
	)
	s.store.read(func(st *state) {
		snap, ok = st.bills[id]
	})
	if !ok {
		return nil, infra.NotFound("bill not found")
	}
	return queries.NewBillView(snap), nil
}

func (s *BillReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*queries.BillView, error) {
	var (
		id uuid.UUID
		ok bool
	)
	s.store.read(func(st *state) {
		id, ok = st.billByReservation[reservationID]
	})
	if !ok {
		return nil, infra.NotFound("bill not found")
	}
	return s.FindByID(ctx, id)
}

func paginate[T any](items []T, offset, size int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
