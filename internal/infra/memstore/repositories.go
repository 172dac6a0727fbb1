package memstore

import (
	"context"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/customer"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"

	"github.com/google/uuid"
)

type reservationRepo struct {
	state *state
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.state.reservations[res.ID()]; ok {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	if err := r.checkExclusion(res); err != nil {
		return err
	}
	r.state.reservations[res.ID()] = res.Snapshot()
	return nil
}

func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.state.reservations[res.ID()]; !ok {
		return infra.NotFound("reservation not found")
	}
	if err := r.checkExclusion(res); err != nil {
		return err
	}
	r.state.reservations[res.ID()] = res.Snapshot()
	return nil
}

// checkExclusion mirrors the database exclusion constraint on live stays.
func (r *reservationRepo) checkExclusion(res *reservation.Reservation) error {
	if !res.Status().IsLive() {
		return nil
	}
	id := res.ID()
	if reservation.ConflictsWith(res.Period(), &id, r.occupancies(res.RoomID())) {
		return infra.WrapRepoErr("reservation overlaps a live booking", nil, infra.KindExclusionViolated)
	}
	return nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	snap, ok := r.state.reservations[id]
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return reservation.ReconstructReservation(snap), nil
}

func (r *reservationRepo) LiveOccupancies(_ context.Context, roomID uuid.UUID, period reservation.StayPeriod) ([]reservation.Occupancy, error) {
	var out []reservation.Occupancy
	for _, o := range r.occupancies(roomID) {
		if o.Status.IsLive() && o.Period.Overlaps(period) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *reservationRepo) occupancies(roomID uuid.UUID) []reservation.Occupancy {
	return occupanciesOf(r.state, roomID)
}

func occupanciesOf(s *state, roomID uuid.UUID) []reservation.Occupancy {
	var out []reservation.Occupancy
	for _, snap := range s.reservations {
		if snap.RoomID != roomID {
			continue
		}
		period, err := reservation.NewStayPeriod(snap.CheckIn, snap.CheckOut)
		if err != nil {
			continue
		}
		out = append(out, reservation.Occupancy{
			ReservationID: snap.ID,
			RoomID:        snap.RoomID,
			Period:        period,
			Status:        snap.Status,
		})
	}
	return out
}

type billRepo struct {
	state *state
}

func (r *billRepo) Create(_ context.Context, b *billing.Bill) error {
	if _, ok := r.state.billByReservation[b.ReservationID()]; ok {
		return infra.WrapRepoErr("bill already exists for reservation", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.state.reservations[b.ReservationID()]; !ok {
		return infra.WrapRepoErr("bill references unknown reservation", nil, infra.KindForeignKeyViolated)
	}
	r.state.bills[b.ID()] = b.Snapshot()
	r.state.billByReservation[b.ReservationID()] = b.ID()
	return nil
}

func (r *billRepo) Update(_ context.Context, b *billing.Bill) error {
	if _, ok := r.state.bills[b.ID()]; !ok {
		return infra.NotFound("bill not found")
	}
	r.state.bills[b.ID()] = b.Snapshot()
	return nil
}

func (r *billRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.Bill, error) {
	snap, ok := r.state.bills[id]
	if !ok {
		return nil, infra.NotFound("bill not found")
	}
	return billing.ReconstructBill(snap), nil
}

func (r *billRepo) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*billing.Bill, error) {
	id, ok := r.state.billByReservation[reservationID]
	if !ok {
		return nil, infra.NotFound("bill not found")
	}
	return r.FindByID(ctx, id)
}

type roomRepo struct {
	state *state
}

func (r *roomRepo) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.state.rooms[id]
	if !ok {
		return nil, infra.NotFound("room not found")
	}
	return rm, nil
}

type customerRepo struct {
	state *state
}

func (r *customerRepo) Create(_ context.Context, c *customer.Customer) error {
	if c.UserID() != nil {
		for _, existing := range r.state.customers {
			if existing.UserID != nil && *existing.UserID == *c.UserID() {
				return infra.WrapRepoErr("customer already exists for user", nil, infra.KindDuplicateKey)
			}
		}
	}
	r.state.customers[c.ID()] = customerRecord{
		ID:        c.ID(),
		UserID:    c.UserID(),
		FullName:  c.FullName(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
	}
	return nil
}

func (r *customerRepo) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	rec, ok := r.state.customers[id]
	if !ok {
		return nil, infra.NotFound("customer not found")
	}
	return rec.toDomain(), nil
}

func (r *customerRepo) FindByUserID(_ context.Context, userID string) (*customer.Customer, error) {
	for _, rec := range r.state.customers {
		if rec.UserID != nil && *rec.UserID == userID {
			return rec.toDomain(), nil
		}
	}
	return nil, infra.NotFound("customer not found")
}

func (c customerRecord) toDomain() *customer.Customer {
	return customer.ReconstructCustomer(c.ID, c.UserID, c.FullName, c.Email, c.Phone, c.CreatedAt)
}
