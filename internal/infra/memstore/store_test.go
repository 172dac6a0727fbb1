//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/infra/memstore"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T, s *memstore.Store, number string, kind room.Type, rate string, maxOcc int) *room.Room {
	t.Helper()
	rm, err := room.NewRoom(uuid.New(), number, kind, decimal.RequireFromString(rate), maxOcc, 1, builder.DefaultNow)
	require.NoError(t, err)
	s.PutRoom(rm)
	return rm
}

func stay(rm reservation.RoomSpec, customerID uuid.UUID, checkInDay, checkOutDay int) *reservation.Reservation {
	return builder.NewReservationBuilder().
		WithRoom(rm).
		WithCustomerID(customerID).
		WithStay(reservation.Date(2026, time.June, checkInDay), reservation.Date(2026, time.June, checkOutDay)).
		MustBuildDomain()
}

func insert(ctx context.Context, uow shared.UnitOfWork, res *reservation.Reservation) error {
	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
}

func TestUoW_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	uow := memstore.NewUoW(store)
	rm := newRoom(t, store, "204", room.TypeDouble, "100.00", 2).Spec()
	res := stay(rm, uuid.New(), 11, 14)

	boom := errors.New("boom")
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Reservations().Create(ctx, res))
		_, err := tx.Reservations().FindByID(ctx, res.ID())
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Reservations().FindByID(ctx, res.ID())
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestUoW_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memstore.NewUoW(memstore.New()).Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestReservationRepo_Exclusion(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	uow := memstore.NewUoW(store)
	rm := newRoom(t, store, "204", room.TypeDouble, "100.00", 2).Spec()
	customerID := uuid.New()

	first := stay(rm, customerID, 11, 14)
	require.NoError(t, insert(ctx, uow, first))

	t.Run("overlapping live stay is refused", func(t *testing.T) {
		err := insert(ctx, uow, stay(rm, customerID, 13, 15))
		assert.True(t, infra.IsKind(err, infra.KindExclusionViolated))
	})

	t.Run("back to back stays fit", func(t *testing.T) {
		assert.NoError(t, insert(ctx, uow, stay(rm, customerID, 14, 16)))
		assert.NoError(t, insert(ctx, uow, stay(rm, customerID, 9, 11)))
	})

	t.Run("a cancelled stay frees its nights", func(t *testing.T) {
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			res, err := tx.Reservations().FindByID(ctx, first.ID())
			if err != nil {
				return err
			}
			if _, err := res.Cancel("", reservation.DefaultPolicy(), builder.DefaultNow); err != nil {
				return err
			}
			return tx.Reservations().Update(ctx, res)
		})
		require.NoError(t, err)

		assert.NoError(t, insert(ctx, uow, stay(rm, customerID, 12, 13)))
	})

	t.Run("live occupancies only list overlapping live stays", func(t *testing.T) {
		period, err := reservation.NewStayPeriod(reservation.Date(2026, time.June, 10), reservation.Date(2026, time.June, 15))
		require.NoError(t, err)

		var got []reservation.Occupancy
		err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			got, err = tx.Reservations().LiveOccupancies(ctx, rm.ID, period)
			return err
		})
		require.NoError(t, err)
		// 9-11, 12-13 and 14-16; the cancelled 11-14 is gone
		assert.Len(t, got, 3)
		for _, o := range got {
			assert.NotEqual(t, first.ID(), o.ReservationID)
		}
	})
}

func TestRoomReadStore_Search(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	require.NoError(t, memstore.SeedDemoRooms(store, builder.DefaultNow))
	closed := newRoom(t, store, "203", room.TypeDouble, "90.00", 2)
	closed.SetAvailable(false, builder.DefaultNow)
	store.PutRoom(closed)

	reads := memstore.NewRoomReadStore(store)
	double := room.TypeDouble
	criteria, err := room.NewSearchCriteria(room.SearchParams{
		CheckIn:  reservation.Date(2026, time.June, 11),
		CheckOut: reservation.Date(2026, time.June, 14),
		Adults:   2,
		Type:     &double,
	}, 50)
	require.NoError(t, err)

	views, total, err := reads.Search(ctx, criteria)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	assert.ElementsMatch(t, []string{"201", "202"}, []string{views[0].Number, views[1].Number})

	var booked reservation.RoomSpec
	for _, v := range views {
		if v.Number == "201" {
			booked = reservation.RoomSpec{ID: v.ID, NightlyRate: v.NightlyRate, MaxOccupancy: v.MaxOccupancy, Available: true}
		}
	}
	require.NoError(t, insert(ctx, memstore.NewUoW(store), stay(booked, uuid.New(), 12, 13)))

	views, total, err = reads.Search(ctx, criteria)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "202", views[0].Number)
}

func TestReservationReadStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	uow := memstore.NewUoW(store)
	rm := newRoom(t, store, "301", room.TypeDeluxe, "180.00", 3).Spec()

	userID := "user-42"
	mine, theirs := uuid.New(), uuid.New()
	store.PutCustomer(mine, &userID, "Asha Rao", "asha@example.com", builder.DefaultNow)
	store.PutCustomer(theirs, nil, "Walk In", "desk@example.com", builder.DefaultNow)

	early := stay(rm, mine, 5, 7)
	late := stay(rm, mine, 20, 22)
	other := stay(rm, theirs, 10, 12)
	for _, r := range []*reservation.Reservation{early, late, other} {
		require.NoError(t, insert(ctx, uow, r))
	}
	reads := memstore.NewReservationReadStore(store)

	t.Run("find by id joins room and customer", func(t *testing.T) {
		v, err := reads.FindByID(ctx, early.ID())
		require.NoError(t, err)
		assert.Equal(t, "301", v.RoomNumber)
		assert.Equal(t, "DELUXE", v.RoomType)
		assert.Equal(t, "Asha Rao", v.CustomerName)
		assert.Equal(t, "PENDING_PAYMENT", v.Status)
		assert.Equal(t, "403.20", v.TotalAmount.StringFixed(2))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := reads.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("by user, latest check-in first", func(t *testing.T) {
		views, err := reads.FindByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, late.ID(), views[0].ID)
		assert.Equal(t, early.ID(), views[1].ID)
	})

	t.Run("search pages in check-in order", func(t *testing.T) {
		f, err := queries.ReservationFilter{Size: 2}.Normalize(50)
		require.NoError(t, err)
		views, total, err := reads.Search(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, views, 2)
		assert.Equal(t, late.ID(), views[0].ID)
		assert.Equal(t, other.ID(), views[1].ID)

		f.Page = 1
		views, _, err = reads.Search(ctx, f)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, early.ID(), views[0].ID)
	})

	t.Run("search by customer text", func(t *testing.T) {
		q := "walk"
		f, err := queries.ReservationFilter{Query: &q}.Normalize(50)
		require.NoError(t, err)
		views, total, err := reads.Search(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, other.ID(), views[0].ID)
	})
}
