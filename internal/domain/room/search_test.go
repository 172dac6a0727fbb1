//go:build unit

package room_test

import (
	"testing"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T, id, number string, typ room.Type, rate string, capacity int) *room.Room {
	t.Helper()
	r, err := room.NewRoom(uuid.MustParse(id), number, typ, decimal.RequireFromString(rate), capacity, 1, builder.DefaultNow)
	require.NoError(t, err)
	return r
}

func criteria(t *testing.T, mutate func(*room.SearchParams)) room.SearchCriteria {
	t.Helper()
	p := room.SearchParams{
		CheckIn:  reservation.Date(2026, 6, 11),
		CheckOut: reservation.Date(2026, 6, 14),
		Adults:   2,
	}
	if mutate != nil {
		mutate(&p)
	}
	c, err := room.NewSearchCriteria(p, 50)
	require.NoError(t, err)
	return c
}

func TestNewSearchCriteria(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := criteria(t, nil)
		assert.Equal(t, room.SortByPrice, c.SortBy)
		assert.Equal(t, room.SortAsc, c.SortOrder)
		assert.Equal(t, room.DefaultPageSize, c.Size)
		assert.Equal(t, 0, c.Offset())
	})

	t.Run("size is capped", func(t *testing.T) {
		c := criteria(t, func(p *room.SearchParams) { p.Size = 500; p.Page = 2 })
		assert.Equal(t, 50, c.Size)
		assert.Equal(t, 100, c.Offset())
	})

	lo, hi := decimal.RequireFromString("200"), decimal.RequireFromString("100")
	bad := room.Type("PENTHOUSE")
	cases := []struct {
		name   string
		mutate func(*room.SearchParams)
		errIs  error
	}{
		{"reversed dates", func(p *room.SearchParams) { p.CheckOut = reservation.Date(2026, 6, 10) }, reservation.ErrInvalidDateRange},
		{"no adults", func(p *room.SearchParams) { p.Adults = 0 }, reservation.ErrNoAdults},
		{"unknown type", func(p *room.SearchParams) { p.Type = &bad }, room.ErrInvalidRoomType},
		{"min above max", func(p *room.SearchParams) { p.MinPrice = &lo; p.MaxPrice = &hi }, room.ErrInvalidPriceRange},
		{"bad sort key", func(p *room.SearchParams) { p.SortBy = "floor" }, room.ErrInvalidSortKey},
		{"bad sort order", func(p *room.SearchParams) { p.SortOrder = "up" }, room.ErrInvalidSortOrder},
		{"negative page", func(p *room.SearchParams) { p.Page = -1 }, room.ErrInvalidPage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := room.SearchParams{CheckIn: reservation.Date(2026, 6, 11), CheckOut: reservation.Date(2026, 6, 14), Adults: 2}
			tc.mutate(&p)
			_, err := room.NewSearchCriteria(p, 50)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestPredicates(t *testing.T) {
	double := newRoom(t, "00000000-0000-0000-0000-000000000001", "101", room.TypeDouble, "100.00", 2)
	suite := newRoom(t, "00000000-0000-0000-0000-000000000002", "501", room.TypeSuite, "400.00", 4)
	closed := newRoom(t, "00000000-0000-0000-0000-000000000003", "102", room.TypeDouble, "100.00", 2)
	closed.SetAvailable(false, builder.DefaultNow)

	booked := func(in, out int) []reservation.Occupancy {
		period, err := reservation.NewStayPeriod(reservation.Date(2026, 6, in), reservation.Date(2026, 6, out))
		require.NoError(t, err)
		return []reservation.Occupancy{{ReservationID: uuid.New(), Period: period, Status: reservation.StatusConfirmed}}
	}

	t.Run("base predicates", func(t *testing.T) {
		preds := criteria(t, nil).Predicates()
		assert.True(t, room.MatchesAll(preds, double, nil))
		assert.True(t, room.MatchesAll(preds, suite, nil))
		assert.False(t, room.MatchesAll(preds, closed, nil), "administratively unavailable room")
	})

	t.Run("capacity counts children", func(t *testing.T) {
		preds := criteria(t, func(p *room.SearchParams) { p.Children = 1 }).Predicates()
		assert.False(t, room.MatchesAll(preds, double, nil))
		assert.True(t, room.MatchesAll(preds, suite, nil))
	})

	t.Run("min occupancy raises the capacity floor", func(t *testing.T) {
		four := 4
		preds := criteria(t, func(p *room.SearchParams) { p.MinOccupancy = &four }).Predicates()
		assert.False(t, room.MatchesAll(preds, double, nil))
		assert.True(t, room.MatchesAll(preds, suite, nil))
	})

	t.Run("type and price filters", func(t *testing.T) {
		typ := room.TypeSuite
		ceiling := decimal.RequireFromString("300")
		assert.False(t, room.MatchesAll(criteria(t, func(p *room.SearchParams) { p.Type = &typ }).Predicates(), double, nil))
		assert.False(t, room.MatchesAll(criteria(t, func(p *room.SearchParams) { p.MaxPrice = &ceiling }).Predicates(), suite, nil))
		assert.True(t, room.MatchesAll(criteria(t, func(p *room.SearchParams) { p.MinPrice = &ceiling }).Predicates(), suite, nil))
	})

	t.Run("overlapping booking hides the room", func(t *testing.T) {
		preds := criteria(t, nil).Predicates()
		assert.False(t, room.MatchesAll(preds, double, booked(13, 15)))
		assert.True(t, room.MatchesAll(preds, double, booked(14, 16)), "check-in on the other guest's check-out day")
		assert.True(t, room.MatchesAll(preds, double, booked(8, 11)))
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		occ := booked(11, 14)
		occ[0].Status = reservation.StatusCancelled
		assert.True(t, room.MatchesAll(criteria(t, nil).Predicates(), double, occ))
	})
}

func TestSortRooms(t *testing.T) {
	a := newRoom(t, "00000000-0000-0000-0000-00000000000a", "201", room.TypeSuite, "150.00", 2)
	b := newRoom(t, "00000000-0000-0000-0000-00000000000b", "101", room.TypeSingle, "150.00", 2)
	c := newRoom(t, "00000000-0000-0000-0000-00000000000c", "301", room.TypeDouble, "90.00", 2)

	ids := func(rooms []*room.Room) []string {
		out := make([]string, len(rooms))
		for i, r := range rooms {
			out[i] = r.Number()
		}
		return out
	}

	tests := []struct {
		key   room.SortKey
		order room.SortOrder
		want  []string
	}{
		{room.SortByPrice, room.SortAsc, []string{"301", "201", "101"}},
		{room.SortByPrice, room.SortDesc, []string{"201", "101", "301"}},
		{room.SortByType, room.SortAsc, []string{"101", "301", "201"}},
		{room.SortByNumber, room.SortDesc, []string{"301", "201", "101"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key)+"_"+string(tt.order), func(t *testing.T) {
			rooms := []*room.Room{b, c, a}
			room.SortRooms(rooms, tt.key, tt.order)
			assert.Equal(t, tt.want, ids(rooms))
		})
	}
}
