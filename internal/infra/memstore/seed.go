package memstore

import (
	"time"

	"hotel-backoffice/internal/domain/room"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedRoom struct {
	number string
	kind   room.Type
	rate   string
	maxOcc int
	floor  int
}

var demoCatalog = []seedRoom{
	{"101", room.TypeSingle, "80.00", 1, 1},
	{"102", room.TypeSingle, "80.00", 1, 1},
	{"201", room.TypeDouble, "120.00", 2, 2},
	{"202", room.TypeDouble, "120.00", 3, 2},
	{"301", room.TypeDeluxe, "180.00", 3, 3},
	{"401", room.TypeSuite, "320.00", 4, 4},
}

// SeedDemoRooms fills an empty store with a small catalog so the memory
// driver can take bookings right away.
func SeedDemoRooms(s *Store, now time.Time) error {
	for _, r := range demoCatalog {
		rm, err := room.NewRoom(uuid.New(), r.number, r.kind, decimal.RequireFromString(r.rate), r.maxOcc, r.floor, now)
		if err != nil {
			return err
		}
		s.PutRoom(rm)
	}
	return nil
}
