package reservation

import "github.com/google/uuid"

// Occupancy is the part of a reservation the availability index needs.
type Occupancy struct {
	ReservationID uuid.UUID
	RoomID        uuid.UUID
	Period        StayPeriod
	Status        Status
}

// ConflictsWith reports whether period collides with any live occupancy,
// ignoring the reservation identified by exclude.
func ConflictsWith(period StayPeriod, exclude *uuid.UUID, occupied []Occupancy) bool {
	for _, o := range occupied {
		if exclude != nil && o.ReservationID == *exclude {
			continue
		}
		if !o.Status.IsLive() {
			continue
		}
		if o.Period.Overlaps(period) {
			return true
		}
	}
	return false
}
