package converter

import (
	"time"

	"hotel-backoffice/internal/domain/customer"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

var RoomColumns = []string{
	"id", "room_number", "room_type", "nightly_rate", "max_occupancy", "is_available", "floor", "created_at", "updated_at",
}

type RoomRow struct {
	ID           pgtype.UUID
	Number       string
	Type         string
	NightlyRate  pgtype.Numeric
	MaxOccupancy int32
	IsAvailable  bool
	Floor        int32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *RoomRow) ScanTargets() []any {
	return []any{&r.ID, &r.Number, &r.Type, &r.NightlyRate, &r.MaxOccupancy, &r.IsAvailable, &r.Floor, &r.CreatedAt, &r.UpdatedAt}
}

func RoomFromRow(r RoomRow) (*room.Room, error) {
	rate, err := pgconv.NumericToDecimal(r.NightlyRate)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoom(
		pgconv.UUIDFromPgtype(r.ID), r.Number, room.Type(r.Type), rate,
		int(r.MaxOccupancy), r.IsAvailable, int(r.Floor), r.CreatedAt, r.UpdatedAt,
	), nil
}

var CustomerColumns = []string{"id", "user_id", "full_name", "email", "phone", "created_at"}

type CustomerRow struct {
	ID        pgtype.UUID
	UserID    pgtype.Text
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

func (r *CustomerRow) ScanTargets() []any {
	return []any{&r.ID, &r.UserID, &r.FullName, &r.Email, &r.Phone, &r.CreatedAt}
}

func CustomerValues(c *customer.Customer) []any {
	return []any{
		pgconv.UUIDToPgtype(c.ID()), pgconv.StringPtrToPgtype(c.UserID()),
		c.FullName(), c.Email(), c.Phone(), c.CreatedAt(),
	}
}

func CustomerFromRow(r CustomerRow) *customer.Customer {
	return customer.ReconstructCustomer(
		pgconv.UUIDFromPgtype(r.ID), pgconv.StringPtrFromPgtype(r.UserID),
		r.FullName, r.Email, r.Phone, r.CreatedAt,
	)
}
