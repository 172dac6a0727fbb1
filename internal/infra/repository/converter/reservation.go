package converter

import (
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

var ReservationColumns = []string{
	"id", "customer_id", "room_id", "check_in_date", "check_out_date",
	"number_of_adults", "number_of_children", "number_of_nights",
	"nightly_rate", "tax_rate", "base_amount", "tax_amount", "discount_amount", "total_amount",
	"status", "payment_status", "payment_method", "transaction_id", "special_requests",
	"cancellation_reason", "cancellation_date", "refund_amount",
	"created_at", "updated_at",
}

// ReservationRow mirrors one reservations row in ReservationColumns order.
type ReservationRow struct {
	ID              pgtype.UUID
	CustomerID      pgtype.UUID
	RoomID          pgtype.UUID
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	Adults          int32
	Children        int32
	Nights          int32
	NightlyRate     pgtype.Numeric
	TaxRate         pgtype.Numeric
	BaseAmount      pgtype.Numeric
	TaxAmount       pgtype.Numeric
	DiscountAmount  pgtype.Numeric
	TotalAmount     pgtype.Numeric
	Status          string
	PaymentStatus   string
	PaymentMethod   pgtype.Text
	TransactionID   pgtype.Text
	SpecialRequests string
	CancelReason    pgtype.Text
	CancelledAt     pgtype.Timestamptz
	RefundAmount    pgtype.Numeric
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *ReservationRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.CustomerID, &r.RoomID, &r.CheckIn, &r.CheckOut,
		&r.Adults, &r.Children, &r.Nights,
		&r.NightlyRate, &r.TaxRate, &r.BaseAmount, &r.TaxAmount, &r.DiscountAmount, &r.TotalAmount,
		&r.Status, &r.PaymentStatus, &r.PaymentMethod, &r.TransactionID, &r.SpecialRequests,
		&r.CancelReason, &r.CancelledAt, &r.RefundAmount,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

// ReservationValues returns the insert values in ReservationColumns order.
func ReservationValues(res *reservation.Reservation) []any {
	s := res.Snapshot()

	var method *string
	if s.PaymentMethod != nil {
		m := string(*s.PaymentMethod)
		method = &m
	}

	return []any{
		pgconv.UUIDToPgtype(s.ID), pgconv.UUIDToPgtype(s.CustomerID), pgconv.UUIDToPgtype(s.RoomID),
		pgconv.DateToPgtype(s.CheckIn), pgconv.DateToPgtype(s.CheckOut),
		int32(s.Adults), int32(s.Children), int32(s.Nights),
		pgconv.DecimalToNumeric(s.NightlyRate), pgconv.DecimalToNumeric(s.TaxRate),
		pgconv.DecimalToNumeric(s.BaseAmount), pgconv.DecimalToNumeric(s.TaxAmount),
		pgconv.DecimalToNumeric(s.DiscountAmount), pgconv.DecimalToNumeric(s.TotalAmount),
		string(s.Status), string(s.PaymentStatus),
		pgconv.StringPtrToPgtype(method), pgconv.StringPtrToPgtype(s.TransactionID),
		s.SpecialRequests,
		pgconv.StringPtrToPgtype(s.CancelReason), pgconv.TimePtrToPgtype(s.CancelledAt),
		pgconv.DecimalPtrToNumeric(s.RefundAmount),
		s.CreatedAt, s.UpdatedAt,
	}
}

// ReservationUpdates is the column map for UPDATE; identity and creation columns are left out.
func ReservationUpdates(res *reservation.Reservation) map[string]any {
	cols := ReservationColumns
	values := ReservationValues(res)
	out := make(map[string]any, len(cols))
	for i, col := range cols {
		switch col {
		case "id", "customer_id", "created_at":
			continue
		}
		out[col] = values[i]
	}
	return out
}

func ReservationFromRow(r ReservationRow) (*reservation.Reservation, error) {
	s := reservation.Snapshot{
		ID:              pgconv.UUIDFromPgtype(r.ID),
		CustomerID:      pgconv.UUIDFromPgtype(r.CustomerID),
		RoomID:          pgconv.UUIDFromPgtype(r.RoomID),
		CheckIn:         pgconv.DateFromPgtype(r.CheckIn),
		CheckOut:        pgconv.DateFromPgtype(r.CheckOut),
		Adults:          int(r.Adults),
		Children:        int(r.Children),
		Nights:          int(r.Nights),
		Status:          reservation.Status(r.Status),
		PaymentStatus:   reservation.PaymentStatus(r.PaymentStatus),
		TransactionID:   pgconv.StringPtrFromPgtype(r.TransactionID),
		SpecialRequests: r.SpecialRequests,
		CancelReason:    pgconv.StringPtrFromPgtype(r.CancelReason),
		CancelledAt:     pgconv.TimePtrFromPgtype(r.CancelledAt),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	var err error
	if s.NightlyRate, err = pgconv.NumericToDecimal(r.NightlyRate); err != nil {
		return nil, err
	}
	if s.TaxRate, err = pgconv.NumericToDecimal(r.TaxRate); err != nil {
		return nil, err
	}
	if s.BaseAmount, err = pgconv.NumericToDecimal(r.BaseAmount); err != nil {
		return nil, err
	}
	if s.TaxAmount, err = pgconv.NumericToDecimal(r.TaxAmount); err != nil {
		return nil, err
	}
	if s.DiscountAmount, err = pgconv.NumericToDecimal(r.DiscountAmount); err != nil {
		return nil, err
	}
	if s.TotalAmount, err = pgconv.NumericToDecimal(r.TotalAmount); err != nil {
		return nil, err
	}
	if s.RefundAmount, err = pgconv.NumericPtrToDecimal(r.RefundAmount); err != nil {
		return nil, err
	}
	if r.PaymentMethod.Valid {
		m := reservation.PaymentMethod(r.PaymentMethod.String)
		s.PaymentMethod = &m
	}

	return reservation.ReconstructReservation(s), nil
}

// LiveStatuses is the status set of the reservations_no_overlap constraint.
func LiveStatuses() []string {
	live := reservation.LiveStatuses()
	out := make([]string, len(live))
	for i, s := range live {
		out[i] = string(s)
	}
	return out
}

type OccupancyRow struct {
	ID       pgtype.UUID
	RoomID   pgtype.UUID
	CheckIn  pgtype.Date
	CheckOut pgtype.Date
	Status   string
}

func (r *OccupancyRow) ScanTargets() []any {
	return []any{&r.ID, &r.RoomID, &r.CheckIn, &r.CheckOut, &r.Status}
}

func OccupancyFromRow(r OccupancyRow) (reservation.Occupancy, error) {
	period, err := reservation.NewStayPeriod(pgconv.DateFromPgtype(r.CheckIn), pgconv.DateFromPgtype(r.CheckOut))
	if err != nil {
		return reservation.Occupancy{}, err
	}
	return reservation.Occupancy{
		ReservationID: pgconv.UUIDFromPgtype(r.ID),
		RoomID:        pgconv.UUIDFromPgtype(r.RoomID),
		Period:        period,
		Status:        reservation.Status(r.Status),
	}, nil
}
