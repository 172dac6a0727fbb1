package converter

import (
	"time"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

var BillColumns = []string{
	"id", "reservation_id", "customer_id", "bill_date",
	"subtotal", "tax_rate", "tax_amount", "discount_amount", "total_amount",
	"paid_amount", "balance_amount", "payment_status", "payment_method", "transaction_id",
	"created_at", "updated_at",
}

var BillItemColumns = []string{
	"id", "bill_id", "position", "description", "category", "quantity", "unit_price", "total_price",
}

type BillRow struct {
	ID             pgtype.UUID
	ReservationID  pgtype.UUID
	CustomerID     pgtype.UUID
	BillDate       time.Time
	Subtotal       pgtype.Numeric
	TaxRate        pgtype.Numeric
	TaxAmount      pgtype.Numeric
	DiscountAmount pgtype.Numeric
	TotalAmount    pgtype.Numeric
	PaidAmount     pgtype.Numeric
	BalanceAmount  pgtype.Numeric
	PaymentStatus  string
	PaymentMethod  pgtype.Text
	TransactionID  pgtype.Text
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (r *BillRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.ReservationID, &r.CustomerID, &r.BillDate,
		&r.Subtotal, &r.TaxRate, &r.TaxAmount, &r.DiscountAmount, &r.TotalAmount,
		&r.PaidAmount, &r.BalanceAmount, &r.PaymentStatus, &r.PaymentMethod, &r.TransactionID,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

type BillItemRow struct {
	ID          pgtype.UUID
	BillID      pgtype.UUID
	Position    int32
	Description string
	Category    string
	Quantity    int32
	UnitPrice   pgtype.Numeric
	TotalPrice  pgtype.Numeric
}

func (r *BillItemRow) ScanTargets() []any {
	return []any{&r.ID, &r.BillID, &r.Position, &r.Description, &r.Category, &r.Quantity, &r.UnitPrice, &r.TotalPrice}
}

func BillValues(b *billing.Bill) []any {
	s := b.Snapshot()
	var method *string
	if s.PaymentMethod != nil {
		m := string(*s.PaymentMethod)
		method = &m
	}
	return []any{
		pgconv.UUIDToPgtype(s.ID), pgconv.UUIDToPgtype(s.ReservationID), pgconv.UUIDToPgtype(s.CustomerID), s.BillDate,
		pgconv.DecimalToNumeric(s.Subtotal), pgconv.DecimalToNumeric(s.TaxRate), pgconv.DecimalToNumeric(s.TaxAmount),
		pgconv.DecimalToNumeric(s.DiscountAmount), pgconv.DecimalToNumeric(s.TotalAmount),
		pgconv.DecimalToNumeric(s.PaidAmount), pgconv.DecimalToNumeric(s.BalanceAmount),
		string(s.Status), pgconv.StringPtrToPgtype(method), pgconv.StringPtrToPgtype(s.TransactionID),
		s.CreatedAt, s.UpdatedAt,
	}
}

func BillUpdates(b *billing.Bill) map[string]any {
	values := BillValues(b)
	out := make(map[string]any, len(BillColumns))
	for i, col := range BillColumns {
		switch col {
		case "id", "reservation_id", "customer_id", "bill_date", "created_at":
			continue
		}
		out[col] = values[i]
	}
	return out
}

func BillItemValues(billID pgtype.UUID, position int, it billing.Item) []any {
	return []any{
		pgconv.UUIDToPgtype(it.ID), billID, int32(position), it.Description, string(it.Category),
		int32(it.Quantity), pgconv.DecimalToNumeric(it.UnitPrice), pgconv.DecimalToNumeric(it.TotalPrice),
	}
}

func BillItemFromRow(r BillItemRow) (billing.Item, error) {
	unit, err := pgconv.NumericToDecimal(r.UnitPrice)
	if err != nil {
		return billing.Item{}, err
	}
	total, err := pgconv.NumericToDecimal(r.TotalPrice)
	if err != nil {
		return billing.Item{}, err
	}
	return billing.Item{
		ID:          pgconv.UUIDFromPgtype(r.ID),
		Description: r.Description,
		Category:    billing.Category(r.Category),
		Quantity:    int(r.Quantity),
		UnitPrice:   unit,
		TotalPrice:  total,
	}, nil
}

func BillFromRow(r BillRow, items []billing.Item) (*billing.Bill, error) {
	s := billing.Snapshot{
		ID:            pgconv.UUIDFromPgtype(r.ID),
		ReservationID: pgconv.UUIDFromPgtype(r.ReservationID),
		CustomerID:    pgconv.UUIDFromPgtype(r.CustomerID),
		BillDate:      r.BillDate,
		Items:         items,
		Status:        billing.Status(r.PaymentStatus),
		TransactionID: pgconv.StringPtrFromPgtype(r.TransactionID),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.PaymentMethod.Valid {
		m := reservation.PaymentMethod(r.PaymentMethod.String)
		s.PaymentMethod = &m
	}

	var err error
	if s.Subtotal, err = pgconv.NumericToDecimal(r.Subtotal); err != nil {
		return nil, err
	}
	if s.TaxRate, err = pgconv.NumericToDecimal(r.TaxRate); err != nil {
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
	if s.PaidAmount, err = pgconv.NumericToDecimal(r.PaidAmount); err != nil {
		return nil, err
	}
	if s.BalanceAmount, err = pgconv.NumericToDecimal(r.BalanceAmount); err != nil {
		return nil, err
	}
	return billing.ReconstructBill(s), nil
}
