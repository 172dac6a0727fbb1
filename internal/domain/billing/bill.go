package billing

import (
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Bill is the ledger of one reservation. Every amount is derived by recalculate
// from the items, the tax rate, the discount and the paid amount.
type Bill struct {
	id            uuid.UUID
	reservationID uuid.UUID
	customerID    uuid.UUID
	billDate      time.Time
	items         []Item
	subtotal      decimal.Decimal
	taxRate       decimal.Decimal
	taxAmount     decimal.Decimal
	discount      decimal.Decimal
	total         decimal.Decimal
	paid          decimal.Decimal
	balance       decimal.Decimal
	status        Status
	paymentMethod *reservation.PaymentMethod
	transactionID *string
	createdAt     time.Time
	updatedAt     time.Time
}

type Snapshot struct {
	ID             uuid.UUID
	ReservationID  uuid.UUID
	CustomerID     uuid.UUID
	BillDate       time.Time
	Items          []Item
	Subtotal       decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaidAmount     decimal.Decimal
	BalanceAmount  decimal.Decimal
	Status         Status
	PaymentMethod  *reservation.PaymentMethod
	TransactionID  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Change tells the caller what a mutation did beyond the bill itself.
type Change struct {
	BecamePaid bool
	// Overpaid is the amount already paid above the new total, if any.
	Overpaid decimal.Decimal
}

// NewBillForReservation generates the ledger for a freshly priced reservation:
// a single room charge line and the reservation's amounts copied as they are.
func NewBillForReservation(r *reservation.Reservation, now time.Time) (*Bill, error) {
	q := r.Quote()
	item, err := NewRoomCharge(q.Nights, q.NightlyRate)
	if err != nil {
		return nil, err
	}

	return &Bill{
		id:            uuid.New(),
		reservationID: r.ID(),
		customerID:    r.CustomerID(),
		billDate:      now,
		items:         []Item{item},
		subtotal:      q.Base,
		taxRate:       q.TaxRate,
		taxAmount:     q.Tax,
		discount:      q.Discount,
		total:         q.Total,
		paid:          decimal.Zero,
		balance:       q.Total,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBill(s Snapshot) *Bill {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return &Bill{
		id:            s.ID,
		reservationID: s.ReservationID,
		customerID:    s.CustomerID,
		billDate:      s.BillDate,
		items:         items,
		subtotal:      s.Subtotal,
		taxRate:       s.TaxRate,
		taxAmount:     s.TaxAmount,
		discount:      s.DiscountAmount,
		total:         s.TotalAmount,
		paid:          s.PaidAmount,
		balance:       s.BalanceAmount,
		status:        s.Status,
		paymentMethod: s.PaymentMethod,
		transactionID: s.TransactionID,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (b *Bill) Snapshot() Snapshot {
	return Snapshot{
		ID:             b.id,
		ReservationID:  b.reservationID,
		CustomerID:     b.customerID,
		BillDate:       b.billDate,
		Items:          b.Items(),
		Subtotal:       b.subtotal,
		TaxRate:        b.taxRate,
		TaxAmount:      b.taxAmount,
		DiscountAmount: b.discount,
		TotalAmount:    b.total,
		PaidAmount:     b.paid,
		BalanceAmount:  b.balance,
		Status:         b.status,
		PaymentMethod:  b.paymentMethod,
		TransactionID:  b.transactionID,
		CreatedAt:      b.createdAt,
		UpdatedAt:      b.updatedAt,
	}
}

func (b *Bill) ID() uuid.UUID                             { return b.id }
func (b *Bill) ReservationID() uuid.UUID                  { return b.reservationID }
func (b *Bill) CustomerID() uuid.UUID                     { return b.customerID }
func (b *Bill) BillDate() time.Time                       { return b.billDate }
func (b *Bill) Subtotal() decimal.Decimal                 { return b.subtotal }
func (b *Bill) TaxRate() decimal.Decimal                  { return b.taxRate }
func (b *Bill) TaxAmount() decimal.Decimal                { return b.taxAmount }
func (b *Bill) DiscountAmount() decimal.Decimal           { return b.discount }
func (b *Bill) TotalAmount() decimal.Decimal              { return b.total }
func (b *Bill) PaidAmount() decimal.Decimal               { return b.paid }
func (b *Bill) BalanceAmount() decimal.Decimal            { return b.balance }
func (b *Bill) Status() Status                            { return b.status }
func (b *Bill) PaymentMethod() *reservation.PaymentMethod { return b.paymentMethod }
func (b *Bill) TransactionID() *string                    { return b.transactionID }
func (b *Bill) CreatedAt() time.Time                      { return b.createdAt }
func (b *Bill) UpdatedAt() time.Time                      { return b.updatedAt }

func (b *Bill) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Bill) IsPaid() bool {
	return b.status == StatusPaid
}

func (b *Bill) ApplyPayment(amount decimal.Decimal, method reservation.PaymentMethod, transactionID *string, now time.Time) (Change, error) {
	if b.IsPaid() {
		return Change{}, ErrBillAlreadyPaid
	}
	amount = money.Round(amount)
	if !amount.IsPositive() {
		return Change{}, ErrNonPositivePayment
	}
	if !method.IsValid() {
		return Change{}, reservation.ErrInvalidPaymentMethod
	}
	if b.paid.Add(amount).GreaterThan(b.total) {
		return Change{}, ErrPaymentExceedsBalance
	}

	b.paid = b.paid.Add(amount)
	b.paymentMethod = &method
	if transactionID != nil {
		b.transactionID = transactionID
	}
	return b.recalculate(now), nil
}

func (b *Bill) AddItem(item Item, now time.Time) error {
	if b.IsPaid() {
		return ErrBillAlreadyPaid
	}
	b.items = append(b.items, item)
	b.recalculate(now)
	return nil
}

func (b *Bill) RemoveItem(itemID uuid.UUID, now time.Time) (Change, error) {
	if b.IsPaid() {
		return Change{}, ErrBillAlreadyPaid
	}
	idx := b.indexOf(itemID)
	if idx < 0 {
		return Change{}, ErrBillItemNotFound
	}
	b.items = append(b.items[:idx], b.items[idx+1:]...)
	return b.recalculate(now), nil
}

// UpdateMetrics changes the tax rate and/or the discount. Nil leaves a value as is.
func (b *Bill) UpdateMetrics(taxRate, discount *decimal.Decimal, now time.Time) (Change, error) {
	if b.IsPaid() {
		return Change{}, ErrBillAlreadyPaid
	}
	if taxRate != nil && (taxRate.IsNegative() || taxRate.GreaterThan(hundred)) {
		return Change{}, ErrInvalidTaxRate
	}
	if discount != nil && discount.IsNegative() {
		return Change{}, ErrNegativeDiscount
	}
	if taxRate != nil {
		b.taxRate = *taxRate
	}
	if discount != nil {
		b.discount = money.Round(*discount)
	}
	return b.recalculate(now), nil
}

// RepriceRoomCharge replaces the ROOM lines with one line for the new stay.
// Unlike the manual item operations it also applies to a paid bill, because the
// stay itself changed. Tax rate and discount are kept.
func (b *Bill) RepriceRoomCharge(nights int, nightlyRate decimal.Decimal, now time.Time) (Change, error) {
	charge, err := NewRoomCharge(nights, nightlyRate)
	if err != nil {
		return Change{}, err
	}

	items := make([]Item, 0, len(b.items))
	inserted := false
	for _, it := range b.items {
		if it.Category != CategoryRoom {
			items = append(items, it)
			continue
		}
		if !inserted {
			items = append(items, charge)
			inserted = true
		}
	}
	if !inserted {
		items = append([]Item{charge}, items...)
	}
	b.items = items
	return b.recalculate(now), nil
}

// recalculate derives every amount from the items and settles the status.
func (b *Bill) recalculate(now time.Time) Change {
	subtotal := decimal.Zero
	for _, it := range b.items {
		subtotal = subtotal.Add(it.TotalPrice)
	}
	tax := money.Percent(subtotal, b.taxRate)
	gross := subtotal.Add(tax)

	discount := b.discount
	if discount.GreaterThan(gross) {
		discount = gross
	}

	b.subtotal = subtotal
	b.taxAmount = tax
	b.discount = discount
	b.total = gross.Sub(discount)

	remaining := b.total.Sub(b.paid)
	b.balance = money.ClampNonNegative(remaining)
	b.updatedAt = now

	change := Change{Overpaid: decimal.Zero}
	if remaining.IsNegative() {
		change.Overpaid = remaining.Neg()
	}

	previous := b.status
	switch {
	case b.paid.IsZero():
		b.status = StatusPending
	case b.balance.IsZero():
		b.status = StatusPaid
	default:
		b.status = StatusPartial
	}
	change.BecamePaid = previous != StatusPaid && b.status == StatusPaid
	return change
}

func (b *Bill) indexOf(itemID uuid.UUID) int {
	for i, it := range b.items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}
