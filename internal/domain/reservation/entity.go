package reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomSpec is what the lifecycle reads from the room catalog.
type RoomSpec struct {
	ID           uuid.UUID
	NightlyRate  decimal.Decimal
	MaxOccupancy int
	Available    bool
}

type Cancellation struct {
	Reason       string
	CancelledAt  time.Time
	RefundAmount decimal.Decimal
	Tier         RefundTier
}

type Reservation struct {
	id              uuid.UUID
	customerID      uuid.UUID
	roomID          uuid.UUID
	period          StayPeriod
	guests          GuestCount
	quote           Quote
	status          Status
	paymentStatus   PaymentStatus
	paymentMethod   *PaymentMethod
	transactionID   *string
	specialRequests SpecialRequests
	cancellation    *Cancellation
	createdAt       time.Time
	updatedAt       time.Time
}

// Snapshot is the flat persisted form of a reservation.
type Snapshot struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	Nights          int
	NightlyRate     decimal.Decimal
	TaxRate         decimal.Decimal
	BaseAmount      decimal.Decimal
	TaxAmount       decimal.Decimal
	DiscountAmount  decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          Status
	PaymentStatus   PaymentStatus
	PaymentMethod   *PaymentMethod
	TransactionID   *string
	SpecialRequests string
	CancelReason    *string
	CancelledAt     *time.Time
	RefundAmount    *decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func newReservation(
	id, customerID uuid.UUID,
	room RoomSpec,
	period StayPeriod,
	guests GuestCount,
	requests SpecialRequests,
	quote Quote,
	now time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		customerID:      customerID,
		roomID:          room.ID,
		period:          period,
		guests:          guests,
		quote:           quote,
		status:          StatusPendingPayment,
		paymentStatus:   PaymentPending,
		specialRequests: requests,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructReservation(s Snapshot) *Reservation {
	r := &Reservation{
		id:         s.ID,
		customerID: s.CustomerID,
		roomID:     s.RoomID,
		period:     StayPeriod{checkIn: s.CheckIn, checkOut: s.CheckOut},
		guests:     GuestCount{adults: s.Adults, children: s.Children},
		quote: Quote{
			Nights:      s.Nights,
			NightlyRate: s.NightlyRate,
			TaxRate:     s.TaxRate,
			Base:        s.BaseAmount,
			Tax:         s.TaxAmount,
			Discount:    s.DiscountAmount,
			Total:       s.TotalAmount,
		},
		status:          s.Status,
		paymentStatus:   s.PaymentStatus,
		paymentMethod:   s.PaymentMethod,
		transactionID:   s.TransactionID,
		specialRequests: SpecialRequests{value: s.SpecialRequests},
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
	if s.CancelledAt != nil {
		c := &Cancellation{CancelledAt: *s.CancelledAt}
		if s.CancelReason != nil {
			c.Reason = *s.CancelReason
		}
		if s.RefundAmount != nil {
			c.RefundAmount = *s.RefundAmount
		}
		r.cancellation = c
	}
	return r
}

func (r *Reservation) Snapshot() Snapshot {
	s := Snapshot{
		ID:              r.id,
		CustomerID:      r.customerID,
		RoomID:          r.roomID,
		CheckIn:         r.period.CheckIn(),
		CheckOut:        r.period.CheckOut(),
		Adults:          r.guests.Adults(),
		Children:        r.guests.Children(),
		Nights:          r.quote.Nights,
		NightlyRate:     r.quote.NightlyRate,
		TaxRate:         r.quote.TaxRate,
		BaseAmount:      r.quote.Base,
		TaxAmount:       r.quote.Tax,
		DiscountAmount:  r.quote.Discount,
		TotalAmount:     r.quote.Total,
		Status:          r.status,
		PaymentStatus:   r.paymentStatus,
		PaymentMethod:   r.paymentMethod,
		TransactionID:   r.transactionID,
		SpecialRequests: r.specialRequests.String(),
		CreatedAt:       r.createdAt,
		UpdatedAt:       r.updatedAt,
	}
	if c := r.cancellation; c != nil {
		reason := c.Reason
		at := c.CancelledAt
		refund := c.RefundAmount
		s.CancelReason = &reason
		s.CancelledAt = &at
		s.RefundAmount = &refund
	}
	return s
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) CustomerID() uuid.UUID            { return r.customerID }
func (r *Reservation) RoomID() uuid.UUID                { return r.roomID }
func (r *Reservation) Period() StayPeriod               { return r.period }
func (r *Reservation) Guests() GuestCount               { return r.guests }
func (r *Reservation) Quote() Quote                     { return r.quote }
func (r *Reservation) Nights() int                      { return r.quote.Nights }
func (r *Reservation) TotalAmount() decimal.Decimal     { return r.quote.Total }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus     { return r.paymentStatus }
func (r *Reservation) PaymentMethod() *PaymentMethod    { return r.paymentMethod }
func (r *Reservation) TransactionID() *string           { return r.transactionID }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) Cancellation() *Cancellation      { return r.cancellation }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }

func (r *Reservation) Occupancy() Occupancy {
	return Occupancy{ReservationID: r.id, RoomID: r.roomID, Period: r.period, Status: r.status}
}

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionSame Direction = "same"
)

type ModifyOutcome struct {
	PreviousRoomID uuid.UUID
	PreviousTotal  decimal.Decimal
	NewTotal       decimal.Decimal
	Direction      Direction
}

// CheckModifiable reports whether the stay may still be changed at all.
func (r *Reservation) CheckModifiable(policy Policy, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrNotModifiable
	}
	if !policy.CanModify(now, r.period.CheckIn()) {
		return ErrModificationWindowClosed
	}
	return nil
}

// Modify moves the stay to a new room, dates and party size. Availability is the
// caller's job; everything that only needs the reservation itself is checked here.
func (r *Reservation) Modify(
	room RoomSpec,
	period StayPeriod,
	guests GuestCount,
	calc PriceCalculator,
	policy Policy,
	now time.Time,
) (ModifyOutcome, error) {
	if err := r.CheckModifiable(policy, now); err != nil {
		return ModifyOutcome{}, err
	}
	if period.CheckIn().Before(policy.Today(now)) {
		return ModifyOutcome{}, ErrCheckInInPast
	}
	if guests.Total() > room.MaxOccupancy {
		return ModifyOutcome{}, ErrCapacityExceeded
	}

	quote, err := calc.Quote(room.NightlyRate, period.Nights(), r.quote.Discount)
	if err != nil {
		return ModifyOutcome{}, err
	}

	out := ModifyOutcome{
		PreviousRoomID: r.roomID,
		PreviousTotal:  r.quote.Total,
		NewTotal:       quote.Total,
	}
	switch quote.Total.Cmp(r.quote.Total) {
	case 1:
		out.Direction = DirectionUp
		r.status = StatusPendingPayment
		r.paymentStatus = PaymentPending
	case -1:
		out.Direction = DirectionDown
	default:
		out.Direction = DirectionSame
	}

	r.roomID = room.ID
	r.period = period
	r.guests = guests
	r.quote = quote
	r.updatedAt = now
	return out, nil
}

// Cancel applies the refund tier and closes the reservation.
func (r *Reservation) Cancel(reason string, policy Policy, now time.Time) (Cancellation, error) {
	if !r.status.CanTransitionTo(StatusCancelled) {
		return Cancellation{}, ErrNotCancellable
	}

	tier, refund := policy.Refund(now, r.period.CheckIn(), r.quote.Total)
	c := Cancellation{
		Reason:       reason,
		CancelledAt:  now,
		RefundAmount: refund,
		Tier:         tier,
	}

	r.status = StatusCancelled
	if refund.IsPositive() {
		r.paymentStatus = PaymentRefunded
	}
	r.cancellation = &c
	r.updatedAt = now
	return c, nil
}

func (r *Reservation) ConfirmPayment(method PaymentMethod, transactionID string, now time.Time) error {
	if r.status == StatusCancelled {
		return ErrPaymentOnCancelled
	}
	if r.status.IsTerminal() {
		return ErrPaymentOnClosed
	}
	if !method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	if transactionID == "" {
		return ErrTransactionIDRequired
	}
	r.markPaid(method, &transactionID, now)
	return nil
}

// SyncPaid mirrors a fully paid bill onto the reservation. Closed reservations
// are left alone and false is returned.
func (r *Reservation) SyncPaid(method *PaymentMethod, transactionID *string, now time.Time) bool {
	if r.status.IsTerminal() {
		return false
	}
	if method == nil {
		method = r.paymentMethod
	}
	if transactionID == nil {
		transactionID = r.transactionID
	}
	r.paymentStatus = PaymentPaid
	if method != nil {
		m := *method
		r.paymentMethod = &m
	}
	r.transactionID = transactionID
	if r.status == StatusPendingPayment {
		r.status = StatusConfirmed
	}
	r.updatedAt = now
	return true
}

func (r *Reservation) markPaid(method PaymentMethod, transactionID *string, now time.Time) {
	r.paymentStatus = PaymentPaid
	r.paymentMethod = &method
	r.transactionID = transactionID
	if r.status == StatusPendingPayment {
		r.status = StatusConfirmed
	}
	r.updatedAt = now
}

func (r *Reservation) CheckIn(now time.Time) error {
	return r.transition(StatusCheckedIn, now)
}

func (r *Reservation) CheckOut(now time.Time) error {
	return r.transition(StatusCheckedOut, now)
}

func (r *Reservation) MarkNoShow(now time.Time) error {
	return r.transition(StatusNoShow, now)
}

func (r *Reservation) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}
