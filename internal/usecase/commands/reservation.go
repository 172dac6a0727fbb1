package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/patch"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReservationInput struct {
	// CustomerID books for an existing directory entry; when nil the customer
	// is found or created from UserID.
	CustomerID      *uuid.UUID
	UserID          string
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	SpecialRequests string
}

// ModifyReservationInput changes a stay. Nil fields keep their current value.
type ModifyReservationInput struct {
	RoomID   *uuid.UUID
	CheckIn  *time.Time
	CheckOut *time.Time
	Adults   *int
	Children *int
}

type CancelResult struct {
	ReservationID uuid.UUID
	Status        reservation.Status
	RefundAmount  decimal.Decimal
	Tier          reservation.RefundTier
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*queries.ReservationView, error)
	Modify(ctx context.Context, id uuid.UUID, in ModifyReservationInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*CancelResult, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID, method reservation.PaymentMethod, transactionID string) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckOut(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	reads   queries.ReservationQueries
	metrics shared.MetricsRecorder
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	reads queries.ReservationQueries,
	metrics shared.MetricsRecorder,
) ReservationCommands {
	if metrics == nil {
		metrics = shared.NopRecorder{}
	}
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		reads:   reads,
		metrics: metrics,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (*queries.ReservationView, error) {
	period, err := reservation.NewStayPeriod(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := c.factory.ValidateDates(period); err != nil {
		return nil, err
	}
	guests, err := reservation.NewGuestCount(in.Adults, in.Children)
	if err != nil {
		return nil, err
	}
	requests, err := reservation.NewSpecialRequests(in.SpecialRequests)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.factory.Clock.Now()

		spec, err := c.bookableRoom(ctx, tx, in.RoomID, guests, period, nil)
		if err != nil {
			return err
		}

		customerID, err := resolveCustomer(ctx, tx, in.CustomerID, in.UserID, now)
		if err != nil {
			return err
		}

		res, err := c.factory.CreateReservation(customerID, spec, period, guests, requests)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return translate(err, nil, "failed to create reservation")
		}
		if _, _, err := ensureBill(ctx, tx, res, now); err != nil {
			return err
		}

		created = res
		return nil
	})
	if err != nil {
		c.observeConflict(err)
		return nil, err
	}

	c.metrics.ReservationCreated()
	slog.InfoContext(ctx, "reservation created",
		"reservation_id", created.ID(),
		"room_id", created.RoomID(),
		"period", created.Period().String(),
		"total", created.TotalAmount().StringFixed(2))

	return c.reads.GetByID(ctx, created.ID())
}

// bookableRoom loads the room, checks capacity and takes the room lock before
// looking for overlapping live reservations. When self moves to another room
// both rooms are locked in one call so the order is stable.
func (c *reservationCommandsImpl) bookableRoom(
	ctx context.Context,
	tx shared.Tx,
	roomID uuid.UUID,
	guests reservation.GuestCount,
	period reservation.StayPeriod,
	self *reservation.Reservation,
) (reservation.RoomSpec, error) {
	rm, err := tx.Rooms().FindByID(ctx, roomID)
	if err != nil {
		return reservation.RoomSpec{}, translate(err, room.ErrRoomNotFound, "failed to load room")
	}
	spec := rm.Spec()
	if guests.Total() > spec.MaxOccupancy {
		return reservation.RoomSpec{}, reservation.ErrCapacityExceeded
	}

	lockIDs := []uuid.UUID{spec.ID}
	var exclude *uuid.UUID
	if self != nil {
		id := self.ID()
		exclude = &id
		if self.RoomID() != spec.ID {
			lockIDs = append(lockIDs, self.RoomID())
		}
	}
	if err := tx.Locks().LockRooms(ctx, lockIDs...); err != nil {
		return reservation.RoomSpec{}, translate(err, nil, "failed to lock room")
	}

	occupied, err := tx.Reservations().LiveOccupancies(ctx, spec.ID, period)
	if err != nil {
		return reservation.RoomSpec{}, translate(err, nil, "failed to check availability")
	}
	if reservation.ConflictsWith(period, exclude, occupied) {
		return reservation.RoomSpec{}, reservation.ErrRoomAlreadyBooked
	}
	return spec, nil
}

func (c *reservationCommandsImpl) Modify(ctx context.Context, id uuid.UUID, in ModifyReservationInput) (*queries.ReservationView, error) {
	var (
		modified *reservation.Reservation
		outcome  reservation.ModifyOutcome
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.factory.Clock.Now()

		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound, "failed to load reservation")
		}
		if err := res.CheckModifiable(c.factory.Policy, now); err != nil {
			return err
		}

		period, err := reservation.NewStayPeriod(
			patch.Coalesce(in.CheckIn, res.Period().CheckIn()),
			patch.Coalesce(in.CheckOut, res.Period().CheckOut()),
		)
		if err != nil {
			return err
		}
		if err := c.factory.ValidateDates(period); err != nil {
			return err
		}
		guests, err := reservation.NewGuestCount(
			patch.Coalesce(in.Adults, res.Guests().Adults()),
			patch.Coalesce(in.Children, res.Guests().Children()),
		)
		if err != nil {
			return err
		}

		spec, err := c.bookableRoom(ctx, tx, patch.Coalesce(in.RoomID, res.RoomID()), guests, period, res)
		if err != nil {
			return err
		}

		outcome, err = res.Modify(spec, period, guests, c.factory.PriceCalculator, c.factory.Policy, now)
		if err != nil {
			return err
		}

		bill, _, err := ensureBill(ctx, tx, res, now)
		if err != nil {
			return err
		}
		change, err := bill.RepriceRoomCharge(res.Nights(), spec.NightlyRate, now)
		if err != nil {
			return err
		}
		if change.BecamePaid {
			res.SyncPaid(bill.PaymentMethod(), bill.TransactionID(), now)
		}
		if change.Overpaid.IsPositive() {
			slog.WarnContext(ctx, "downward modification requires manual refund",
				"reservation_id", res.ID(),
				"bill_id", bill.ID(),
				"overpaid", change.Overpaid.StringFixed(2))
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return translate(err, nil, "failed to update reservation")
		}
		if err := tx.Bills().Update(ctx, bill); err != nil {
			return translate(err, nil, "failed to update bill")
		}

		modified = res
		return nil
	})
	if err != nil {
		c.observeConflict(err)
		return nil, err
	}

	c.metrics.ReservationModified(string(outcome.Direction))
	slog.InfoContext(ctx, "reservation modified",
		"reservation_id", modified.ID(),
		"direction", outcome.Direction,
		"previous_total", outcome.PreviousTotal.StringFixed(2),
		"new_total", outcome.NewTotal.StringFixed(2),
		"status", modified.Status())

	return c.reads.GetByID(ctx, modified.ID())
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, reason string) (*CancelResult, error) {
	var result CancelResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound, "failed to load reservation")
		}

		cancellation, err := res.Cancel(reason, c.factory.Policy, c.factory.Clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return translate(err, nil, "failed to update reservation")
		}

		result = CancelResult{
			ReservationID: res.ID(),
			Status:        res.Status(),
			RefundAmount:  cancellation.RefundAmount,
			Tier:          cancellation.Tier,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.ReservationCancelled(string(result.Tier))
	slog.InfoContext(ctx, "refund tier applied",
		"reservation_id", result.ReservationID,
		"tier", result.Tier,
		"refund", result.RefundAmount.StringFixed(2))
	return &result, nil
}

func (c *reservationCommandsImpl) ConfirmPayment(
	ctx context.Context,
	id uuid.UUID,
	method reservation.PaymentMethod,
	transactionID string,
) (*queries.ReservationView, error) {
	var billSettled, confirmed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.factory.Clock.Now()
		billSettled = false

		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound, "failed to load reservation")
		}
		wasPending := res.Status() == reservation.StatusPendingPayment
		if err := res.ConfirmPayment(method, transactionID, now); err != nil {
			return err
		}
		confirmed = wasPending

		bill, _, err := ensureBill(ctx, tx, res, now)
		if err != nil {
			return err
		}
		if !bill.IsPaid() && bill.BalanceAmount().IsPositive() {
			if _, err := bill.ApplyPayment(bill.BalanceAmount(), method, &transactionID, now); err != nil {
				return err
			}
			if err := tx.Bills().Update(ctx, bill); err != nil {
				return translate(err, nil, "failed to update bill")
			}
			billSettled = true
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return translate(err, nil, "failed to update reservation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if billSettled {
		c.metrics.BillPayment("paid")
	}
	if confirmed {
		c.metrics.ReservationTransition(string(reservation.StatusConfirmed))
	}
	slog.InfoContext(ctx, "payment confirmed", "reservation_id", id, "method", method)

	return c.reads.GetByID(ctx, id)
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return c.transition(ctx, id, reservation.StatusCheckedIn, (*reservation.Reservation).CheckIn)
}

func (c *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return c.transition(ctx, id, reservation.StatusCheckedOut, (*reservation.Reservation).CheckOut)
}

func (c *reservationCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return c.transition(ctx, id, reservation.StatusNoShow, (*reservation.Reservation).MarkNoShow)
}

func (c *reservationCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	to reservation.Status,
	apply func(*reservation.Reservation, time.Time) error,
) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound, "failed to load reservation")
		}
		if err := apply(res, c.factory.Clock.Now()); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return translate(err, nil, "failed to update reservation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.ReservationTransition(string(to))
	slog.InfoContext(ctx, "reservation status changed", "reservation_id", id, "status", to)
	return c.reads.GetByID(ctx, id)
}

func (c *reservationCommandsImpl) observeConflict(err error) {
	if errs.Is(err, reservation.ErrRoomAlreadyBooked) {
		c.metrics.BookingConflict()
	}
}
