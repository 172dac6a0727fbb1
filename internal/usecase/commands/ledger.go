package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/usecase/shared"
)

// ensureBill returns the reservation's bill, generating it on first request.
func ensureBill(ctx context.Context, tx shared.Tx, r *reservation.Reservation, now time.Time) (*billing.Bill, bool, error) {
	existing, err := tx.Bills().FindByReservationID(ctx, r.ID())
	if err == nil {
		return existing, false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, false, translate(err, nil, "failed to load bill")
	}

	b, err := billing.NewBillForReservation(r, now)
	if err != nil {
		return nil, false, err
	}
	if err := tx.Bills().Create(ctx, b); err != nil {
		return nil, false, translate(err, nil, "failed to create bill")
	}
	return b, true, nil
}

// settleReservation mirrors a bill that just became PAID onto its reservation.
func settleReservation(ctx context.Context, tx shared.Tx, b *billing.Bill, change billing.Change, now time.Time) error {
	if !change.BecamePaid {
		return nil
	}

	r, err := tx.Reservations().FindByID(ctx, b.ReservationID())
	if err != nil {
		return translate(err, reservation.ErrReservationNotFound, "failed to load reservation")
	}
	if !r.SyncPaid(b.PaymentMethod(), b.TransactionID(), now) {
		slog.WarnContext(ctx, "bill paid for a closed reservation",
			"bill_id", b.ID(), "reservation_id", r.ID(), "status", r.Status())
		return nil
	}
	if err := tx.Reservations().Update(ctx, r); err != nil {
		return translate(err, nil, "failed to update reservation")
	}
	return nil
}
