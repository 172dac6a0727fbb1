package commands

import (
	"context"
	"log/slog"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentInput struct {
	Amount        decimal.Decimal
	Method        reservation.PaymentMethod
	TransactionID *string
}

type BillItemInput struct {
	Description string
	Category    billing.Category
	Quantity    int
	UnitPrice   decimal.Decimal
}

// BillMetricsInput changes the bill's tax rate and/or discount. Nil keeps the current value.
type BillMetricsInput struct {
	TaxRate  *decimal.Decimal
	Discount *decimal.Decimal
}

type BillingCommands interface {
	Generate(ctx context.Context, reservationID uuid.UUID) (*queries.BillView, error)
	ApplyPayment(ctx context.Context, billID uuid.UUID, in PaymentInput) (*queries.BillView, error)
	AddItem(ctx context.Context, billID uuid.UUID, in BillItemInput) (*queries.BillView, error)
	RemoveItem(ctx context.Context, billID, itemID uuid.UUID) (*queries.BillView, error)
	UpdateMetrics(ctx context.Context, billID uuid.UUID, in BillMetricsInput) (*queries.BillView, error)
}

type billingCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	reads   queries.BillQueries
	metrics shared.MetricsRecorder
}

func NewBillingCommands(
	uow shared.UnitOfWork,
	clock clock.Clock,
	reads queries.BillQueries,
	metrics shared.MetricsRecorder,
) BillingCommands {
	if metrics == nil {
		metrics = shared.NopRecorder{}
	}
	return &billingCommandsImpl{
		uow:     uow,
		clock:   clock,
		reads:   reads,
		metrics: metrics,
	}
}

// Generate is idempotent: an existing bill is returned unchanged.
func (c *billingCommandsImpl) Generate(ctx context.Context, reservationID uuid.UUID) (*queries.BillView, error) {
	var (
		billID  uuid.UUID
		created bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound, "failed to load reservation")
		}
		b, isNew, err := ensureBill(ctx, tx, res, c.clock.Now())
		if err != nil {
			return err
		}
		billID, created = b.ID(), isNew
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		slog.InfoContext(ctx, "bill generated", "bill_id", billID, "reservation_id", reservationID)
	}
	return c.reads.GetByID(ctx, billID)
}

func (c *billingCommandsImpl) ApplyPayment(ctx context.Context, billID uuid.UUID, in PaymentInput) (*queries.BillView, error) {
	var change billing.Change
	err := c.mutate(ctx, billID, func(b *billing.Bill) (billing.Change, error) {
		var err error
		change, err = b.ApplyPayment(in.Amount, in.Method, in.TransactionID, c.clock.Now())
		return change, err
	})
	if err != nil {
		return nil, err
	}

	result := "partial"
	if change.BecamePaid {
		result = "paid"
		slog.InfoContext(ctx, "bill paid", "bill_id", billID, "method", in.Method)
	}
	c.metrics.BillPayment(result)
	return c.reads.GetByID(ctx, billID)
}

func (c *billingCommandsImpl) AddItem(ctx context.Context, billID uuid.UUID, in BillItemInput) (*queries.BillView, error) {
	item, err := billing.NewItem(in.Description, in.Category, in.Quantity, in.UnitPrice)
	if err != nil {
		return nil, err
	}

	err = c.mutate(ctx, billID, func(b *billing.Bill) (billing.Change, error) {
		return billing.Change{}, b.AddItem(item, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	c.metrics.BillItemChanged("add")
	return c.reads.GetByID(ctx, billID)
}

func (c *billingCommandsImpl) RemoveItem(ctx context.Context, billID, itemID uuid.UUID) (*queries.BillView, error) {
	err := c.mutate(ctx, billID, func(b *billing.Bill) (billing.Change, error) {
		return b.RemoveItem(itemID, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	c.metrics.BillItemChanged("remove")
	return c.reads.GetByID(ctx, billID)
}

func (c *billingCommandsImpl) UpdateMetrics(ctx context.Context, billID uuid.UUID, in BillMetricsInput) (*queries.BillView, error) {
	err := c.mutate(ctx, billID, func(b *billing.Bill) (billing.Change, error) {
		return b.UpdateMetrics(in.TaxRate, in.Discount, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return c.reads.GetByID(ctx, billID)
}

// mutate runs fn on the locked bill, stores it and settles the reservation
// when the bill became PAID, all in one transaction.
func (c *billingCommandsImpl) mutate(ctx context.Context, billID uuid.UUID, fn func(*billing.Bill) (billing.Change, error)) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bills().FindByID(ctx, billID)
		if err != nil {
			return translate(err, billing.ErrBillNotFound, "failed to load bill")
		}

		change, err := fn(b)
		if err != nil {
			return err
		}
		if err := tx.Bills().Update(ctx, b); err != nil {
			return translate(err, nil, "failed to update bill")
		}
		return settleReservation(ctx, tx, b, change, c.clock.Now())
	})
}
