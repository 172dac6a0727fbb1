//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidRequest), "expected invalid request kind, got %v", err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("basic success case prices three nights at 12% tax", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 3, actual.Nights())
		assert.Equal(t, "300.00", actual.Quote().Base.StringFixed(2))
		assert.Equal(t, "36.00", actual.Quote().Tax.StringFixed(2))
		assert.Equal(t, "0.00", actual.Quote().Discount.StringFixed(2))
		assert.Equal(t, "336.00", actual.TotalAmount().StringFixed(2))
		assert.Equal(t, reservation.StatusPendingPayment, actual.Status())
		assert.Equal(t, reservation.PaymentPending, actual.PaymentStatus())
		assert.Nil(t, actual.Cancellation())
		assert.Equal(t, builder.DefaultNow, actual.CreatedAt())
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "check-out equal to check-in",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithStay(reservation.Date(2026, 6, 11), reservation.Date(2026, 6, 11))
				},
				errIs: reservation.ErrInvalidDateRange,
			},
			{
				name: "check-out before check-in",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithStay(reservation.Date(2026, 6, 11), reservation.Date(2026, 6, 10))
				},
				errIs: reservation.ErrInvalidDateRange,
			},
			{
				name: "check-in yesterday",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithStay(reservation.Date(2026, 5, 31), reservation.Date(2026, 6, 2))
				},
				errIs: reservation.ErrCheckInInPast,
			},
			{
				name: "check-in today is allowed",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithStay(reservation.Date(2026, 6, 1), reservation.Date(2026, 6, 2))
				},
			},
		})
	})

	t.Run("guest validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no adults",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuests(0, 1) },
				errIs:  reservation.ErrNoAdults,
			},
			{
				name:   "guests at capacity",
				mutate: func(b *builder.ReservationBuilder) { b.WithCapacity(3).WithGuests(2, 1) },
			},
			{
				name:   "guests above capacity",
				mutate: func(b *builder.ReservationBuilder) { b.WithCapacity(2).WithGuests(2, 1) },
				errIs:  reservation.ErrCapacityExceeded,
			},
		})
	})

	t.Run("snapshot round trip keeps the aggregate", func(t *testing.T) {
		original := builder.NewReservationBuilder().MustBuildDomain()
		restored := reservation.ReconstructReservation(original.Snapshot())
		assert.Equal(t, original.Snapshot(), restored.Snapshot())
	})
}

func TestModify(t *testing.T) {
	t.Run("longer stay costs more and returns to pending payment", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.MustBuildDomain()
		require.NoError(t, r.ConfirmPayment(reservation.MethodCreditCard, "txn-1", b.Now()))
		require.Equal(t, reservation.StatusConfirmed, r.Status())

		period, err := reservation.NewStayPeriod(reservation.Date(2026, 6, 11), reservation.Date(2026, 6, 16))
		require.NoError(t, err)
		guests, _ := reservation.NewGuestCount(2, 0)

		out, err := r.Modify(b.Room(), period, guests, b.Calculator(), b.Policy(), b.Now())
		require.NoError(t, err)

		assert.Equal(t, reservation.DirectionUp, out.Direction)
		assert.Equal(t, "336.00", out.PreviousTotal.StringFixed(2))
		assert.Equal(t, "560.00", r.TotalAmount().StringFixed(2))
		assert.Equal(t, 5, r.Nights())
		assert.Equal(t, reservation.StatusPendingPayment, r.Status())
		assert.Equal(t, reservation.PaymentPending, r.PaymentStatus())
	})

	t.Run("shorter stay costs less and keeps payment status", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithStay(reservation.Date(2026, 6, 11), reservation.Date(2026, 6, 16))
		r := b.MustBuildDomain()
		require.NoError(t, r.ConfirmPayment(reservation.MethodUPI, "txn-2", b.Now()))

		period, _ := reservation.NewStayPeriod(reservation.Date(2026, 6, 11), reservation.Date(2026, 6, 14))
		guests, _ := reservation.NewGuestCount(2, 0)

		out, err := r.Modify(b.Room(), period, guests, b.Calculator(), b.Policy(), b.Now())
		require.NoError(t, err)

		assert.Equal(t, reservation.DirectionDown, out.Direction)
		assert.True(t, out.NewTotal.LessThan(out.PreviousTotal))
		assert.Equal(t, reservation.PaymentPaid, r.PaymentStatus())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("rejections", func(t *testing.T) {
		period, _ := reservation.NewStayPeriod(reservation.Date(2026, 6, 11), reservation.Date(2026, 6, 13))
		guests, _ := reservation.NewGuestCount(2, 0)

		cases := []struct {
			name    string
			prepare func(*reservation.Reservation)
			now     time.Time
			room    func(reservation.RoomSpec) reservation.RoomSpec
			errIs   error
		}{
			{
				name:  "exactly 24 hours before check-in",
				now:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
				errIs: reservation.ErrModificationWindowClosed,
			},
			{
				name:  "23 hours before check-in",
				now:   time.Date(2026, 6, 10, 1, 0, 0, 0, time.UTC),
				errIs: reservation.ErrModificationWindowClosed,
			},
			{
				name: "cancelled reservation",
				prepare: func(r *reservation.Reservation) {
					_, _ = r.Cancel("plans changed", reservation.DefaultPolicy(), builder.DefaultNow)
				},
				now:   builder.DefaultNow,
				errIs: reservation.ErrNotModifiable,
			},
			{
				name: "new room too small",
				now:  builder.DefaultNow,
				room: func(rs reservation.RoomSpec) reservation.RoomSpec {
					rs.MaxOccupancy = 1
					return rs
				},
				errIs: reservation.ErrCapacityExceeded,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewReservationBuilder()
				r := b.MustBuildDomain()
				if tc.prepare != nil {
					tc.prepare(r)
				}
				room := b.Room()
				if tc.room != nil {
					room = tc.room(room)
				}
				before := r.Snapshot()

				_, err := r.Modify(room, period, guests, b.Calculator(), b.Policy(), tc.now)
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, before, r.Snapshot(), "rejected modification must not mutate the reservation")
			})
		}
	})
}

func TestCancel(t *testing.T) {
	checkInStart := time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		hoursBefore   float64
		wantTier      reservation.RefundTier
		wantRefund    string
		wantPayStatus reservation.PaymentStatus
	}{
		{name: "72 hours away refunds everything", hoursBefore: 72, wantTier: reservation.RefundFull, wantRefund: "336.00", wantPayStatus: reservation.PaymentRefunded},
		{name: "exactly 48 hours away refunds half", hoursBefore: 48, wantTier: reservation.RefundHalf, wantRefund: "168.00", wantPayStatus: reservation.PaymentRefunded},
		{name: "30 hours away refunds half", hoursBefore: 30, wantTier: reservation.RefundHalf, wantRefund: "168.00", wantPayStatus: reservation.PaymentRefunded},
		{name: "exactly 24 hours away refunds half", hoursBefore: 24, wantTier: reservation.RefundHalf, wantRefund: "168.00", wantPayStatus: reservation.PaymentRefunded},
		{name: "10 hours away refunds nothing", hoursBefore: 10, wantTier: reservation.RefundNone, wantRefund: "0.00", wantPayStatus: reservation.PaymentPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().MustBuildDomain()
			now := checkInStart.Add(-time.Duration(tc.hoursBefore * float64(time.Hour)))

			c, err := r.Cancel("change of plans", reservation.DefaultPolicy(), now)
			require.NoError(t, err)

			assert.Equal(t, tc.wantTier, c.Tier)
			assert.Equal(t, tc.wantRefund, c.RefundAmount.StringFixed(2))
			assert.Equal(t, reservation.StatusCancelled, r.Status())
			assert.Equal(t, tc.wantPayStatus, r.PaymentStatus())
			require.NotNil(t, r.Cancellation())
			assert.Equal(t, "change of plans", r.Cancellation().Reason)
			assert.Equal(t, now, r.Cancellation().CancelledAt)
		})
	}

	t.Run("terminal or checked-in reservations cannot be cancelled", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.MustBuildDomain()
		require.NoError(t, r.ConfirmPayment(reservation.MethodCash, "till-7", b.Now()))
		require.NoError(t, r.CheckIn(b.Now()))

		_, err := r.Cancel("too late", reservation.DefaultPolicy(), b.Now())
		require.ErrorIs(t, err, reservation.ErrNotCancellable)

		require.NoError(t, r.CheckOut(b.Now()))
		_, err = r.Cancel("too late", reservation.DefaultPolicy(), b.Now())
		require.ErrorIs(t, err, reservation.ErrNotCancellable)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()
		_, err := r.Cancel("first", reservation.DefaultPolicy(), builder.DefaultNow)
		require.NoError(t, err)
		_, err = r.Cancel("second", reservation.DefaultPolicy(), builder.DefaultNow)
		require.ErrorIs(t, err, reservation.ErrNotCancellable)
	})
}

func TestConfirmPayment(t *testing.T) {
	t.Run("pending payment becomes confirmed and paid", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()
		require.NoError(t, r.ConfirmPayment(reservation.MethodWallet, "w-123", builder.DefaultNow))

		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, reservation.PaymentPaid, r.PaymentStatus())
		require.NotNil(t, r.PaymentMethod())
		assert.Equal(t, reservation.MethodWallet, *r.PaymentMethod())
		require.NotNil(t, r.TransactionID())
		assert.Equal(t, "w-123", *r.TransactionID())
	})

	t.Run("cancelled reservation rejects payment", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()
		_, err := r.Cancel("x", reservation.DefaultPolicy(), builder.DefaultNow)
		require.NoError(t, err)

		err = r.ConfirmPayment(reservation.MethodCash, "c-1", builder.DefaultNow)
		require.ErrorIs(t, err, reservation.ErrPaymentOnCancelled)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()
		err := r.ConfirmPayment(reservation.PaymentMethod("CHEQUE"), "c-1", builder.DefaultNow)
		require.ErrorIs(t, err, reservation.ErrInvalidPaymentMethod)
	})
}

func TestTransitions(t *testing.T) {
	t.Run("happy path through the stay", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()
		require.ErrorIs(t, r.CheckIn(builder.DefaultNow), reservation.ErrInvalidTransition, "unpaid reservation cannot check in")

		require.NoError(t, r.ConfirmPayment(reservation.MethodDebitCard, "d-1", builder.DefaultNow))
		require.NoError(t, r.CheckIn(builder.DefaultNow))
		assert.Equal(t, reservation.StatusCheckedIn, r.Status())
		require.NoError(t, r.CheckOut(builder.DefaultNow))
		assert.Equal(t, reservation.StatusCheckedOut, r.Status())

		require.ErrorIs(t, r.MarkNoShow(builder.DefaultNow), reservation.ErrInvalidTransition)
	})

	t.Run("no-show from any live status", func(t *testing.T) {
		for _, prepare := range []func(*reservation.Reservation){
			func(*reservation.Reservation) {},
			func(r *reservation.Reservation) { _ = r.ConfirmPayment(reservation.MethodCash, "c", builder.DefaultNow) },
		} {
			r := builder.NewReservationBuilder().MustBuildDomain()
			prepare(r)
			require.NoError(t, r.MarkNoShow(builder.DefaultNow))
			assert.Equal(t, reservation.StatusNoShow, r.Status())
			assert.True(t, r.Status().IsTerminal())
		}
	})

	t.Run("sync from ledger confirms pending reservation", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()
		method := reservation.MethodNetBanking
		assert.True(t, r.SyncPaid(&method, nil, builder.DefaultNow))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, reservation.PaymentPaid, r.PaymentStatus())
	})

	t.Run("sync leaves closed reservation alone", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()
		_, _ = r.Cancel("x", reservation.DefaultPolicy(), builder.DefaultNow)
		assert.False(t, r.SyncPaid(nil, nil, builder.DefaultNow))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})
}

func TestTotalInvariantHoldsWithDiscount(t *testing.T) {
	calc := reservation.NewDefaultPriceCalculator(decimal.RequireFromString("12.00"))
	q, err := calc.Quote(decimal.RequireFromString("99.99"), 7, decimal.RequireFromString("50"))
	require.NoError(t, err)
	assert.True(t, q.Total.Equal(q.Base.Add(q.Tax).Sub(q.Discount)))
}
