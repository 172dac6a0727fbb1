//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newBill(t *testing.T) *billing.Bill {
	t.Helper()
	r := builder.NewReservationBuilder().MustBuildDomain()
	b, err := billing.NewBillForReservation(r, builder.DefaultNow)
	require.NoError(t, err)
	return b
}

func assertBalanced(t *testing.T, b *billing.Bill) {
	t.Helper()
	want := b.Subtotal().Add(b.TaxAmount()).Sub(b.DiscountAmount())
	assert.True(t, want.Equal(b.TotalAmount()), "total %s != subtotal+tax-discount %s", b.TotalAmount(), want)
	balance := b.TotalAmount().Sub(b.PaidAmount())
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	assert.True(t, balance.Equal(b.BalanceAmount()), "balance %s != %s", b.BalanceAmount(), balance)
}

func TestNewBillForReservation(t *testing.T) {
	r := builder.NewReservationBuilder().MustBuildDomain()

	b, err := billing.NewBillForReservation(r, builder.DefaultNow)
	require.NoError(t, err)

	assert.Equal(t, r.ID(), b.ReservationID())
	assert.Equal(t, r.CustomerID(), b.CustomerID())
	assert.Equal(t, billing.StatusPending, b.Status())
	assert.Equal(t, "300.00", b.Subtotal().StringFixed(2))
	assert.Equal(t, "12.00", b.TaxRate().StringFixed(2))
	assert.Equal(t, "36.00", b.TaxAmount().StringFixed(2))
	assert.Equal(t, "336.00", b.TotalAmount().StringFixed(2))
	assert.True(t, b.PaidAmount().IsZero())
	assert.Equal(t, "336.00", b.BalanceAmount().StringFixed(2))

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Room Charge - 3 Nights", items[0].Description)
	assert.Equal(t, billing.CategoryRoom, items[0].Category)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "300.00", items[0].TotalPrice.StringFixed(2))
	assertBalanced(t, b)
}

func TestApplyPayment(t *testing.T) {
	cash := reservation.MethodCash
	later := builder.DefaultNow.Add(time.Hour)

	t.Run("partial then full payment", func(t *testing.T) {
		b := newBill(t)

		change, err := b.ApplyPayment(dec("100.00"), cash, nil, later)
		require.NoError(t, err)
		assert.False(t, change.BecamePaid)
		assert.Equal(t, billing.StatusPartial, b.Status())
		assert.Equal(t, "236.00", b.BalanceAmount().StringFixed(2))
		assertBalanced(t, b)

		txn := "TXN-1"
		change, err = b.ApplyPayment(dec("236.00"), cash, &txn, later)
		require.NoError(t, err)
		assert.True(t, change.BecamePaid)
		assert.Equal(t, billing.StatusPaid, b.Status())
		assert.True(t, b.BalanceAmount().IsZero())
		require.NotNil(t, b.TransactionID())
		assert.Equal(t, "TXN-1", *b.TransactionID())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("overpayment is rejected and leaves the bill unmodified", func(t *testing.T) {
		b := newBill(t)
		before := b.Snapshot()

		_, err := b.ApplyPayment(dec("336.01"), cash, nil, later)
		require.ErrorIs(t, err, billing.ErrPaymentExceedsBalance)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))

		if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
			t.Errorf("bill changed after rejected payment (-before +after):\n%s", diff)
		}
	})

	t.Run("payment on a paid bill is rejected", func(t *testing.T) {
		b := newBill(t)
		_, err := b.ApplyPayment(dec("336.00"), cash, nil, later)
		require.NoError(t, err)

		_, err = b.ApplyPayment(dec("1.00"), cash, nil, later)
		require.ErrorIs(t, err, billing.ErrBillAlreadyPaid)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		b := newBill(t)
		_, err := b.ApplyPayment(decimal.Zero, cash, nil, later)
		require.ErrorIs(t, err, billing.ErrNonPositivePayment)
		_, err = b.ApplyPayment(dec("-5"), cash, nil, later)
		require.ErrorIs(t, err, billing.ErrNonPositivePayment)
	})

	t.Run("amount that rounds to zero", func(t *testing.T) {
		b := newBill(t)
		_, err := b.ApplyPayment(dec("0.004"), cash, nil, later)
		require.ErrorIs(t, err, billing.ErrNonPositivePayment)
		assert.True(t, b.PaidAmount().IsZero())
		assert.Nil(t, b.PaymentMethod())
		assert.Equal(t, billing.StatusPending, b.Status())
	})

	t.Run("unknown method", func(t *testing.T) {
		b := newBill(t)
		_, err := b.ApplyPayment(dec("5"), reservation.PaymentMethod("CHEQUE"), nil, later)
		require.ErrorIs(t, err, reservation.ErrInvalidPaymentMethod)
	})
}

func TestItems(t *testing.T) {
	now := builder.DefaultNow

	t.Run("add item recalculates with the bill tax rate", func(t *testing.T) {
		b := newBill(t)
		item, err := billing.NewItem("Club sandwich", billing.CategoryFood, 2, dec("12.50"))
		require.NoError(t, err)
		assert.Equal(t, "25.00", item.TotalPrice.StringFixed(2))

		require.NoError(t, b.AddItem(item, now))

		assert.Len(t, b.Items(), 2)
		assert.Equal(t, "325.00", b.Subtotal().StringFixed(2))
		assert.Equal(t, "39.00", b.TaxAmount().StringFixed(2))
		assert.Equal(t, "364.00", b.TotalAmount().StringFixed(2))
		assertBalanced(t, b)
	})

	t.Run("remove item", func(t *testing.T) {
		b := newBill(t)
		item, err := billing.NewItem("Laundry", billing.CategoryLaundry, 1, dec("20.00"))
		require.NoError(t, err)
		require.NoError(t, b.AddItem(item, now))

		_, err = b.RemoveItem(item.ID, now)
		require.NoError(t, err)
		assert.Len(t, b.Items(), 1)
		assert.Equal(t, "336.00", b.TotalAmount().StringFixed(2))
		assertBalanced(t, b)
	})

	t.Run("remove unknown item is not found", func(t *testing.T) {
		b := newBill(t)
		_, err := b.RemoveItem(uuid.New(), now)
		require.ErrorIs(t, err, billing.ErrBillItemNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("paid bill rejects item changes", func(t *testing.T) {
		b := newBill(t)
		_, err := b.ApplyPayment(dec("336.00"), reservation.MethodUPI, nil, now)
		require.NoError(t, err)

		item, err := billing.NewItem("Minibar", billing.CategoryMinibar, 1, dec("8.00"))
		require.NoError(t, err)
		require.ErrorIs(t, b.AddItem(item, now), billing.ErrBillAlreadyPaid)

		_, err = b.RemoveItem(b.Items()[0].ID, now)
		require.ErrorIs(t, err, billing.ErrBillAlreadyPaid)
	})

	t.Run("item validation", func(t *testing.T) {
		cases := []struct {
			name     string
			desc     string
			category billing.Category
			qty      int
			price    string
			errIs    error
		}{
			{"empty description", "  ", billing.CategoryOther, 1, "1.00", billing.ErrEmptyItemDescription},
			{"unknown category", "Spa", billing.Category("SPA"), 1, "1.00", billing.ErrInvalidItemCategory},
			{"zero quantity", "Spa", billing.CategoryService, 0, "1.00", billing.ErrInvalidItemQuantity},
			{"negative price", "Spa", billing.CategoryService, 1, "-1.00", billing.ErrNegativeUnitPrice},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := billing.NewItem(tc.desc, tc.category, tc.qty, dec(tc.price))
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestUpdateMetrics(t *testing.T) {
	now := builder.DefaultNow

	t.Run("discount is clamped to subtotal plus tax", func(t *testing.T) {
		b := newBill(t)
		discount := dec("500.00")
		_, err := b.UpdateMetrics(nil, &discount, now)
		require.NoError(t, err)

		assert.Equal(t, "336.00", b.DiscountAmount().StringFixed(2))
		assert.True(t, b.TotalAmount().IsZero())
		assertBalanced(t, b)
	})

	t.Run("tax rate change", func(t *testing.T) {
		b := newBill(t)
		rate := dec("10")
		_, err := b.UpdateMetrics(&rate, nil, now)
		require.NoError(t, err)

		assert.Equal(t, "30.00", b.TaxAmount().StringFixed(2))
		assert.Equal(t, "330.00", b.TotalAmount().StringFixed(2))
	})

	t.Run("tax rate out of range", func(t *testing.T) {
		b := newBill(t)
		rate := dec("100.01")
		_, err := b.UpdateMetrics(&rate, nil, now)
		require.ErrorIs(t, err, billing.ErrInvalidTaxRate)
	})

	t.Run("negative discount", func(t *testing.T) {
		b := newBill(t)
		discount := dec("-1")
		_, err := b.UpdateMetrics(nil, &discount, now)
		require.ErrorIs(t, err, billing.ErrNegativeDiscount)
	})
}

func TestRepriceRoomCharge(t *testing.T) {
	now := builder.DefaultNow

	t.Run("longer stay reopens a paid bill", func(t *testing.T) {
		b := newBill(t)
		_, err := b.ApplyPayment(dec("336.00"), reservation.MethodCash, nil, now)
		require.NoError(t, err)

		change, err := b.RepriceRoomCharge(5, dec("100.00"), now)
		require.NoError(t, err)

		assert.False(t, change.BecamePaid)
		assert.True(t, change.Overpaid.IsZero())
		assert.Equal(t, "560.00", b.TotalAmount().StringFixed(2))
		assert.Equal(t, "224.00", b.BalanceAmount().StringFixed(2))
		assert.Equal(t, billing.StatusPartial, b.Status())
		require.Len(t, b.Items(), 1)
		assert.Equal(t, "Room Charge - 5 Nights", b.Items()[0].Description)
	})

	t.Run("shorter stay below paid amount reports the overpayment", func(t *testing.T) {
		b := newBill(t)
		_, err := b.ApplyPayment(dec("336.00"), reservation.MethodCash, nil, now)
		require.NoError(t, err)

		change, err := b.RepriceRoomCharge(2, dec("100.00"), now)
		require.NoError(t, err)

		assert.Equal(t, "112.00", change.Overpaid.StringFixed(2))
		assert.True(t, b.BalanceAmount().IsZero())
		assert.Equal(t, billing.StatusPaid, b.Status())
	})

	t.Run("extra items keep their position after the room line", func(t *testing.T) {
		b := newBill(t)
		item, err := billing.NewItem("Breakfast", billing.CategoryFood, 3, dec("15.00"))
		require.NoError(t, err)
		require.NoError(t, b.AddItem(item, now))

		_, err = b.RepriceRoomCharge(4, dec("100.00"), now)
		require.NoError(t, err)

		items := b.Items()
		require.Len(t, items, 2)
		assert.Equal(t, billing.CategoryRoom, items[0].Category)
		assert.Equal(t, item.ID, items[1].ID)
		assert.Equal(t, "445.00", b.Subtotal().StringFixed(2))
		assertBalanced(t, b)
	})

	t.Run("manual discount and tax rate survive", func(t *testing.T) {
		b := newBill(t)
		rate, discount := dec("10.00"), dec("50.00")
		_, err := b.UpdateMetrics(&rate, &discount, now)
		require.NoError(t, err)

		_, err = b.RepriceRoomCharge(4, dec("100.00"), now)
		require.NoError(t, err)

		assert.Equal(t, "50.00", b.DiscountAmount().StringFixed(2))
		assert.Equal(t, "10.00", b.TaxRate().StringFixed(2))
		assert.Equal(t, "390.00", b.TotalAmount().StringFixed(2))
		assertBalanced(t, b)
	})
}
