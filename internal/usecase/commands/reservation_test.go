//go:build unit

package commands_test

import (
	"sync"
	"testing"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReservationCommandsTestSuite struct {
	lifecycleSuite
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("prices the stay and opens a pending bill", func() {
		v := s.book(date(time.June, 11), date(time.June, 14))

		s.Equal(3, v.Nights)
		s.Equal("300.00", money(v.BaseAmount))
		s.Equal("36.00", money(v.TaxAmount))
		s.Equal("336.00", money(v.TotalAmount))
		s.Equal(string(reservation.StatusPendingPayment), v.Status)
		s.Equal(string(reservation.PaymentPending), v.PaymentStatus)
		s.Equal("204", v.RoomNumber)

		bill := s.billOf(v.ID)
		s.Equal("336.00", money(bill.TotalAmount))
		s.Equal("336.00", money(bill.BalanceAmount))
		s.Require().Len(bill.Items, 1)
		s.Equal("ROOM", bill.Items[0].Category)
		s.Equal(1, s.metrics.created)
	})

	s.Run("rejects an overlapping stay", func() {
		_, err := s.resCmds.Create(s.ctx, s.input(s.double.ID(), date(time.June, 12), date(time.June, 15), 1))

		s.ErrorIs(err, reservation.ErrRoomAlreadyBooked)
		s.Equal(1, s.metrics.conflicts)
	})

	s.Run("allows a stay starting on the checkout day", func() {
		v := s.book(date(time.June, 14), date(time.June, 16))
		s.Equal(2, v.Nights)
	})
}

func (s *ReservationCommandsTestSuite) TestCreate_CancelledStayReleasesRoom() {
	first := s.book(date(time.June, 11), date(time.June, 14))
	_, err := s.resCmds.Cancel(s.ctx, first.ID, "plans changed")
	s.Require().NoError(err)

	second := s.book(date(time.June, 11), date(time.June, 14))
	s.NotEqual(first.ID, second.ID)
}

func (s *ReservationCommandsTestSuite) TestCreate_Rejections() {
	tests := []struct {
		name  string
		input func() commands.CreateReservationInput
		want  error
	}{
		{
			name: "too many guests for the room",
			input: func() commands.CreateReservationInput {
				return s.input(s.double.ID(), date(time.June, 11), date(time.June, 14), 3)
			},
			want: reservation.ErrCapacityExceeded,
		},
		{
			name: "check-in before today",
			input: func() commands.CreateReservationInput {
				return s.input(s.double.ID(), date(time.May, 30), date(time.June, 2), 1)
			},
			want: reservation.ErrCheckInInPast,
		},
		{
			name: "check-out not after check-in",
			input: func() commands.CreateReservationInput {
				return s.input(s.double.ID(), date(time.June, 11), date(time.June, 11), 1)
			},
			want: reservation.ErrInvalidDateRange,
		},
		{
			name: "no adults",
			input: func() commands.CreateReservationInput {
				return s.input(s.double.ID(), date(time.June, 11), date(time.June, 14), 0)
			},
			want: reservation.ErrNoAdults,
		},
		{
			name: "unknown room",
			input: func() commands.CreateReservationInput {
				return s.input(uuid.New(), date(time.June, 11), date(time.June, 14), 1)
			},
			want: room.ErrRoomNotFound,
		},
		{
			name: "no customer and no user",
			input: func() commands.CreateReservationInput {
				in := s.input(s.double.ID(), date(time.June, 11), date(time.June, 14), 1)
				in.UserID = ""
				return in
			},
			want: commands.ErrCustomerRequired,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.resCmds.Create(s.ctx, tt.input())
			s.ErrorIs(err, tt.want)
		})
	}
	s.Zero(s.metrics.created)
}

func (s *ReservationCommandsTestSuite) TestCreate_ReusesCustomerForUser() {
	first := s.book(date(time.June, 11), date(time.June, 14))
	second, err := s.resCmds.Create(s.ctx, s.input(s.family.ID(), date(time.June, 11), date(time.June, 14), 2))
	s.Require().NoError(err)

	s.Equal(first.CustomerID, second.CustomerID)
}

func (s *ReservationCommandsTestSuite) TestCreate_ConcurrentBookingsOfferOneWinner() {
	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.resCmds.Create(s.ctx, s.input(s.double.ID(), date(time.June, 11), date(time.June, 14), 2))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errs.Is(err, reservation.ErrRoomAlreadyBooked):
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(attempts-1, conflicts)
	s.Equal(attempts-1, s.metrics.conflicts)
}

func (s *ReservationCommandsTestSuite) TestModify_ExtendAfterPayment() {
	v := s.book(date(time.June, 11), date(time.June, 14))
	s.pay(v.ID)

	checkOut := date(time.June, 16)
	got, err := s.resCmds.Modify(s.ctx, v.ID, commands.ModifyReservationInput{CheckOut: &checkOut})
	s.Require().NoError(err)

	s.Equal(5, got.Nights)
	s.Equal("560.00", money(got.TotalAmount))
	s.Equal(string(reservation.StatusPendingPayment), got.Status)
	s.Equal(string(reservation.PaymentPending), got.PaymentStatus)

	bill := s.billOf(v.ID)
	s.Equal("560.00", money(bill.TotalAmount))
	s.Equal("336.00", money(bill.PaidAmount))
	s.Equal("224.00", money(bill.BalanceAmount))
	s.Equal("PARTIAL", bill.PaymentStatus)
	s.Equal([]string{"up"}, s.metrics.modified)
}

func (s *ReservationCommandsTestSuite) TestModify_KeepsManualBillDiscount() {
	v := s.book(date(time.June, 11), date(time.June, 14))
	bill := s.billOf(v.ID)
	discount := decimal.RequireFromString("50.00")
	_, err := s.billCmds.UpdateMetrics(s.ctx, bill.ID, commands.BillMetricsInput{Discount: &discount})
	s.Require().NoError(err)

	checkOut := date(time.June, 15)
	_, err = s.resCmds.Modify(s.ctx, v.ID, commands.ModifyReservationInput{CheckOut: &checkOut})
	s.Require().NoError(err)

	bill = s.billOf(v.ID)
	s.Equal("400.00", money(bill.Subtotal))
	s.Equal("50.00", money(bill.DiscountAmount))
	s.Equal("398.00", money(bill.TotalAmount))
	s.Equal("398.00", money(bill.BalanceAmount))
}

func (s *ReservationCommandsTestSuite) TestModify_ShortenKeepsPaidState() {
	v := s.book(date(time.June, 11), date(time.June, 16))
	s.Equal("560.00", money(v.TotalAmount))
	s.pay(v.ID)

	checkOut := date(time.June, 14)
	got, err := s.resCmds.Modify(s.ctx, v.ID, commands.ModifyReservationInput{CheckOut: &checkOut})
	s.Require().NoError(err)

	s.Equal("336.00", money(got.TotalAmount))
	s.Equal(string(reservation.StatusConfirmed), got.Status)
	s.Equal(string(reservation.PaymentPaid), got.PaymentStatus)

	bill := s.billOf(v.ID)
	s.Equal("336.00", money(bill.TotalAmount))
	s.Equal("0.00", money(bill.BalanceAmount))
	s.Equal("PAID", bill.PaymentStatus)
	s.Equal([]string{"down"}, s.metrics.modified)
}

func (s *ReservationCommandsTestSuite) TestModify_MoveToLargerRoom() {
	v := s.book(date(time.June, 11), date(time.June, 14))

	roomID, adults := s.family.ID(), 4
	got, err := s.resCmds.Modify(s.ctx, v.ID, commands.ModifyReservationInput{RoomID: &roomID, Adults: &adults})
	s.Require().NoError(err)

	s.Equal("401", got.RoomNumber)
	s.Equal(4, got.Adults)
	s.Equal("840.00", money(got.TotalAmount))

	// the double room is free again
	s.book(date(time.June, 11), date(time.June, 14))
}

func (s *ReservationCommandsTestSuite) TestModify_Window() {
	v := s.book(date(time.June, 11), date(time.June, 14))
	adults := 1

	s.Run("closed 23 hours before check-in", func() {
		s.clock.Set(date(time.June, 11).Add(-23 * time.Hour))
		_, err := s.resCmds.Modify(s.ctx, v.ID, commands.ModifyReservationInput{Adults: &adults})
		s.ErrorIs(err, reservation.ErrModificationWindowClosed)
	})

	s.Run("open 25 hours before check-in", func() {
		s.clock.Set(date(time.June, 11).Add(-25 * time.Hour))
		got, err := s.resCmds.Modify(s.ctx, v.ID, commands.ModifyReservationInput{Adults: &adults})
		s.Require().NoError(err)
		s.Equal(1, got.Adults)
		s.Equal("336.00", money(got.TotalAmount))
	})
}

func (s *ReservationCommandsTestSuite) TestModify_Availability() {
	v := s.book(date(time.June, 11), date(time.June, 14))
	other := s.book(date(time.June, 20), date(time.June, 22))

	s.Run("shifting its own dates ignores itself", func() {
		checkIn, checkOut := date(time.June, 12), date(time.June, 15)
		got, err := s.resCmds.Modify(s.ctx, v.ID, commands.ModifyReservationInput{CheckIn: &checkIn, CheckOut: &checkOut})
		s.Require().NoError(err)
		s.True(got.CheckInDate.Equal(date(time.June, 12)))
	})

	s.Run("overlapping another stay is rejected", func() {
		checkIn, checkOut := date(time.June, 19), date(time.June, 21)
		_, err := s.resCmds.Modify(s.ctx, v.ID, commands.ModifyReservationInput{CheckIn: &checkIn, CheckOut: &checkOut})
		s.ErrorIs(err, reservation.ErrRoomAlreadyBooked)
	})

	s.Run("a closed reservation cannot change", func() {
		_, err := s.resCmds.Cancel(s.ctx, other.ID, "")
		s.Require().NoError(err)

		adults := 1
		_, err = s.resCmds.Modify(s.ctx, other.ID, commands.ModifyReservationInput{Adults: &adults})
		s.ErrorIs(err, reservation.ErrNotModifiable)
	})

	s.Run("unknown reservation", func() {
		adults := 1
		_, err := s.resCmds.Modify(s.ctx, uuid.New(), commands.ModifyReservationInput{Adults: &adults})
		s.ErrorIs(err, reservation.ErrReservationNotFound)
	})
}

func (s *ReservationCommandsTestSuite) TestCancel_RefundTiers() {
	tests := []struct {
		name          string
		beforeCheckIn time.Duration
		wantTier      reservation.RefundTier
		wantRefund    string
		wantPayment   reservation.PaymentStatus
	}{
		{"72 hours ahead refunds everything", 72 * time.Hour, reservation.RefundFull, "336.00", reservation.PaymentRefunded},
		{"30 hours ahead refunds half", 30 * time.Hour, reservation.RefundHalf, "168.00", reservation.PaymentRefunded},
		{"10 hours ahead refunds nothing", 10 * time.Hour, reservation.RefundNone, "0.00", reservation.PaymentPending},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.clock.Set(builder.DefaultNow)
			v := s.book(date(time.June, 11), date(time.June, 14))

			s.clock.Set(date(time.June, 11).Add(-tt.beforeCheckIn))
			res, err := s.resCmds.Cancel(s.ctx, v.ID, "flight cancelled")
			s.Require().NoError(err)

			s.Equal(tt.wantTier, res.Tier)
			s.Equal(tt.wantRefund, money(res.RefundAmount))
			s.Equal(reservation.StatusCancelled, res.Status)

			got, err := s.resQ.GetByID(s.ctx, v.ID)
			s.Require().NoError(err)
			s.Equal(string(tt.wantPayment), got.PaymentStatus)
			s.Require().NotNil(got.CancellationReason)
			s.Equal("flight cancelled", *got.CancellationReason)
		})
	}
	s.Equal([]string{"full", "half", "none"}, s.metrics.cancelled)
}

func (s *ReservationCommandsTestSuite) TestCancel_Twice() {
	v := s.book(date(time.June, 11), date(time.June, 14))
	_, err := s.resCmds.Cancel(s.ctx, v.ID, "")
	s.Require().NoError(err)

	_, err = s.resCmds.Cancel(s.ctx, v.ID, "")
	s.ErrorIs(err, reservation.ErrNotCancellable)
}

func (s *ReservationCommandsTestSuite) TestConfirmPayment() {
	s.Run("confirms the stay and settles the bill", func() {
		v := s.book(date(time.June, 11), date(time.June, 14))
		got := s.pay(v.ID)

		s.Equal(string(reservation.StatusConfirmed), got.Status)
		s.Equal(string(reservation.PaymentPaid), got.PaymentStatus)
		s.Require().NotNil(got.PaymentMethod)
		s.Equal(string(reservation.MethodCreditCard), *got.PaymentMethod)

		bill := s.billOf(v.ID)
		s.Equal("PAID", bill.PaymentStatus)
		s.Equal("336.00", money(bill.PaidAmount))
		s.Equal("0.00", money(bill.BalanceAmount))
	})

	s.Run("requires a transaction id", func() {
		v := s.book(date(time.June, 20), date(time.June, 21))
		_, err := s.resCmds.ConfirmPayment(s.ctx, v.ID, reservation.MethodUPI, "")
		s.ErrorIs(err, reservation.ErrTransactionIDRequired)
	})

	s.Run("refuses a cancelled reservation", func() {
		v := s.book(date(time.June, 25), date(time.June, 26))
		_, err := s.resCmds.Cancel(s.ctx, v.ID, "")
		s.Require().NoError(err)

		_, err = s.resCmds.ConfirmPayment(s.ctx, v.ID, reservation.MethodCash, "txn-1")
		s.ErrorIs(err, reservation.ErrPaymentOnCancelled)
	})
}

func (s *ReservationCommandsTestSuite) TestTransitions() {
	s.Run("full stay", func() {
		v := s.book(date(time.June, 11), date(time.June, 14))
		s.pay(v.ID)

		got, err := s.resCmds.CheckIn(s.ctx, v.ID)
		s.Require().NoError(err)
		s.Equal(string(reservation.StatusCheckedIn), got.Status)

		got, err = s.resCmds.CheckOut(s.ctx, v.ID)
		s.Require().NoError(err)
		s.Equal(string(reservation.StatusCheckedOut), got.Status)

		_, err = s.resCmds.MarkNoShow(s.ctx, v.ID)
		s.ErrorIs(err, reservation.ErrInvalidTransition)
	})

	s.Run("unpaid stay cannot check in", func() {
		v := s.book(date(time.June, 20), date(time.June, 22))

		_, err := s.resCmds.CheckIn(s.ctx, v.ID)
		s.ErrorIs(err, reservation.ErrInvalidTransition)

		got, err := s.resCmds.MarkNoShow(s.ctx, v.ID)
		s.Require().NoError(err)
		s.Equal(string(reservation.StatusNoShow), got.Status)
	})

	s.Run("unknown reservation", func() {
		_, err := s.resCmds.CheckOut(s.ctx, uuid.New())
		s.ErrorIs(err, reservation.ErrReservationNotFound)
	})
}
