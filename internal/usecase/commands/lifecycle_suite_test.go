//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/infra/memstore"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testUser = "user-7"

// countingRecorder keeps the events the usecases report.
type countingRecorder struct {
	shared.NopRecorder
	mu        sync.Mutex
	created   int
	conflicts int
	modified  []string
	cancelled []string
	payments  []string
	items     []string
}

func (r *countingRecorder) ReservationCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

func (r *countingRecorder) BookingConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts++
}

func (r *countingRecorder) ReservationModified(direction string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modified = append(r.modified, direction)
}

func (r *countingRecorder) ReservationCancelled(tier string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled = append(r.cancelled, tier)
}

func (r *countingRecorder) BillPayment(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, result)
}

func (r *countingRecorder) BillItemChanged(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, op)
}

type lifecycleSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	metrics  *countingRecorder
	resCmds  commands.ReservationCommands
	billCmds commands.BillingCommands
	resQ     queries.ReservationQueries
	billQ    queries.BillQueries

	// double sleeps two at 100.00 a night, family sleeps four at 250.00.
	double *room.Room
	family *room.Room
}

func (s *lifecycleSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(builder.DefaultNow)
	s.metrics = &countingRecorder{}

	s.double = s.putRoom("204", room.TypeDouble, "100.00", 2)
	s.family = s.putRoom("401", room.TypeSuite, "250.00", 4)

	uow := memstore.NewUoW(s.store)
	factory := reservation.NewFactory(s.clock, reservation.NewDefaultPriceCalculator(decimal.RequireFromString("12.00")), reservation.DefaultPolicy())
	s.resQ = queries.NewReservationQueries(memstore.NewReservationReadStore(s.store), 100)
	s.billQ = queries.NewBillQueries(memstore.NewBillReadStore(s.store))
	s.resCmds = commands.NewReservationCommands(uow, factory, s.resQ, s.metrics)
	s.billCmds = commands.NewBillingCommands(uow, s.clock, s.billQ, s.metrics)
}

func (s *lifecycleSuite) putRoom(number string, kind room.Type, rate string, maxOcc int) *room.Room {
	rm, err := room.NewRoom(uuid.New(), number, kind, decimal.RequireFromString(rate), maxOcc, 2, builder.DefaultNow)
	s.Require().NoError(err)
	s.store.PutRoom(rm)
	return rm
}

func (s *lifecycleSuite) input(roomID uuid.UUID, checkIn, checkOut time.Time, adults int) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		UserID:   testUser,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   adults,
	}
}

// book creates a reservation in the double room for two adults.
func (s *lifecycleSuite) book(checkIn, checkOut time.Time) *queries.ReservationView {
	v, err := s.resCmds.Create(s.ctx, s.input(s.double.ID(), checkIn, checkOut, 2))
	s.Require().NoError(err)
	return v
}

func (s *lifecycleSuite) pay(id uuid.UUID) *queries.ReservationView {
	v, err := s.resCmds.ConfirmPayment(s.ctx, id, reservation.MethodCreditCard, "txn-"+id.String()[:8])
	s.Require().NoError(err)
	return v
}

func (s *lifecycleSuite) billOf(reservationID uuid.UUID) *queries.BillView {
	b, err := s.billQ.GetByReservationID(s.ctx, reservationID)
	s.Require().NoError(err)
	return b
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func date(month time.Month, day int) time.Time {
	return reservation.Date(2026, month, day)
}
