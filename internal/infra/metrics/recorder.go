package metrics

import (
	"fmt"

	"hotel-backoffice/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "hotel"

// Recorder publishes booking and billing events as Prometheus counters.
type Recorder struct {
	created     prometheus.Counter
	modified    *prometheus.CounterVec
	cancelled   *prometheus.CounterVec
	transitions *prometheus.CounterVec
	payments    *prometheus.CounterVec
	items       *prometheus.CounterVec
	conflicts   prometheus.Counter
}

var _ shared.MetricsRecorder = (*Recorder)(nil)

func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reservations_created_total",
			Help:      "Reservations created.",
		}),
		modified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reservations_modified_total",
			Help:      "Reservation modifications by price direction.",
		}, []string{"direction"}),
		cancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reservations_cancelled_total",
			Help:      "Cancellations by refund tier.",
		}, []string{"tier"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reservation_transitions_total",
			Help:      "Reservation status transitions by target status.",
		}, []string{"to"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "bill_payments_total",
			Help:      "Accepted bill payments by resulting bill status.",
		}, []string{"result"}),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "bill_items_total",
			Help:      "Bill item changes by operation.",
		}, []string{"op"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "booking_conflicts_total",
			Help:      "Bookings rejected because the room was taken.",
		}),
	}

	r.created = mustRegister(reg, r.created)
	r.modified = mustRegister(reg, r.modified)
	r.cancelled = mustRegister(reg, r.cancelled)
	r.transitions = mustRegister(reg, r.transitions)
	r.payments = mustRegister(reg, r.payments)
	r.items = mustRegister(reg, r.items)
	r.conflicts = mustRegister(reg, r.conflicts)
	return r
}

func (r *Recorder) ReservationCreated()              { r.created.Inc() }
func (r *Recorder) ReservationModified(dir string)   { r.modified.WithLabelValues(dir).Inc() }
func (r *Recorder) ReservationCancelled(tier string) { r.cancelled.WithLabelValues(tier).Inc() }
func (r *Recorder) ReservationTransition(to string)  { r.transitions.WithLabelValues(to).Inc() }
func (r *Recorder) BillPayment(result string)        { r.payments.WithLabelValues(result).Inc() }
func (r *Recorder) BillItemChanged(op string)        { r.items.WithLabelValues(op).Inc() }
func (r *Recorder) BookingConflict()                 { r.conflicts.Inc() }

// mustRegister returns the collector already registered under the same
// descriptor when there is one, so tests and restarts can share a registry.
func mustRegister[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
	return c
}
