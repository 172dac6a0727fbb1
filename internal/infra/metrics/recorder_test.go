//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	r := metrics.NewRecorder(registry)

	r.ReservationCreated()
	r.ReservationCreated()
	r.ReservationModified("up")
	r.ReservationCancelled("half")
	r.ReservationTransition("CHECKED_IN")
	r.BillPayment("paid")
	r.BillItemChanged("add")
	r.BookingConflict()

	count, err := testutil.GatherAndCount(registry,
		"hotel_reservations_created_total",
		"hotel_reservations_modified_total",
		"hotel_reservations_cancelled_total",
		"hotel_reservation_transitions_total",
		"hotel_bill_payments_total",
		"hotel_bill_items_total",
		"hotel_booking_conflicts_total",
	)
	assert.NoError(t, err)
	assert.Equal(t, 7, count)

	mfs, err := registry.Gather()
	assert.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "hotel_reservations_created_total" {
			assert.Equal(t, float64(2), mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestRecorder_SharesRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := metrics.NewRecorder(registry)
	second := metrics.NewRecorder(registry)

	first.BookingConflict()
	second.BookingConflict()

	count, err := testutil.GatherAndCount(registry, "hotel_booking_conflicts_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHTTPMetrics_Observe(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(registry)

	m.Observe("POST", "/api/reservations", "201", 15*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ReqTotal.WithLabelValues("POST", "/api/reservations", "201")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ReqDur))
}
