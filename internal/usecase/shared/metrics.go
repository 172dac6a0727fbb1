package shared

// MetricsRecorder receives booking and billing events after they commit.
type MetricsRecorder interface {
	ReservationCreated()
	ReservationModified(direction string)
	ReservationCancelled(tier string)
	ReservationTransition(to string)
	BillPayment(result string)
	BillItemChanged(op string)
	BookingConflict()
}

type NopRecorder struct{}

func (NopRecorder) ReservationCreated()          {}
func (NopRecorder) ReservationModified(string)   {}
func (NopRecorder) ReservationCancelled(string)  {}
func (NopRecorder) ReservationTransition(string) {}
func (NopRecorder) BillPayment(string)           {}
func (NopRecorder) BillItemChanged(string)       {}
func (NopRecorder) BookingConflict()             {}
