package reservation

type Status string

const (
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusConfirmed      Status = "CONFIRMED"
	StatusCheckedIn      Status = "CHECKED_IN"
	StatusCheckedOut     Status = "CHECKED_OUT"
	StatusCancelled      Status = "CANCELLED"
	StatusNoShow         Status = "NO_SHOW"
)

// transitions lists every edge of the lifecycle state machine.
var transitions = map[Status][]Status{
	StatusPendingPayment: {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:      {StatusCancelled, StatusCheckedIn, StatusNoShow},
	StatusCheckedIn:      {StatusCheckedOut, StatusNoShow},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusConfirmed, StatusCheckedIn,
		StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCheckedOut, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsLive reports whether a reservation in this status holds its room.
func (s Status) IsLive() bool {
	switch s {
	case StatusPendingPayment, StatusConfirmed, StatusCheckedIn:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LiveStatuses returns the statuses that count against room availability.
func LiveStatuses() []Status {
	return []Status{StatusPendingPayment, StatusConfirmed, StatusCheckedIn}
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPartial  PaymentStatus = "PARTIAL"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodDebitCard  PaymentMethod = "DEBIT_CARD"
	MethodUPI        PaymentMethod = "UPI"
	MethodNetBanking PaymentMethod = "NET_BANKING"
	MethodCash       PaymentMethod = "CASH"
	MethodWallet     PaymentMethod = "WALLET"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodUPI, MethodNetBanking, MethodCash, MethodWallet:
		return true
	default:
		return false
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return m, nil
}
