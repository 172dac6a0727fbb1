package queries

import (
	"strings"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/errs"
)

const (
	DefaultPageSize = 10
	MaxQueryLength  = 100
)

var (
	ErrInvalidStatusFilter = errs.InvalidRequest("invalid reservation status")
	ErrInvalidDateFilter   = errs.InvalidRequest("from cannot be after to")
	ErrInvalidPage         = errs.InvalidRequest("page must be zero or greater")
	ErrQueryTooLong        = errs.InvalidRequest("search text is too long")
)

// ReservationFilter is the admin search input. Every set field narrows the result.
type ReservationFilter struct {
	Status     *reservation.Status
	From       *time.Time
	To         *time.Time
	RoomNumber *string
	Query      *string
	Page       int
	Size       int
}

func (f ReservationFilter) Normalize(maxPageSize int) (ReservationFilter, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return f, ErrInvalidStatusFilter
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return f, ErrInvalidDateFilter
	}
	if f.Page < 0 {
		return f, ErrInvalidPage
	}
	if f.Query != nil {
		q := strings.TrimSpace(*f.Query)
		switch {
		case q == "":
			f.Query = nil
		case len([]rune(q)) > MaxQueryLength:
			return f, ErrQueryTooLong
		default:
			f.Query = &q
		}
	}
	if f.RoomNumber != nil && strings.TrimSpace(*f.RoomNumber) == "" {
		f.RoomNumber = nil
	}
	switch {
	case f.Size <= 0:
		f.Size = DefaultPageSize
	case maxPageSize > 0 && f.Size > maxPageSize:
		f.Size = maxPageSize
	}
	return f, nil
}

func (f ReservationFilter) Offset() int {
	return f.Page * f.Size
}

type ReservationPredicateKind int

const (
	ReservationByStatus ReservationPredicateKind = iota
	ReservationCheckInFrom
	ReservationCheckInTo
	ReservationByRoomNumber
	ReservationByText
)

type ReservationPredicate struct {
	Kind   ReservationPredicateKind
	Status reservation.Status
	Date   time.Time
	Text   string
}

// Predicates lists the optional conditions of f, combined with AND.
func (f ReservationFilter) Predicates() []ReservationPredicate {
	var preds []ReservationPredicate
	if f.Status != nil {
		preds = append(preds, ReservationPredicate{Kind: ReservationByStatus, Status: *f.Status})
	}
	if f.From != nil {
		preds = append(preds, ReservationPredicate{Kind: ReservationCheckInFrom, Date: *f.From})
	}
	if f.To != nil {
		preds = append(preds, ReservationPredicate{Kind: ReservationCheckInTo, Date: *f.To})
	}
	if f.RoomNumber != nil {
		preds = append(preds, ReservationPredicate{Kind: ReservationByRoomNumber, Text: *f.RoomNumber})
	}
	if f.Query != nil {
		preds = append(preds, ReservationPredicate{Kind: ReservationByText, Text: *f.Query})
	}
	return preds
}

// Matches evaluates p against a view in memory.
func (p ReservationPredicate) Matches(v *ReservationView) bool {
	switch p.Kind {
	case ReservationByStatus:
		return v.Status == string(p.Status)
	case ReservationCheckInFrom:
		return !v.CheckInDate.Before(p.Date)
	case ReservationCheckInTo:
		return !v.CheckInDate.After(p.Date)
	case ReservationByRoomNumber:
		return v.RoomNumber == p.Text
	case ReservationByText:
		q := strings.ToLower(p.Text)
		return strings.Contains(strings.ToLower(v.CustomerName), q) ||
			strings.Contains(strings.ToLower(v.CustomerEmail), q) ||
			strings.Contains(strings.ToLower(v.RoomNumber), q)
	default:
		return false
	}
}
