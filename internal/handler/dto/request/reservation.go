package request

import (
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

// DateLayout is the wire format of civil dates.
const DateLayout = "2006-01-02"

type CreateReservationRequest struct {
	CustomerID       *uuid.UUID `json:"customerId,omitempty"`
	RoomID           uuid.UUID  `json:"roomId" binding:"required"`
	CheckInDate      string     `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate     string     `json:"checkOutDate" binding:"required,datetime=2006-01-02"`
	NumberOfAdults   int        `json:"numberOfAdults" binding:"required"`
	NumberOfChildren *int       `json:"numberOfChildren,omitempty"`
	SpecialRequests  string     `json:"specialRequests,omitempty"`
}

func (r CreateReservationRequest) ToInput(userID string) (commands.CreateReservationInput, error) {
	in, err := parseDate(r.CheckInDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	out, err := parseDate(r.CheckOutDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	children := 0
	if r.NumberOfChildren != nil {
		children = *r.NumberOfChildren
	}
	return commands.CreateReservationInput{
		CustomerID:      r.CustomerID,
		UserID:          userID,
		RoomID:          r.RoomID,
		CheckIn:         in,
		CheckOut:        out,
		Adults:          r.NumberOfAdults,
		Children:        children,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// ModifyReservationRequest leaves a field unchanged when it is omitted.
type ModifyReservationRequest struct {
	RoomID           *uuid.UUID `json:"roomId,omitempty"`
	CheckInDate      *string    `json:"checkInDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	CheckOutDate     *string    `json:"checkOutDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	NumberOfAdults   *int       `json:"numberOfAdults,omitempty"`
	NumberOfChildren *int       `json:"numberOfChildren,omitempty"`
}

func (r ModifyReservationRequest) ToInput() (commands.ModifyReservationInput, error) {
	in, err := parseOptionalDate(r.CheckInDate)
	if err != nil {
		return commands.ModifyReservationInput{}, err
	}
	out, err := parseOptionalDate(r.CheckOutDate)
	if err != nil {
		return commands.ModifyReservationInput{}, err
	}
	return commands.ModifyReservationInput{
		RoomID:   r.RoomID,
		CheckIn:  in,
		CheckOut: out,
		Adults:   r.NumberOfAdults,
		Children: r.NumberOfChildren,
	}, nil
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

type ConfirmPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
}

func (r ConfirmPaymentRequest) Method() reservation.PaymentMethod {
	return reservation.PaymentMethod(r.PaymentMethod)
}

// AdminReservationQuery is bound from the admin search query string.
type AdminReservationQuery struct {
	Status     *string `form:"status"`
	From       *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         *string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	RoomNumber *string `form:"roomNumber"`
	Query      *string `form:"q"`
	Page       int     `form:"page"`
	Size       int     `form:"size"`
}

func (q AdminReservationQuery) ToFilter() (queries.ReservationFilter, error) {
	from, err := parseOptionalDate(q.From)
	if err != nil {
		return queries.ReservationFilter{}, err
	}
	to, err := parseOptionalDate(q.To)
	if err != nil {
		return queries.ReservationFilter{}, err
	}
	f := queries.ReservationFilter{
		From:       from,
		To:         to,
		RoomNumber: q.RoomNumber,
		Query:      q.Query,
		Page:       q.Page,
		Size:       q.Size,
	}
	if q.Status != nil && *q.Status != "" {
		s := reservation.Status(*q.Status)
		f.Status = &s
	}
	return f, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
