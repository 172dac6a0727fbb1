package response

import (
	"time"

	"hotel-backoffice/internal/pkg/money"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type ReservationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customerId"`
	CustomerName       string     `json:"customerName"`
	CustomerEmail      string     `json:"customerEmail,omitempty"`
	RoomID             uuid.UUID  `json:"roomId"`
	RoomNumber         string     `json:"roomNumber"`
	RoomType           string     `json:"roomType"`
	CheckInDate        string     `json:"checkInDate"`
	CheckOutDate       string     `json:"checkOutDate"`
	NumberOfAdults     int        `json:"numberOfAdults"`
	NumberOfChildren   int        `json:"numberOfChildren"`
	NumberOfNights     int        `json:"numberOfNights"`
	BaseAmount         string     `json:"baseAmount"`
	TaxAmount          string     `json:"taxAmount"`
	DiscountAmount     string     `json:"discountAmount"`
	TotalAmount        string     `json:"totalAmount"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus"`
	PaymentMethod      *string    `json:"paymentMethod,omitempty"`
	TransactionID      *string    `json:"transactionId,omitempty"`
	SpecialRequests    string     `json:"specialRequests,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancellationDate   *time.Time `json:"cancellationDate,omitempty"`
	RefundAmount       *string    `json:"refundAmount,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                 v.ID,
		CustomerID:         v.CustomerID,
		CustomerName:       v.CustomerName,
		CustomerEmail:      v.CustomerEmail,
		RoomID:             v.RoomID,
		RoomNumber:         v.RoomNumber,
		RoomType:           v.RoomType,
		CheckInDate:        v.CheckInDate.Format(dateLayout),
		CheckOutDate:       v.CheckOutDate.Format(dateLayout),
		NumberOfAdults:     v.Adults,
		NumberOfChildren:   v.Children,
		NumberOfNights:     v.Nights,
		BaseAmount:         money.String(v.BaseAmount),
		TaxAmount:          money.String(v.TaxAmount),
		DiscountAmount:     money.String(v.DiscountAmount),
		TotalAmount:        money.String(v.TotalAmount),
		Status:             v.Status,
		PaymentStatus:      v.PaymentStatus,
		PaymentMethod:      v.PaymentMethod,
		TransactionID:      v.TransactionID,
		SpecialRequests:    v.SpecialRequests,
		CancellationReason: v.CancellationReason,
		CancellationDate:   v.CancellationDate,
		RefundAmount:       moneyPtr(v.RefundAmount),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}

type CancelResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
	RefundAmount  string    `json:"refundAmount"`
	RefundTier    string    `json:"refundTier"`
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		ReservationID: r.ReservationID,
		Status:        string(r.Status),
		RefundAmount:  money.String(r.RefundAmount),
		RefundTier:    string(r.Tier),
	}
}

type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"totalElements"`
	TotalPages int `json:"totalPages"`
}

func FromPage[V, T any](p *queries.Page[V], conv func(V) T) *PageResponse[T] {
	items := make([]T, len(p.Items))
	for i, v := range p.Items {
		items[i] = conv(v)
	}
	return &PageResponse[T]{
		Items:      items,
		Page:       p.Page,
		Size:       p.Size,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
	}
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money.String(*d)
	return &s
}
