package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"room_number"`
	Type         string          `json:"room_type"`
	NightlyRate  decimal.Decimal `json:"nightly_rate"`
	MaxOccupancy int             `json:"max_occupancy"`
	Floor        int             `json:"floor"`
	IsAvailable  bool            `json:"is_available"`
}

// ReservationView joins a reservation with its room and customer
type ReservationView struct {
	ID                 uuid.UUID        `json:"id"`
	CustomerID         uuid.UUID        `json:"customer_id"`
	CustomerName       string           `json:"customer_name"`
	CustomerEmail      string           `json:"customer_email"`
	RoomID             uuid.UUID        `json:"room_id"`
	RoomNumber         string           `json:"room_number"`
	RoomType           string           `json:"room_type"`
	CheckInDate        time.Time        `json:"check_in_date"`
	CheckOutDate       time.Time        `json:"check_out_date"`
	Adults             int              `json:"number_of_adults"`
	Children           int              `json:"number_of_children"`
	Nights             int              `json:"number_of_nights"`
	BaseAmount         decimal.Decimal  `json:"base_amount"`
	TaxAmount          decimal.Decimal  `json:"tax_amount"`
	DiscountAmount     decimal.Decimal  `json:"discount_amount"`
	TotalAmount        decimal.Decimal  `json:"total_amount"`
	Status             string           `json:"status"`
	PaymentStatus      string           `json:"payment_status"`
	PaymentMethod      *string          `json:"payment_method,omitempty"`
	TransactionID      *string          `json:"transaction_id,omitempty"`
	SpecialRequests    string           `json:"special_requests"`
	CancellationReason *string          `json:"cancellation_reason,omitempty"`
	CancellationDate   *time.Time       `json:"cancellation_date,omitempty"`
	RefundAmount       *decimal.Decimal `json:"refund_amount,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type BillItemView struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type BillView struct {
	ID             uuid.UUID       `json:"id"`
	ReservationID  uuid.UUID       `json:"reservation_id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	BillDate       time.Time       `json:"bill_date"`
	Items          []BillItemView  `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	BalanceAmount  decimal.Decimal `json:"balance_amount"`
	PaymentStatus  string          `json:"payment_status"`
	PaymentMethod  *string         `json:"payment_method,omitempty"`
	TransactionID  *string         `json:"transaction_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Page is one 0-based page of a sorted result set
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}
