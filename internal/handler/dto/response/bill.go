package response

import (
	"time"

	"hotel-backoffice/internal/pkg/money"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type BillItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unitPrice"`
	TotalPrice  string    `json:"totalPrice"`
}

type BillResponse struct {
	ID             uuid.UUID          `json:"id"`
	ReservationID  uuid.UUID          `json:"reservationId"`
	CustomerID     uuid.UUID          `json:"customerId"`
	BillDate       time.Time          `json:"billDate"`
	Items          []BillItemResponse `json:"items"`
	Subtotal       string             `json:"subtotal"`
	TaxRate        string             `json:"taxRate"`
	TaxAmount      string             `json:"taxAmount"`
	DiscountAmount string             `json:"discountAmount"`
	TotalAmount    string             `json:"totalAmount"`
	PaidAmount     string             `json:"paidAmount"`
	BalanceAmount  string             `json:"balanceAmount"`
	PaymentStatus  string             `json:"paymentStatus"`
	PaymentMethod  *string            `json:"paymentMethod,omitempty"`
	TransactionID  *string            `json:"transactionId,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func FromBillView(v *queries.BillView) *BillResponse {
	r := &BillResponse{
		ID:             v.ID,
		ReservationID:  v.ReservationID,
		CustomerID:     v.CustomerID,
		BillDate:       v.BillDate,
		Subtotal:       money.String(v.Subtotal),
		TaxRate:        money.String(v.TaxRate),
		TaxAmount:      money.String(v.TaxAmount),
		DiscountAmount: money.String(v.DiscountAmount),
		TotalAmount:    money.String(v.TotalAmount),
		PaidAmount:     money.String(v.PaidAmount),
		BalanceAmount:  money.String(v.BalanceAmount),
		PaymentStatus:  v.PaymentStatus,
		PaymentMethod:  v.PaymentMethod,
		TransactionID:  v.TransactionID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}

	r.Items = make([]BillItemResponse, len(v.Items))
	for i, it := range v.Items {
		r.Items[i] = BillItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Category:    it.Category,
			Quantity:    it.Quantity,
			UnitPrice:   money.String(it.UnitPrice),
			TotalPrice:  money.String(it.TotalPrice),
		}
	}
	return r
}
