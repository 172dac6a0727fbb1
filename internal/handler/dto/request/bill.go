package request

import (
	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// Money fields accept a JSON string ("12.50") or number.
type PaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	TransactionID *string         `json:"transactionId,omitempty"`
}

func (r PaymentRequest) ToInput() commands.PaymentInput {
	return commands.PaymentInput{
		Amount:        r.Amount,
		Method:        reservation.PaymentMethod(r.PaymentMethod),
		TransactionID: r.TransactionID,
	}
}

type BillItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" swaggertype:"string"`
}

func (r BillItemRequest) ToInput() commands.BillItemInput {
	return commands.BillItemInput{
		Description: r.Description,
		Category:    billing.Category(r.Category),
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

type BillMetricsRequest struct {
	TaxRate        *decimal.Decimal `json:"taxRate,omitempty" swaggertype:"string"`
	DiscountAmount *decimal.Decimal `json:"discountAmount,omitempty" swaggertype:"string"`
}

func (r BillMetricsRequest) ToInput() commands.BillMetricsInput {
	return commands.BillMetricsInput{
		TaxRate:  r.TaxRate,
		Discount: r.DiscountAmount,
	}
}
