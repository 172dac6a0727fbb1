//go:build unit || e2e

package builder

import (
	"hotel-backoffice/internal/domain/billing"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	children := b.children
	return reqdto.CreateReservationRequest{
		RoomID:           b.room.ID,
		CheckInDate:      b.checkIn.Format(reqdto.DateLayout),
		CheckOutDate:     b.checkOut.Format(reqdto.DateLayout),
		NumberOfAdults:   b.adults,
		NumberOfChildren: &children,
		SpecialRequests:  b.requests,
	}
}

// BuildView renders the reservation the way the read side joins it.
func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	snap := b.MustBuildDomain().Snapshot()
	return &queries.ReservationView{
		ID:              snap.ID,
		CustomerID:      snap.CustomerID,
		CustomerName:    "Asha Rao",
		CustomerEmail:   "asha.rao@example.com",
		RoomID:          snap.RoomID,
		RoomNumber:      "204",
		RoomType:        "DOUBLE",
		CheckInDate:     snap.CheckIn,
		CheckOutDate:    snap.CheckOut,
		Adults:          snap.Adults,
		Children:        snap.Children,
		Nights:          snap.Nights,
		BaseAmount:      snap.BaseAmount,
		TaxAmount:       snap.TaxAmount,
		DiscountAmount:  snap.DiscountAmount,
		TotalAmount:     snap.TotalAmount,
		Status:          string(snap.Status),
		PaymentStatus:   string(snap.PaymentStatus),
		SpecialRequests: snap.SpecialRequests,
		CreatedAt:       snap.CreatedAt,
		UpdatedAt:       snap.UpdatedAt,
	}
}

// BuildBillView is the bill generated for the built reservation.
func (b *ReservationBuilder) BuildBillView() *queries.BillView {
	bill, err := billing.NewBillForReservation(b.MustBuildDomain(), b.now)
	if err != nil {
		panic(err)
	}
	return queries.NewBillView(bill.Snapshot())
}

func NewRoomView(number string, rate string, maxOccupancy int) *queries.RoomView {
	return &queries.RoomView{
		ID:           uuid.New(),
		Number:       number,
		Type:         "DOUBLE",
		NightlyRate:  decimal.RequireFromString(rate),
		MaxOccupancy: maxOccupancy,
		Floor:        2,
		IsAvailable:  true,
	}
}
