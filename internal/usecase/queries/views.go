package queries

import (
	"hotel-backoffice/internal/domain/billing"
	"hotel-backoffice/internal/domain/room"

	"github.com/jinzhu/copier"
)

func NewRoomView(rm *room.Room) *RoomView {
	return &RoomView{
		ID:           rm.ID(),
		Number:       rm.Number(),
		Type:         string(rm.Type()),
		NightlyRate:  rm.NightlyRate(),
		MaxOccupancy: rm.MaxOccupancy(),
		Floor:        rm.Floor(),
		IsAvailable:  rm.IsAvailable(),
	}
}

func NewBillView(snap billing.Snapshot) *BillView {
	v := &BillView{}
	_ = copier.Copy(v, &snap)

	v.PaymentStatus = string(snap.Status)
	if snap.PaymentMethod != nil {
		m := string(*snap.PaymentMethod)
		v.PaymentMethod = &m
	}
	v.Items = make([]BillItemView, len(snap.Items))
	for i, it := range snap.Items {
		v.Items[i] = BillItemView{
			ID:          it.ID,
			Description: it.Description,
			Category:    string(it.Category),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		}
	}
	return v
}
