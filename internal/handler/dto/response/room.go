package response

import (
	"hotel-backoffice/internal/pkg/money"
	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   string    `json:"roomNumber"`
	RoomType     string    `json:"roomType"`
	NightlyRate  string    `json:"nightlyRate"`
	MaxOccupancy int       `json:"maxOccupancy"`
	Floor        int       `json:"floor"`
	IsAvailable  bool      `json:"isAvailable"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:           v.ID,
		RoomNumber:   v.Number,
		RoomType:     v.Type,
		NightlyRate:  money.String(v.NightlyRate),
		MaxOccupancy: v.MaxOccupancy,
		Floor:        v.Floor,
		IsAvailable:  v.IsAvailable,
	}
}
