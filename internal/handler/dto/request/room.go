package request

import (
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// RoomSearchQuery is bound from the availability search query string.
type RoomSearchQuery struct {
	CheckIn      string  `form:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut     string  `form:"checkOut" binding:"required,datetime=2006-01-02"`
	Adults       *int    `form:"adults"`
	Children     int     `form:"children"`
	RoomType     *string `form:"roomType"`
	MinPrice     *string `form:"minPrice"`
	MaxPrice     *string `form:"maxPrice"`
	MinOccupancy *int    `form:"minOccupancy"`
	SortBy       string  `form:"sortBy"`
	SortOrder    string  `form:"sortOrder"`
	Page         int     `form:"page"`
	Size         int     `form:"size"`
}

func (q RoomSearchQuery) ToParams() (room.SearchParams, error) {
	in, err := parseDate(q.CheckIn)
	if err != nil {
		return room.SearchParams{}, err
	}
	out, err := parseDate(q.CheckOut)
	if err != nil {
		return room.SearchParams{}, err
	}
	minPrice, err := parseOptionalMoney(q.MinPrice)
	if err != nil {
		return room.SearchParams{}, err
	}
	maxPrice, err := parseOptionalMoney(q.MaxPrice)
	if err != nil {
		return room.SearchParams{}, err
	}

	adults := 1
	if q.Adults != nil {
		adults = *q.Adults
	}
	p := room.SearchParams{
		CheckIn:      in,
		CheckOut:     out,
		Adults:       adults,
		Children:     q.Children,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		MinOccupancy: q.MinOccupancy,
		SortBy:       room.SortKey(q.SortBy),
		SortOrder:    room.SortOrder(q.SortOrder),
		Page:         q.Page,
		Size:         q.Size,
	}
	if q.RoomType != nil && *q.RoomType != "" {
		t := room.Type(*q.RoomType)
		p.Type = &t
	}
	return p, nil
}

func parseOptionalMoney(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := money.Parse(*s)
	if err != nil {
		return nil, ErrInvalidMoney
	}
	return &d, nil
}
