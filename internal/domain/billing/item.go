package billing

import (
	"fmt"
	"strings"

	"hotel-backoffice/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxItemDescriptionLength = 255

// Item is a bill line. TotalPrice is always Quantity * UnitPrice.
type Item struct {
	ID          uuid.UUID
	Description string
	Category    Category
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

func NewItem(description string, category Category, quantity int, unitPrice decimal.Decimal) (Item, error) {
	description = strings.TrimSpace(description)
	switch {
	case description == "":
		return Item{}, ErrEmptyItemDescription
	case len([]rune(description)) > MaxItemDescriptionLength:
		return Item{}, ErrItemDescriptionTooLong
	case !category.IsValid():
		return Item{}, ErrInvalidItemCategory
	case quantity < 1:
		return Item{}, ErrInvalidItemQuantity
	case unitPrice.IsNegative():
		return Item{}, ErrNegativeUnitPrice
	}

	unitPrice = money.Round(unitPrice)
	return Item{
		ID:          uuid.New(),
		Description: description,
		Category:    category,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  money.Round(unitPrice.Mul(decimal.NewFromInt(int64(quantity)))),
	}, nil
}

// NewRoomCharge is the line generated from a reservation: one unit per night.
func NewRoomCharge(nights int, nightlyRate decimal.Decimal) (Item, error) {
	return NewItem(fmt.Sprintf("Room Charge - %d Nights", nights), CategoryRoom, nights, nightlyRate)
}
