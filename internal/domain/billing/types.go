package billing

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPartial Status = "PARTIAL"
	StatusPaid    Status = "PAID"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPartial, StatusPaid:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryRoom    Category = "ROOM"
	CategoryFood    Category = "FOOD"
	CategoryService Category = "SERVICE"
	CategoryMinibar Category = "MINIBAR"
	CategoryLaundry Category = "LAUNDRY"
	CategoryOther   Category = "OTHER"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryRoom, CategoryFood, CategoryService, CategoryMinibar, CategoryLaundry, CategoryOther:
		return true
	default:
		return false
	}
}
