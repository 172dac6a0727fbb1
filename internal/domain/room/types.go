package room

type Type string

const (
	TypeSingle Type = "SINGLE"
	TypeDouble Type = "DOUBLE"
	TypeDeluxe Type = "DELUXE"
	TypeSuite  Type = "SUITE"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeDeluxe, TypeSuite:
		return true
	default:
		return false
	}
}

// TypesBySize lists the room types from the smallest to the most spacious.
func TypesBySize() []Type {
	return []Type{TypeSingle, TypeDouble, TypeDeluxe, TypeSuite}
}

// rank orders types from the smallest to the most spacious.
func (t Type) rank() int {
	switch t {
	case TypeSingle:
		return 0
	case TypeDouble:
		return 1
	case TypeDeluxe:
		return 2
	case TypeSuite:
		return 3
	default:
		return 4
	}
}

type SortKey string

const (
	SortByPrice  SortKey = "price"
	SortByType   SortKey = "type"
	SortByNumber SortKey = "number"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByPrice, SortByType, SortByNumber:
		return true
	default:
		return false
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}
