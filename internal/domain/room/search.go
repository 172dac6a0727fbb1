package room

import (
	"sort"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const DefaultPageSize = 10

var (
	ErrInvalidSortKey    = errs.InvalidRequest("sortBy must be one of price, type, number")
	ErrInvalidSortOrder  = errs.InvalidRequest("sortOrder must be asc or desc")
	ErrInvalidPriceRange = errs.InvalidRequest("minPrice cannot exceed maxPrice")
	ErrNegativePrice     = errs.InvalidRequest("price filters cannot be negative")
	ErrInvalidPage       = errs.InvalidRequest("page must be zero or greater")
	ErrInvalidPageSize   = errs.InvalidRequest("size must be positive")
)

type SearchParams struct {
	CheckIn      time.Time
	CheckOut     time.Time
	Adults       int
	Children     int
	Type         *Type
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MinOccupancy *int
	SortBy       SortKey
	SortOrder    SortOrder
	Page         int
	Size         int
}

// SearchCriteria is a validated availability search.
type SearchCriteria struct {
	Period       reservation.StayPeriod
	Guests       reservation.GuestCount
	Type         *Type
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	MinOccupancy *int
	SortBy       SortKey
	SortOrder    SortOrder
	Page         int
	Size         int
}

func NewSearchCriteria(p SearchParams, maxPageSize int) (SearchCriteria, error) {
	period, err := reservation.NewStayPeriod(p.CheckIn, p.CheckOut)
	if err != nil {
		return SearchCriteria{}, err
	}
	guests, err := reservation.NewGuestCount(p.Adults, p.Children)
	if err != nil {
		return SearchCriteria{}, err
	}
	if p.Type != nil && !p.Type.IsValid() {
		return SearchCriteria{}, ErrInvalidRoomType
	}
	if (p.MinPrice != nil && p.MinPrice.IsNegative()) || (p.MaxPrice != nil && p.MaxPrice.IsNegative()) {
		return SearchCriteria{}, ErrNegativePrice
	}
	if p.MinPrice != nil && p.MaxPrice != nil && p.MinPrice.GreaterThan(*p.MaxPrice) {
		return SearchCriteria{}, ErrInvalidPriceRange
	}

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = SortByPrice
	}
	if !sortBy.IsValid() {
		return SearchCriteria{}, ErrInvalidSortKey
	}
	order := p.SortOrder
	if order == "" {
		order = SortAsc
	}
	if !order.IsValid() {
		return SearchCriteria{}, ErrInvalidSortOrder
	}

	if p.Page < 0 {
		return SearchCriteria{}, ErrInvalidPage
	}
	size := p.Size
	switch {
	case size < 0:
		return SearchCriteria{}, ErrInvalidPageSize
	case size == 0:
		size = DefaultPageSize
	case maxPageSize > 0 && size > maxPageSize:
		size = maxPageSize
	}

	return SearchCriteria{
		Period:       period,
		Guests:       guests,
		Type:         p.Type,
		MinPrice:     p.MinPrice,
		MaxPrice:     p.MaxPrice,
		MinOccupancy: p.MinOccupancy,
		SortBy:       sortBy,
		SortOrder:    order,
		Page:         p.Page,
		Size:         size,
	}, nil
}

func (c SearchCriteria) Offset() int {
	return c.Page * c.Size
}

type PredicateKind int

const (
	PredicateAvailableFlag PredicateKind = iota
	PredicateCapacity
	PredicateType
	PredicateMinPrice
	PredicateMaxPrice
	PredicateFreeFor
)

// Predicate is one AND-ed condition of a room search. Only the field that
// matches Kind is meaningful.
type Predicate struct {
	Kind      PredicateKind
	Type      Type
	Price     decimal.Decimal
	Occupancy int
	Period    reservation.StayPeriod
}

// Predicates lists the conditions a room has to satisfy, cheapest first.
func (c SearchCriteria) Predicates() []Predicate {
	capacity := c.Guests.Total()
	if c.MinOccupancy != nil && *c.MinOccupancy > capacity {
		capacity = *c.MinOccupancy
	}

	preds := []Predicate{
		{Kind: PredicateAvailableFlag},
		{Kind: PredicateCapacity, Occupancy: capacity},
	}
	if c.Type != nil {
		preds = append(preds, Predicate{Kind: PredicateType, Type: *c.Type})
	}
	if c.MinPrice != nil {
		preds = append(preds, Predicate{Kind: PredicateMinPrice, Price: *c.MinPrice})
	}
	if c.MaxPrice != nil {
		preds = append(preds, Predicate{Kind: PredicateMaxPrice, Price: *c.MaxPrice})
	}
	return append(preds, Predicate{Kind: PredicateFreeFor, Period: c.Period})
}

// Matches evaluates p in memory. occupied holds the room's own occupancies.
func (p Predicate) Matches(r *Room, occupied []reservation.Occupancy) bool {
	switch p.Kind {
	case PredicateAvailableFlag:
		return r.IsAvailable()
	case PredicateCapacity:
		return r.MaxOccupancy() >= p.Occupancy
	case PredicateType:
		return r.Type() == p.Type
	case PredicateMinPrice:
		return r.NightlyRate().GreaterThanOrEqual(p.Price)
	case PredicateMaxPrice:
		return r.NightlyRate().LessThanOrEqual(p.Price)
	case PredicateFreeFor:
		return !reservation.ConflictsWith(p.Period, nil, occupied)
	default:
		return false
	}
}

func MatchesAll(preds []Predicate, r *Room, occupied []reservation.Occupancy) bool {
	for _, p := range preds {
		if !p.Matches(r, occupied) {
			return false
		}
	}
	return true
}

// SortRooms orders rooms by key and order. Ties always fall back to ascending id.
func SortRooms(rooms []*Room, key SortKey, order SortOrder) {
	sort.SliceStable(rooms, func(i, j int) bool {
		c := compare(rooms[i], rooms[j], key)
		if order == SortDesc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return rooms[i].ID().String() < rooms[j].ID().String()
	})
}

func compare(a, b *Room, key SortKey) int {
	switch key {
	case SortByType:
		return a.Type().rank() - b.Type().rank()
	case SortByNumber:
		switch {
		case a.Number() < b.Number():
			return -1
		case a.Number() > b.Number():
			return 1
		}
		return 0
	default:
		return a.NightlyRate().Cmp(b.NightlyRate())
	}
}
