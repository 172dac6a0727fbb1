package reservation

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date normalizes a calendar day to midnight UTC so dates compare by value.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Date(t.Year(), t.Month(), t.Day()), nil
}

// DateIn returns the calendar day t falls on when viewed from loc.
func DateIn(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return Date(local.Year(), local.Month(), local.Day())
}

// StartOfDay returns the instant the calendar day begins in loc.
func StartOfDay(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}

// StayPeriod is the half-open night range [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := Date(checkIn.Year(), checkIn.Month(), checkIn.Day())
	out := Date(checkOut.Year(), checkOut.Month(), checkOut.Day())
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidDateRange
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Overlaps is true when the two ranges share at least one night.
func (p StayPeriod) Overlaps(o StayPeriod) bool {
	return p.checkIn.Before(o.checkOut) && o.checkIn.Before(p.checkOut)
}

func (p StayPeriod) IsZero() bool {
	return p.checkIn.IsZero() && p.checkOut.IsZero()
}

func (p StayPeriod) String() string {
	return "[" + p.checkIn.Format(DateLayout) + "," + p.checkOut.Format(DateLayout) + ")"
}

type GuestCount struct {
	adults   int
	children int
}

func NewGuestCount(adults, children int) (GuestCount, error) {
	if adults < 1 {
		return GuestCount{}, ErrNoAdults
	}
	if children < 0 {
		return GuestCount{}, ErrNegativeChildren
	}
	return GuestCount{adults: adults, children: children}, nil
}

func (g GuestCount) Adults() int   { return g.adults }
func (g GuestCount) Children() int { return g.children }
func (g GuestCount) Total() int    { return g.adults + g.children }

const MaxSpecialRequestsLength = 1000

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(s string) (SpecialRequests, error) {
	trimmed := strings.TrimSpace(s)
	if len([]rune(trimmed)) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrSpecialRequestsTooLong
	}
	return SpecialRequests{value: trimmed}, nil
}

func (s SpecialRequests) String() string {
	return s.value
}

func (s SpecialRequests) IsEmpty() bool {
	return s.value == ""
}
