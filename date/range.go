package date

import (
	"fmt"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange return the standard period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// YearRange returns the range covering the whole calendar year.
func YearRange(year int) Range {
	return NewRange(New(year, time.January, 1), Yearly)
}

// Contains return true date is included in the range (boundaries included).
// The zero Date is never contained.
func (r Range) Contains(date Date) bool {
	if date.IsZero() {
		return false
	}
	return !date.Before(r.From) && !date.After(r.To)
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
