package date

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Before reports whether m is strictly before x.
func (m YearMonth) Before(x YearMonth) bool {
	if m.Year != x.Year {
		return m.Year < x.Year
	}
	return m.Month < x.Month
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or after x.
// It is suitable for slices.SortFunc.
func (m YearMonth) Compare(x YearMonth) int {
	switch {
	case m.Before(x):
		return -1
	case x.Before(m):
		return 1
	default:
		return 0
	}
}

// Label returns a short human label like "Jan 2024".
func (m YearMonth) Label() string {
	return fmt.Sprintf("%s %d", m.Month.String()[:3], m.Year)
}

// String returns the ISO identifier of the month, like "2024-01".
func (m YearMonth) String() string { return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)) }
