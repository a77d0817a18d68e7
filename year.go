package resale

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/resale/date"
	"github.com/etnz/resale/internal/logging"
	"github.com/sirupsen/logrus"
)

// AllYearsKeyword is the year parameter value selecting the whole history.
const AllYearsKeyword = "all"

// Scope is the time span a report is about: one calendar year, or the whole
// ledger history.
type Scope struct {
	Year int
	All  bool
}

// AllTime is the scope covering the whole history.
var AllTime = Scope{All: true}

// InYear returns the scope of a calendar year.
func InYear(year int) Scope { return Scope{Year: year} }

// Contains reports whether d falls in the scope. An absent date never does.
func (s Scope) Contains(d date.Date) bool {
	if d.IsZero() {
		return false
	}
	return s.All || d.Year() == s.Year
}

func (s Scope) String() string {
	if s.All {
		return AllYearsKeyword
	}
	return strconv.Itoa(s.Year)
}

// MarshalJSON writes the year as a number, or "all".
func (s Scope) MarshalJSON() ([]byte, error) {
	if s.All {
		return json.Marshal(AllYearsKeyword)
	}
	return json.Marshal(s.Year)
}

// AvailableYears returns the distinct years found in either date column of
// the ledger, most recent first.
func AvailableYears(txs []Transaction) []int {
	years := make([]int, 0)
	for _, tx := range txs {
		for _, d := range []date.Date{tx.PurchaseDate, tx.SaleDate} {
			if !d.IsZero() && !slices.Contains(years, d.Year()) {
				years = append(years, d.Year())
			}
		}
	}
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// ResolveScope returns the effective scope of a report.
//
// A requested year without any data falls back to the most recent year that
// has some, unless there is no data at all. The whole history is never
// changed.
func ResolveScope(requested Scope, available []int) Scope {
	if requested.All || len(available) == 0 || slices.Contains(available, requested.Year) {
		return requested
	}
	return InYear(slices.Max(available))
}

// ParseScope reads a year parameter: empty means the current year, "all" the
// whole history. A malformed value is not an error: it is logged and the
// current year is used instead.
func ParseScope(s string, today date.Date) Scope {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return InYear(today.Year())
	case strings.EqualFold(s, AllYearsKeyword):
		return AllTime
	}
	year, err := strconv.Atoi(s)
	if err != nil || year <= 0 {
		logging.Logger.WithFields(logrus.Fields{
			"year":     s,
			"fallback": today.Year(),
		}).Warn("malformed year parameter, using the current year")
		return InYear(today.Year())
	}
	return InYear(year)
}
