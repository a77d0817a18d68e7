package resale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/resale/date"
)

// ErrInvalidMonth is returned for a month outside 1..12.
var ErrInvalidMonth = errors.New("invalid month")

// Reporter answers report requests by reading a snapshot from a Store.
//
// Each request reads the store exactly once and computes everything from
// that snapshot, so a Reporter is safe for concurrent use.
type Reporter struct {
	store Store
	today func() date.Date
}

// NewReporter returns a Reporter reading from store.
func NewReporter(store Store) *Reporter {
	return &Reporter{store: store, today: date.Today}
}

// Today returns the reporter's current date.
func (r *Reporter) Today() date.Date { return r.today() }

// WithClock returns a copy of r using today as its clock.
func (r *Reporter) WithClock(today func() date.Date) *Reporter {
	c := *r
	c.today = today
	return &c
}

func (r *Reporter) read(ctx context.Context, q Query) ([]Transaction, error) {
	txs, err := r.store.Transactions(ctx, q)
	if err != nil {
		return nil, unavailable(err)
	}
	return txs, nil
}

// Report computes the report for the requested scope.
//
// The whole ledger is read: year fallback and inventory figures need it.
func (r *Reporter) Report(ctx context.Context, requested Scope) (*Report, error) {
	txs, err := r.read(ctx, Query{})
	if err != nil {
		return nil, err
	}
	return NewReport(txs, requested, r.today()), nil
}

// Years returns the years with data, most recent first.
func (r *Reporter) Years(ctx context.Context) ([]int, error) {
	txs, err := r.read(ctx, Query{})
	if err != nil {
		return nil, err
	}
	return AvailableYears(txs), nil
}

// Platforms computes the platform report of a month.
func (r *Reporter) Platforms(ctx context.Context, year int, month time.Month) (*PlatformMonth, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, int(month))
	}
	txs, err := r.read(ctx, Query{Year: year})
	if err != nil {
		return nil, err
	}
	p := PlatformReport(txs, year, month)
	return &p, nil
}

// PlatformYear computes the twelve platform reports of a year.
func (r *Reporter) PlatformYear(ctx context.Context, year int) ([]PlatformMonth, error) {
	txs, err := r.read(ctx, Query{Year: year})
	if err != nil {
		return nil, err
	}
	return PlatformYear(txs, year), nil
}
