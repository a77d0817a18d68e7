package resale

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/resale/date"
)

// ErrStoreUnavailable is returned when the ledger store cannot be read.
var ErrStoreUnavailable = errors.New("ledger store unavailable")

// Store gives read access to the ledger, wherever it is kept.
//
// Implementations must be safe for concurrent use; the analytics never write.
type Store interface {
	// Transactions returns a snapshot of the transactions matching q.
	Transactions(ctx context.Context, q Query) ([]Transaction, error)
}

// Query restricts the transactions read from a store.
//
// The zero Query matches every transaction.
type Query struct {
	// Year, when non zero, keeps only the transactions bought or sold that year.
	Year int
}

// Match reports whether tx satisfies q.
func (q Query) Match(tx Transaction) bool {
	if q.Year == 0 {
		return true
	}
	r := date.YearRange(q.Year)
	return r.Contains(tx.PurchaseDate) || r.Contains(tx.SaleDate)
}

// unavailable wraps a store failure into ErrStoreUnavailable. A canceled
// context is returned as is: the caller gave up, the store did not fail.
func unavailable(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}

// StoreError is how a Store reports a failed read made under ctx. Once the
// caller canceled ctx, the cancellation is returned whatever the driver said;
// any other failure is wrapped into ErrStoreUnavailable.
func StoreError(ctx context.Context, err error) error {
	if err != nil && errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return unavailable(err)
}
