package resale

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Ledger represents the list of transactions of a resale inventory.
//
// In a Ledger transactions are ordered by purchase date, rows without any
// date coming last.
type Ledger struct {
	name         string
	path         string // file the ledger was loaded from
	transactions []Transaction
}

// NewLedger creates a ledger holding txs.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Name returns the ledger name, the file name of the ledger without extension.
func (l *Ledger) Name() string { return l.name }

// Path returns the file the ledger was loaded from, if any.
func (l *Ledger) Path() string { return l.path }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append appends transactions to this ledger and keeps it ordered.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// All iterates over the transactions in ledger order.
func (l *Ledger) All() iter.Seq[Transaction] { return slices.Values(l.transactions) }

// Select returns a copy of the transactions matching q.
func (l *Ledger) Select(q Query) []Transaction {
	txs := make([]Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		if q.Match(tx) {
			txs = append(txs, tx)
		}
	}
	return txs
}

// Transactions implements Store over an in-memory ledger.
func (l *Ledger) Transactions(ctx context.Context, q Query) ([]Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.Select(q), nil
}

// AssignIDs gives a fresh random id to every transaction without one, and
// returns how many were assigned.
func (l *Ledger) AssignIDs() int {
	n := 0
	for i := range l.transactions {
		if l.transactions[i].ID == "" {
			l.transactions[i].ID = uuid.NewString()
			n++
		}
	}
	return n
}

// Validate checks every transaction, and the uniqueness of ids.
// It returns all the problems found joined together.
func (l *Ledger) Validate() error {
	var errs error
	seen := make(map[string]int)
	for i, tx := range l.transactions {
		if err := tx.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("transaction #%d %q: %w", i+1, tx.ID, err))
		}
		if tx.ID == "" {
			continue
		}
		if j, exists := seen[tx.ID]; exists {
			errs = errors.Join(errs, fmt.Errorf("transaction #%d: id %q already used by transaction #%d", i+1, tx.ID, j))
		}
		seen[tx.ID] = i + 1
	}
	return errs
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		a, b := l.transactions[i].when(), l.transactions[j].when()
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.Before(b)
	})
}
