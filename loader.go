package resale

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is a Store reading JSONL ledger files.
//
// Path is either a single ledger file or a directory, in which case every
// .jsonl file below it is part of the ledger. Files are read on every call so
// that edits are picked up without restarting.
type FileStore struct {
	Path string
}

// Transactions implements Store.
func (s FileStore) Transactions(ctx context.Context, q Query) ([]Transaction, error) {
	paths, err := findLedgerPaths(s.Path)
	if err != nil {
		return nil, unavailable(err)
	}
	var txs []Transaction
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		l, err := LoadLedger(p)
		if err != nil {
			return nil, unavailable(err)
		}
		txs = append(txs, l.Select(q)...)
	}
	return txs, nil
}

// Ledgers loads every ledger file of the store.
func (s FileStore) Ledgers() ([]*Ledger, error) {
	paths, err := findLedgerPaths(s.Path)
	if err != nil {
		return nil, err
	}
	var ledgers []*Ledger
	for _, p := range paths {
		l, err := LoadLedger(p)
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, nil
}

// LoadLedger opens and decodes a ledger file. The ledger is named after the
// file, without its extension.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	ledger.name = strings.TrimSuffix(filepath.Base(path), ".jsonl")
	ledger.path = path
	return ledger, nil
}

// SaveLedger writes the ledger to path, replacing the previous content.
func SaveLedger(path string, ledger *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	// write to a sibling file first, so that a failure never truncates the ledger.
	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", tmp, err)
	}
	if err := EncodeLedger(file, ledger); err != nil {
		return errors.Join(err, file.Close(), os.Remove(tmp))
	}
	if err := file.Close(); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	return os.Rename(tmp, path)
}

// findLedgerPaths returns path itself when it is a file, or the .jsonl files
// found below it when it is a directory.
func findLedgerPaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not find ledger %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var ledgers []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {
			ledgers = append(ledgers, p)
		}
		return nil
	})
	return ledgers, err
}
