package stockroom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names under a store directory.
const (
	inventoryFile     = "inventory.csv"
	journalFile       = "journal.jsonl"
	ordersFile        = "orders.txt"
	contributionsFile = "contributions.csv"
)

// Store reads and writes the whole ledger state under a single directory:
// the inventory CSV, the mutation journal, the pending orders and the manager
// contributions.
type Store struct {
	Dir        string
	Thresholds Thresholds
}

func (s Store) path(name string) string { return filepath.Join(s.Dir, name) }

// Load reads the ledger state from the store directory. A missing file means
// empty state, not an error; any other I/O failure propagates.
func (s Store) Load() (*Ledger, error) {
	l, err := s.loadInventory()
	if err != nil {
		return nil, err
	}
	if err := s.loadJournal(l); err != nil {
		return nil, err
	}
	if err := s.loadOrders(l); err != nil {
		return nil, err
	}
	if err := s.loadContributions(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s Store) loadInventory() (*Ledger, error) {
	f, err := os.Open(s.path(inventoryFile))
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(s.Thresholds), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open inventory: %w", err)
	}
	defer f.Close()
	return DecodeInventory(f, s.Thresholds)
}

func (s Store) loadJournal(l *Ledger) error {
	f, err := os.Open(s.path(journalFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open journal: %w", err)
	}
	defer f.Close()
	entries, err := DecodeJournal(f)
	if err != nil {
		return err
	}
	l.restoreJournal(entries)
	return nil
}

func (s Store) loadOrders(l *Ledger) error {
	f, err := os.Open(s.path(ordersFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open pending orders: %w", err)
	}
	defer f.Close()
	return DecodeOrders(f, l)
}

func (s Store) loadContributions(l *Ledger) error {
	f, err := os.Open(s.path(contributionsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open contributions: %w", err)
	}
	defer f.Close()
	return DecodeContributions(f, l)
}

// Save writes the whole ledger state back to the store directory, creating
// it if needed. Writes are not transactional: a failure mid-way leaves the
// files already written in place.
func (s Store) Save(l *Ledger) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("cannot create store directory %q: %w", s.Dir, err)
	}
	writers := []struct {
		file   string
		encode func(f *os.File) error
	}{
		{inventoryFile, func(f *os.File) error { return EncodeInventory(f, l) }},
		{journalFile, func(f *os.File) error { return EncodeJournal(f, l) }},
		{ordersFile, func(f *os.File) error { return EncodeOrders(f, l) }},
		{contributionsFile, func(f *os.File) error { return EncodeContributions(f, l) }},
	}
	for _, w := range writers {
		f, err := os.Create(s.path(w.file))
		if err != nil {
			return fmt.Errorf("cannot create %q: %w", w.file, err)
		}
		if err := w.encode(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("cannot close %q: %w", w.file, err)
		}
	}
	return nil
}
