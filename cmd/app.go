// Package cmd implements the CLI application to manage the store stock.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "stock")
	c.Register(&restockCmd{}, "stock")
	c.Register(&updateCmd{}, "stock")
	c.Register(&adjustCmd{}, "stock")
	c.Register(&undoCmd{}, "stock")

	c.Register(&orderCmd{}, "orders")
	c.Register(&processCmd{}, "orders")

	c.Register(&itemsCmd{}, "reports")
	c.Register(&lowCmd{}, "reports")
	c.Register(&overCmd{}, "reports")
	c.Register(&expiringCmd{}, "reports")
	c.Register(&mostStockedCmd{}, "reports")
	c.Register(&sectionsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&contributionsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store", ".stockroom", "Path to the store directory holding the stock files")
var lowThreshold = flag.Int("low", stockroom.DefaultThresholds.Low, "Quantity below which an item is low on stock")
var overThreshold = flag.Int("over", stockroom.DefaultThresholds.Over, "Quantity above which an item is overstocked")

func store() stockroom.Store {
	return stockroom.Store{
		Dir:        *storeDir,
		Thresholds: stockroom.Thresholds{Low: *lowThreshold, Over: *overThreshold},
	}
}

// LoadLedger is the central function to load the store state.
func LoadLedger() (*stockroom.Ledger, error) { return store().Load() }

// SaveLedger writes the store state back to the store directory.
func SaveLedger(l *stockroom.Ledger) error { return store().Save(l) }

// managersFile lists the recognized manager names, one per line.
const managersFile = "managers.txt"

// ValidateManager checks a manager name against the closed list of
// recognized managers in the store directory. When no list exists yet, any
// non-empty name is accepted with a warning, so a fresh store stays usable.
func ValidateManager(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("a manager name is required (-manager)")
	}
	f, err := os.Open(filepath.Join(*storeDir, managersFile))
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, no %s in %s, accepting manager %q", managersFile, *storeDir, name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot read manager list: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), strings.TrimSpace(name)) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read manager list: %w", err)
	}
	return fmt.Errorf("manager %q is not in the recognized manager list", name)
}
