package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

type addCmd struct {
	name    string
	qty     int
	section string
	manager string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new non-perishable item to the store" }
func (*addCmd) Usage() string {
	return `stok add -name <name> -qty <quantity> -section <section> -manager <manager>

  Adds a new non-perishable item, counted with a single flat quantity.
  The name must not already exist in the store (case-insensitive).
  Perishable items are created by their first 'restock'.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name, unique in the store (required)")
	f.IntVar(&c.qty, "qty", 0, "Initial quantity in units")
	f.StringVar(&c.section, "section", "", "Store section, e.g. \"Dairy\"")
	f.StringVar(&c.manager, "manager", "", "Manager recording the addition (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	if err := ValidateManager(c.manager); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	item, err := stockroom.NewPlain(c.name, c.section, c.qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := ledger.Add(item); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.RecordContribution(c.manager, c.qty)

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q (%d units) to section %q\n", c.name, c.qty, c.section)
	return subcommands.ExitSuccess
}
