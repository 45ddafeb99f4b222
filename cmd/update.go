package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCmd struct {
	name    string
	delta   int
	manager string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "add a signed delta to a non-perishable item's stock" }
func (*updateCmd) Usage() string {
	return `stok update -name <name> -delta <delta> -manager <manager>

  Adds delta (possibly negative) to the flat quantity of a non-perishable
  item. Subtracting more than is on hand fails and changes nothing.
  Perishable stock is adjusted solely by batch operations; use 'restock'.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.IntVar(&c.delta, "delta", 0, "Signed quantity change in units")
	f.StringVar(&c.manager, "manager", "", "Manager recording the update (required)")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := ledger.UpdateStock(c.name, c.delta); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.delta > 0 {
		ledger.RecordContribution(c.manager, c.delta)
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	item, _ := ledger.Get(c.name)
	fmt.Printf("Updated %q by %+d (now %s on hand)\n", item.Name(), c.delta, item.Quantity())
	return subcommands.ExitSuccess
}
