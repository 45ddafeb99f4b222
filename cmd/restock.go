package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/date"
	"github.com/google/subcommands"
)

type restockCmd struct {
	name    string
	qty     int
	expires string
	section string
	manager string
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add a dated batch to a perishable item" }
func (*restockCmd) Usage() string {
	return `stok restock -name <name> -qty <quantity> -expires <date> [-section <section>] -manager <manager>

  Merges a (quantity, expiration date) batch into the perishable item with
  this name, creating the item when it does not exist yet. Restocking an
  existing expiration date merges the quantities into the same batch.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.IntVar(&c.qty, "qty", 0, "Quantity in units for this batch")
	f.StringVar(&c.expires, "expires", "", "Expiration date of the batch, e.g. 2025-05-10 (required)")
	f.StringVar(&c.section, "section", "", "Store section, used when the item is created")
	f.StringVar(&c.manager, "manager", "", "Manager recording the restock (required)")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.expires == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -expires are required.")
		return subcommands.ExitUsageError
	}
	if err := ValidateManager(c.manager); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	expires, err := date.Parse(c.expires)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing expiration date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.Restock(c.name, c.qty, expires, c.section); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.RecordContribution(c.manager, c.qty)

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	item, _ := ledger.Get(c.name)
	fmt.Printf("Restocked %q with %d units expiring %s (now %s on hand)\n", item.Name(), c.qty, expires, item.Quantity())
	return subcommands.ExitSuccess
}
