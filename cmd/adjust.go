package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type adjustCmd struct {
	name    string
	op      string
	value   int
	manager string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "apply an operator-based stock adjustment" }
func (*adjustCmd) Usage() string {
	return `stok adjust -name <name> -op <+|-> -value <value> -manager <manager>

  Applies "quantity <op> value" to a non-perishable item. The value must not
  be negative; subtracting more than is on hand fails and changes nothing.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.StringVar(&c.op, "op", "+", "Operator to apply, + or -")
	f.IntVar(&c.value, "value", 0, "Quantity in units, not negative")
	f.StringVar(&c.manager, "manager", "", "Manager recording the adjustment (required)")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := ledger.AdjustStock(c.name, c.op, c.value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.op == "+" {
		ledger.RecordContribution(c.manager, c.value)
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	item, _ := ledger.Get(c.name)
	fmt.Printf("Adjusted %q %s %d (now %s on hand)\n", item.Name(), c.op, c.value, item.Quantity())
	return subcommands.ExitSuccess
}
