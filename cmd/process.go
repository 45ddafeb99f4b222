package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type processCmd struct{}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "fulfill all pending orders in arrival order" }
func (*processCmd) Usage() string {
	return `stok process

  Drains the pending order queue, fulfilling one order at a time in arrival
  order. Fulfillment is all-or-nothing per order; a failed order is reported
  and skipped, never aborting the rest of the queue. Perishable stock is
  consumed from the earliest-expiring batch first.
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	results := ledger.ProcessOrders()

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OrderResults(results))
	return subcommands.ExitSuccess
}
