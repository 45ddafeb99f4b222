package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type orderCmd struct{}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "enqueue a customer order" }
func (*orderCmd) Usage() string {
	return `stok order <quantity> <item name words...>

  Appends a raw order to the pending queue. Orders are fulfilled later, in
  arrival order, by 'process'.

Usage Examples:
$ stok order 10 apples
`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {}

func (c *orderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: an order is \"<quantity> <item name words...>\".")
		return subcommands.ExitUsageError
	}
	text := strings.Join(f.Args(), " ")

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Enqueue(text)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Queued order %q (%d pending)\n", text, len(ledger.PendingOrders()))
	return subcommands.ExitSuccess
}
