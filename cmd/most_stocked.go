package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type mostStockedCmd struct{}

func (*mostStockedCmd) Name() string     { return "most-stocked" }
func (*mostStockedCmd) Synopsis() string { return "show the item with the most units on hand" }
func (*mostStockedCmd) Usage() string {
	return `stok most-stocked

  Shows the item holding the maximum quantity. Ties resolve to the item
  added first; an empty store yields "none".
`
}

func (c *mostStockedCmd) SetFlags(f *flag.FlagSet) {}

func (c *mostStockedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	name, qty := ledger.MostStocked()
	printMarkdown(renderer.MostStocked(name, qty))
	return subcommands.ExitSuccess
}
