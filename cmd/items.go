package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "display the full inventory" }
func (*itemsCmd) Usage() string {
	return `stok items

  Lists every item in the store in the order it was first added.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Items("Inventory", slices.Collect(ledger.All())))
	return subcommands.ExitSuccess
}
