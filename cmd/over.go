package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type overCmd struct{}

func (*overCmd) Name() string     { return "over" }
func (*overCmd) Synopsis() string { return "list overstocked items" }
func (*overCmd) Usage() string {
	return `stok over

  Lists the items whose quantity is above the over-stock threshold.
`
}

func (c *overCmd) SetFlags(f *flag.FlagSet) {}

func (c *overCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OverStock(ledger.OverStock(), ledger.Thresholds().Over))
	return subcommands.ExitSuccess
}
