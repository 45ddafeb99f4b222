package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type lowCmd struct{}

func (*lowCmd) Name() string     { return "low" }
func (*lowCmd) Synopsis() string { return "list items low on stock" }
func (*lowCmd) Usage() string {
	return `stok low

  Lists the items whose quantity is below the low-stock threshold.
`
}

func (c *lowCmd) SetFlags(f *flag.FlagSet) {}

func (c *lowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LowStock(ledger.LowStock(), ledger.Thresholds().Low))
	return subcommands.ExitSuccess
}
