package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type contributionsCmd struct{}

func (*contributionsCmd) Name() string     { return "contributions" }
func (*contributionsCmd) Synopsis() string { return "display per-manager contribution totals" }
func (*contributionsCmd) Usage() string {
	return `stok contributions

  Shows the cumulative quantity added by each manager.
`
}

func (c *contributionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *contributionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Contributions(ledger.Contributions()))
	return subcommands.ExitSuccess
}
