package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type sectionsCmd struct{}

func (*sectionsCmd) Name() string     { return "sections" }
func (*sectionsCmd) Synopsis() string { return "display items grouped by store section" }
func (*sectionsCmd) Usage() string {
	return `stok sections

  Partitions the items by store section and shows each group with its item
  count and total units.
`
}

func (c *sectionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *sectionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Sections(ledger.BySection()))
	return subcommands.ExitSuccess
}
