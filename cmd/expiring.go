package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockroom/date"
	"github.com/etnz/stockroom/renderer"
	"github.com/google/subcommands"
)

type expiringCmd struct {
	date string
}

func (*expiringCmd) Name() string     { return "expiring" }
func (*expiringCmd) Synopsis() string { return "list batches expiring within a week" }
func (*expiringCmd) Usage() string {
	return `stok expiring [-d <date>]

  Lists every batch of every perishable item whose expiration date falls
  within seven days of the given date, boundaries included. The report is
  per-batch: one item can appear several times.
`
}

func (c *expiringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the report")
}

func (c *expiringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Expiring(on, ledger.Expiring(on)))
	return subcommands.ExitSuccess
}
