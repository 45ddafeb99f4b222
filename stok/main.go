package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockroom/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// No-op unless the shell is asking for completions.
	completion().Complete("stok")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI surface for shell completion.
func completion() *complete.Command {
	managed := map[string]complete.Predictor{
		"name":    predict.Nothing,
		"qty":     predict.Nothing,
		"section": predict.Nothing,
		"manager": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store": predict.Dirs("*"),
			"low":   predict.Nothing,
			"over":  predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add":           {Flags: managed},
			"restock":       {Flags: managed},
			"update":        {Flags: managed},
			"adjust":        {Flags: managed},
			"undo":          {},
			"order":         {},
			"process":       {},
			"items":         {},
			"low":           {},
			"over":          {},
			"expiring":      {},
			"most-stocked":  {},
			"sections":      {},
			"summary":       {Flags: managed},
			"contributions": {},
			"topic":         {},
		},
	}
}
