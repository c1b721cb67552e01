package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bourse"
	"bourse/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "plot the price history of a stock" }
func (*historyCmd) Usage() string {
	return `bourse history <symbol>

  Plots the whole price history of a stock, from its listing price to the
  current tick. Items have no history.
`
}
func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one stock symbol.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	if _, err := currentUser(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := loadMarket(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market: %v\n", err)
		return subcommands.ExitFailure
	}

	inst, ok := market.Stock(symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: stock %q: %v\n", symbol, bourse.ErrInstrumentNotFound)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.History(inst))
	return subcommands.ExitSuccess
}
