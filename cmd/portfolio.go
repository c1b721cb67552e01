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

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show your holdings, cash and total value" }
func (*portfolioCmd) Usage() string {
	return `bourse portfolio

  Shows your holdings valued at current market prices, your cash balance,
  the per-trade fee, and the total portfolio value.
`
}
func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	username, err := currentUser()
	if err != nil {
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
	portfolio, err := portfolioLoader(store)(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Portfolio(username, portfolio, market))
	return subcommands.ExitSuccess
}

type feeCmd struct{}

func (*feeCmd) Name() string     { return "fee" }
func (*feeCmd) Synopsis() string { return "show the flat per-trade transaction fee" }
func (*feeCmd) Usage() string {
	return `bourse fee

  Shows the flat fee charged on every buy and every sell.
`
}
func (*feeCmd) SetFlags(f *flag.FlagSet) {}

func (c *feeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	username, err := currentUser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	portfolio, err := portfolioLoader(store)(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Transaction fee per trade: %s\n", bourse.M(portfolio.Fee()))
	return subcommands.ExitSuccess
}
