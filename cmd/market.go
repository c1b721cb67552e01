package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"bourse"
	"bourse/renderer"
	"github.com/google/subcommands"
)

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "show every instrument on the market" }
func (*marketCmd) Usage() string {
	return `bourse market

  Lists all stocks and items with their current price and the inventory
  still available for sale.
`
}
func (*marketCmd) SetFlags(f *flag.FlagSet) {}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.Market(market))
	return subcommands.ExitSuccess
}

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "advance the market by one tick" }
func (*refreshCmd) Usage() string {
	return `bourse refresh

  Rerolls every stock price by one simulated tick and shows the result.
  Items keep their price.
`
}
func (*refreshCmd) SetFlags(f *flag.FlagSet) {}

func (c *refreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	market.Reprice(bourse.PriceModel{})
	if err := saveMarket(store, market); err != nil {
		fmt.Fprintf(os.Stderr, "Error persisting market: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Market(market))
	return subcommands.ExitSuccess
}

// parseListing validates the <symbol> <price> <quantity> arguments shared
// by add-stock and add-item. The core rejects negative values too; checking
// here keeps the error messages close to the user's input.
func parseListing(f *flag.FlagSet) (symbol string, price float64, qty int64, ok bool) {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected a symbol, a price and a quantity.")
		return "", 0, 0, false
	}
	symbol = f.Arg(0)
	price, err := strconv.ParseFloat(f.Arg(1), 64)
	if err != nil || price < 0 {
		fmt.Fprintf(os.Stderr, "Error: price %q must be a non-negative number.\n", f.Arg(1))
		return "", 0, 0, false
	}
	qty, err = strconv.ParseInt(f.Arg(2), 10, 64)
	if err != nil || qty < 0 {
		fmt.Fprintf(os.Stderr, "Error: quantity %q must be a non-negative integer.\n", f.Arg(2))
		return "", 0, 0, false
	}
	return symbol, price, qty, true
}

// runListing adds one instrument to the market and persists it. A
// duplicate symbol is a reported no-op, not a failure.
func runListing(kind bourse.Kind, symbol string, price float64, qty int64) subcommands.ExitStatus {
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

	var add func(string, float64, int64) (*bourse.Instrument, error)
	if kind == bourse.Stock {
		add = market.AddStock
	} else {
		add = market.AddItem
	}
	inst, err := add(symbol, price, qty)
	if errors.Is(err, bourse.ErrDuplicateInstrument) {
		fmt.Printf("%s %q is already on the market; nothing changed.\n", kind, symbol)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveMarket(store, market); err != nil {
		fmt.Fprintf(os.Stderr, "Error persisting market: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Listed %s %s at %s with %d available.\n", kind, inst.Symbol(), bourse.M(inst.Price()), inst.Available())
	return subcommands.ExitSuccess
}

type addStockCmd struct{}

func (*addStockCmd) Name() string     { return "add-stock" }
func (*addStockCmd) Synopsis() string { return "list a new stock on the market" }
func (*addStockCmd) Usage() string {
	return `bourse add-stock <symbol> <price> <quantity>

  Lists a new stock at the given price with the given inventory. The price
  starts the stock's history and will random-walk from there.
`
}
func (*addStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *addStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, price, qty, ok := parseListing(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return runListing(bourse.Stock, symbol, price, qty)
}

type addItemCmd struct{}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "list a new item on the market" }
func (*addItemCmd) Usage() string {
	return `bourse add-item <name> <price> <quantity>

  Lists a new item at a fixed price with the given inventory.
`
}
func (*addItemCmd) SetFlags(f *flag.FlagSet) {}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, price, qty, ok := parseListing(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return runListing(bourse.Item, symbol, price, qty)
}
