package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"bourse"
	"github.com/google/subcommands"
)

// tradeSide distinguishes the two legs of a trade.
type tradeSide int

const (
	buySide tradeSide = iota
	sellSide
)

func (s tradeSide) String() string {
	if s == buySide {
		return "Bought"
	}
	return "Sold"
}

// parseTrade validates the <symbol> <quantity> arguments shared by the
// four trade commands.
func parseTrade(f *flag.FlagSet) (symbol string, qty int64, ok bool) {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a symbol and a quantity.")
		return "", 0, false
	}
	symbol = f.Arg(0)
	qty, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil || qty <= 0 {
		fmt.Fprintf(os.Stderr, "Error: quantity %q must be a positive integer.\n", f.Arg(1))
		return "", 0, false
	}
	return symbol, qty, true
}

// runTrade executes one buy or sell for the logged-in player and persists
// both sides. After a successful stock trade the whole market rerolls its
// prices, so the price just paid is already history.
func runTrade(kind bourse.Kind, side tradeSide, symbol string, qty int64) subcommands.ExitStatus {
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
	registry, err := loadRegistry(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading user registry: %v\n", err)
		return subcommands.ExitFailure
	}
	account, ok := registry.Account(username)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: session user %q is not registered; log in again.\n", username)
		return subcommands.ExitFailure
	}
	portfolio, err := account.Portfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	inst, ok := market.Instrument(kind, symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s %q: %v\n", kind, symbol, bourse.ErrInstrumentNotFound)
		return subcommands.ExitFailure
	}

	price := inst.Price()
	if side == buySide {
		err = portfolio.Buy(inst, qty)
	} else {
		err = portfolio.Sell(inst, qty)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if kind == bourse.Stock {
		market.Reprice(bourse.PriceModel{})
	}
	if err := savePortfolio(store, username, portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error persisting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveMarket(store, market); err != nil {
		fmt.Fprintf(os.Stderr, "Error persisting market: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s %d %s %s at %s each, %s fee applied. Balance: %s.\n",
		side, qty, kind, inst.Symbol(), bourse.M(price), bourse.M(portfolio.Fee()), bourse.M(portfolio.Cash()))
	return subcommands.ExitSuccess
}

type buyStockCmd struct{}

func (*buyStockCmd) Name() string     { return "buy-stock" }
func (*buyStockCmd) Synopsis() string { return "buy shares of a stock" }
func (*buyStockCmd) Usage() string {
	return `bourse buy-stock <symbol> <quantity>

  Buys at the current price. The total cost, flat fee included, must fit in
  your cash balance, and the market must have the quantity available.
`
}
func (*buyStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *buyStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, qty, ok := parseTrade(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return runTrade(bourse.Stock, buySide, symbol, qty)
}

type sellStockCmd struct{}

func (*sellStockCmd) Name() string     { return "sell-stock" }
func (*sellStockCmd) Synopsis() string { return "sell shares of a stock" }
func (*sellStockCmd) Usage() string {
	return `bourse sell-stock <symbol> <quantity>

  Sells from your holdings at the current price, minus the flat fee. Mind
  that selling a tiny position can net less than the fee.
`
}
func (*sellStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *sellStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, qty, ok := parseTrade(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return runTrade(bourse.Stock, sellSide, symbol, qty)
}

type buyItemCmd struct{}

func (*buyItemCmd) Name() string     { return "buy-item" }
func (*buyItemCmd) Synopsis() string { return "buy units of an item" }
func (*buyItemCmd) Usage() string {
	return `bourse buy-item <name> <quantity>

  Buys at the item's fixed price. The same balance and inventory checks as
  stocks apply, fee included.
`
}
func (*buyItemCmd) SetFlags(f *flag.FlagSet) {}

func (c *buyItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, qty, ok := parseTrade(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return runTrade(bourse.Item, buySide, symbol, qty)
}

type sellItemCmd struct{}

func (*sellItemCmd) Name() string     { return "sell-item" }
func (*sellItemCmd) Synopsis() string { return "sell units of an item" }
func (*sellItemCmd) Usage() string {
	return `bourse sell-item <name> <quantity>

  Sells from your holdings at the item's fixed price, minus the flat fee.
`
}
func (*sellItemCmd) SetFlags(f *flag.FlagSet) {}

func (c *sellItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, qty, ok := parseTrade(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return runTrade(bourse.Item, sellSide, symbol, qty)
}
