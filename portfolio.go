package bourse

import (
	"fmt"
	"sort"
)

const (
	// StartingCash is the balance every new portfolio opens with.
	StartingCash = 10000

	// FlatFee is charged once per trade, on both legs, regardless of size.
	FlatFee = 10.0
)

// Portfolio is one user's cash balance and holdings ledger. Trades settle
// immediately against the instrument's current price. Purchases must fit in
// the balance; sales always go through, even when the fee eats the proceeds.
type Portfolio struct {
	cash   float64
	fee    float64
	stocks map[string]int64
	items  map[string]int64
}

// NewPortfolio returns a portfolio with the starting balance and no holdings.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		cash:   StartingCash,
		fee:    FlatFee,
		stocks: make(map[string]int64),
		items:  make(map[string]int64),
	}
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() float64 { return p.cash }

// Fee returns the flat per-trade transaction fee.
func (p *Portfolio) Fee() float64 { return p.fee }

// Holding returns the owned quantity for a symbol, zero if never bought.
// Entries are created on first purchase and never removed, so a fully sold
// position reports an explicit zero.
func (p *Portfolio) Holding(kind Kind, symbol string) int64 {
	return p.holdings(kind)[symbol]
}

// Symbols returns the symbols ever held in a namespace, sorted.
func (p *Portfolio) Symbols(kind Kind) []string {
	h := p.holdings(kind)
	symbols := make([]string, 0, len(h))
	for symbol := range h {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (p *Portfolio) holdings(kind Kind) map[string]int64 {
	if kind == Stock {
		return p.stocks
	}
	return p.items
}

// Buy purchases quantity units of inst at its current price plus the flat
// fee. The checks run in order and the first failure leaves both the
// portfolio and the instrument untouched. On success both sides update
// together: holdings and cash here, available inventory on the instrument.
func (p *Portfolio) Buy(inst *Instrument, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("buy %s %q: quantity %d: %w", inst.kind, inst.symbol, quantity, ErrInvalidArgument)
	}
	total := inst.price*float64(quantity) + p.fee
	if total > p.cash {
		return fmt.Errorf("buy %d %s %q costs %s with balance %s: %w",
			quantity, inst.kind, inst.symbol, M(total), M(p.cash), ErrInsufficientFunds)
	}
	if quantity > inst.available {
		return fmt.Errorf("buy %d %s %q with only %d available: %w",
			quantity, inst.kind, inst.symbol, inst.available, ErrInsufficientInventory)
	}
	p.holdings(inst.kind)[inst.symbol] += quantity
	inst.available -= quantity
	p.cash -= total
	return nil
}

// Sell disposes of quantity units of inst at its current price, minus the
// flat fee. Net proceeds may be negative when the fee exceeds the sale
// value of a small trade; the balance takes the hit.
func (p *Portfolio) Sell(inst *Instrument, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("sell %s %q: quantity %d: %w", inst.kind, inst.symbol, quantity, ErrInvalidArgument)
	}
	held := p.holdings(inst.kind)[inst.symbol]
	if held < quantity {
		return fmt.Errorf("sell %d %s %q holding only %d: %w",
			quantity, inst.kind, inst.symbol, held, ErrInsufficientHoldings)
	}
	p.holdings(inst.kind)[inst.symbol] = held - quantity
	p.cash += inst.price*float64(quantity) - p.fee
	inst.available += quantity
	return nil
}

// Value returns cash plus the live market value of every holding. Holdings
// whose symbol is no longer on the market contribute nothing.
func (p *Portfolio) Value(market *Market) float64 {
	total := p.cash
	for kind, holdings := range map[Kind]map[string]int64{Stock: p.stocks, Item: p.items} {
		for symbol, quantity := range holdings {
			inst, ok := market.Instrument(kind, symbol)
			if !ok {
				continue
			}
			total += inst.price * float64(quantity)
		}
	}
	return total
}
