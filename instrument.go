package bourse

import "fmt"

// Kind distinguishes the two tradable namespaces of a market.
type Kind int

const (
	// Stock is an instrument subject to stochastic price evolution; it
	// carries the full history of its prices.
	Stock Kind = iota
	// Item is an instrument with a static price and no history.
	Item
)

func (k Kind) String() string {
	switch k {
	case Stock:
		return "stock"
	case Item:
		return "item"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Instrument represents a tradable entity: a symbol, a current price, and
// the quantity the market still has available. Stocks additionally record
// every price they ever had.
type Instrument struct {
	kind      Kind
	symbol    string
	price     float64
	available int64
	history   []float64 // stocks only, seeded with the creation price
}

// NewStock returns a new stock with its history seeded with the creation price.
func NewStock(symbol string, price float64, quantity int64) (*Instrument, error) {
	if err := validateInstrument(symbol, price, quantity); err != nil {
		return nil, err
	}
	return &Instrument{
		kind:      Stock,
		symbol:    symbol,
		price:     price,
		available: quantity,
		history:   []float64{price},
	}, nil
}

// NewItem returns a new item. Items keep the price they were created with.
func NewItem(symbol string, price float64, quantity int64) (*Instrument, error) {
	if err := validateInstrument(symbol, price, quantity); err != nil {
		return nil, err
	}
	return &Instrument{
		kind:      Item,
		symbol:    symbol,
		price:     price,
		available: quantity,
	}, nil
}

func validateInstrument(symbol string, price float64, quantity int64) error {
	if symbol == "" {
		return fmt.Errorf("instrument: empty symbol: %w", ErrInvalidArgument)
	}
	if price < 0 {
		return fmt.Errorf("instrument %q: negative price %v: %w", symbol, price, ErrInvalidArgument)
	}
	if quantity < 0 {
		return fmt.Errorf("instrument %q: negative quantity %d: %w", symbol, quantity, ErrInvalidArgument)
	}
	return nil
}

// Kind returns the namespace this instrument trades in.
func (i *Instrument) Kind() Kind { return i.kind }

// Symbol returns the unique identifier of the instrument. It never changes.
func (i *Instrument) Symbol() string { return i.symbol }

// Price returns the current price. It is never negative.
func (i *Instrument) Price() float64 { return i.price }

// Available returns the market-side inventory still for sale.
func (i *Instrument) Available() int64 { return i.available }

// History returns the ordered sequence of prices this stock has had, oldest
// first, starting with the creation price. It returns nil for items.
// The returned slice is shared with the instrument and must not be mutated.
func (i *Instrument) History() []float64 { return i.history }

func (i *Instrument) String() string {
	return fmt.Sprintf("%s: %s (%d available)", i.symbol, M(i.price), i.available)
}
