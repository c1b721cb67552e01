package bourse

import "fmt"

// Market is the registry of all tradable instruments. Stocks and items live
// in separate namespaces: the same symbol may exist once in each.
type Market struct {
	stocks shelf
	items  shelf
}

// shelf holds the instruments of one namespace, indexed by symbol and kept
// in insertion order for stable listings.
type shelf struct {
	list  []*Instrument
	index map[string]*Instrument
}

func newShelf() shelf {
	return shelf{index: make(map[string]*Instrument)}
}

func (s *shelf) add(inst *Instrument) error {
	if _, ok := s.index[inst.symbol]; ok {
		return fmt.Errorf("%s %q: %w", inst.kind, inst.symbol, ErrDuplicateInstrument)
	}
	s.list = append(s.list, inst)
	s.index[inst.symbol] = inst
	return nil
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{stocks: newShelf(), items: newShelf()}
}

// AddStock registers a new stock. Adding a symbol that already exists is a
// no-op reported as ErrDuplicateInstrument.
func (m *Market) AddStock(symbol string, price float64, quantity int64) (*Instrument, error) {
	inst, err := NewStock(symbol, price, quantity)
	if err != nil {
		return nil, err
	}
	if err := m.stocks.add(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// AddItem registers a new item. Adding a symbol that already exists is a
// no-op reported as ErrDuplicateInstrument.
func (m *Market) AddItem(symbol string, price float64, quantity int64) (*Instrument, error) {
	inst, err := NewItem(symbol, price, quantity)
	if err != nil {
		return nil, err
	}
	if err := m.items.add(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// Stock looks up a stock by symbol.
func (m *Market) Stock(symbol string) (*Instrument, bool) {
	inst, ok := m.stocks.index[symbol]
	return inst, ok
}

// Item looks up an item by symbol.
func (m *Market) Item(symbol string) (*Instrument, bool) {
	inst, ok := m.items.index[symbol]
	return inst, ok
}

// Instrument looks up a symbol in the namespace of the given kind.
func (m *Market) Instrument(kind Kind, symbol string) (*Instrument, bool) {
	switch kind {
	case Stock:
		return m.Stock(symbol)
	default:
		return m.Item(symbol)
	}
}

// Stocks returns all stocks in insertion order.
func (m *Market) Stocks() []*Instrument { return m.stocks.list }

// Items returns all items in insertion order.
func (m *Market) Items() []*Instrument { return m.items.list }

// Reprice applies one simulated tick to every stock on the market. Items
// keep their price: only stocks carry market risk.
func (m *Market) Reprice(model PriceModel) {
	for _, inst := range m.stocks.list {
		model.Reprice(inst)
	}
}
