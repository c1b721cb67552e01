package bourse

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// This file defines the persisted form of the market, portfolios and the
// user registry. The on-disk shape is a set of versioned records, kept
// deliberately independent from the in-memory types so either side can
// evolve without breaking old files. The records are msgpack-encoded; the
// vault package seals the resulting bytes before they reach the disk.

// codecVersion is stamped on every record written; decoding any other
// version fails loudly rather than guessing.
const codecVersion = 1

type instrumentRecord struct {
	Symbol    string    `msgpack:"symbol"`
	Price     float64   `msgpack:"price"`
	Available int64     `msgpack:"available"`
	History   []float64 `msgpack:"history,omitempty"`
}

type marketRecord struct {
	Version int                `msgpack:"version"`
	Stocks  []instrumentRecord `msgpack:"stocks"`
	Items   []instrumentRecord `msgpack:"items"`
}

type portfolioRecord struct {
	Version int              `msgpack:"version"`
	Cash    float64          `msgpack:"cash"`
	Fee     float64          `msgpack:"fee"`
	Stocks  map[string]int64 `msgpack:"stocks"`
	Items   map[string]int64 `msgpack:"items"`
}

type userRecord struct {
	Username string `msgpack:"username"`
	Password string `msgpack:"password"`
}

type registryRecord struct {
	Version int          `msgpack:"version"`
	Users   []userRecord `msgpack:"users"`
}

func checkVersion(what string, version int) error {
	if version != codecVersion {
		return fmt.Errorf("decode %s: unsupported record version %d, want %d", what, version, codecVersion)
	}
	return nil
}

// EncodeMarket serializes a market, stock histories included.
func EncodeMarket(m *Market) ([]byte, error) {
	rec := marketRecord{Version: codecVersion}
	for _, inst := range m.Stocks() {
		rec.Stocks = append(rec.Stocks, instrumentRecord{
			Symbol:    inst.symbol,
			Price:     inst.price,
			Available: inst.available,
			History:   inst.history,
		})
	}
	for _, inst := range m.Items() {
		rec.Items = append(rec.Items, instrumentRecord{
			Symbol:    inst.symbol,
			Price:     inst.price,
			Available: inst.available,
		})
	}
	b, err := msgpack.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode market: %w", err)
	}
	return b, nil
}

// DecodeMarket reconstructs a market from its persisted form, restoring
// every stock's full price history.
func DecodeMarket(b []byte) (*Market, error) {
	var rec marketRecord
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode market: %w", err)
	}
	if err := checkVersion("market", rec.Version); err != nil {
		return nil, err
	}
	m := NewMarket()
	for _, r := range rec.Stocks {
		inst, err := m.AddStock(r.Symbol, r.Price, r.Available)
		if err != nil {
			return nil, fmt.Errorf("decode market: stock %q: %w", r.Symbol, err)
		}
		if len(r.History) > 0 {
			inst.history = r.History
		}
	}
	for _, r := range rec.Items {
		if _, err := m.AddItem(r.Symbol, r.Price, r.Available); err != nil {
			return nil, fmt.Errorf("decode market: item %q: %w", r.Symbol, err)
		}
	}
	return m, nil
}

// EncodePortfolio serializes one user's portfolio.
func EncodePortfolio(p *Portfolio) ([]byte, error) {
	rec := portfolioRecord{
		Version: codecVersion,
		Cash:    p.cash,
		Fee:     p.fee,
		Stocks:  p.stocks,
		Items:   p.items,
	}
	b, err := msgpack.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode portfolio: %w", err)
	}
	return b, nil
}

// DecodePortfolio reconstructs a portfolio, keeping explicit zero holdings.
func DecodePortfolio(b []byte) (*Portfolio, error) {
	var rec portfolioRecord
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	if err := checkVersion("portfolio", rec.Version); err != nil {
		return nil, err
	}
	p := NewPortfolio()
	p.cash = rec.Cash
	p.fee = rec.Fee
	for symbol, quantity := range rec.Stocks {
		p.stocks[symbol] = quantity
	}
	for symbol, quantity := range rec.Items {
		p.items[symbol] = quantity
	}
	return p, nil
}

// EncodeRegistry serializes the whole user registry. Portfolios are not
// part of the registry blob: each lives in its own per-user blob.
func EncodeRegistry(r *Registry) ([]byte, error) {
	rec := registryRecord{Version: codecVersion}
	for _, username := range r.Usernames() {
		account := r.index[username]
		rec.Users = append(rec.Users, userRecord{
			Username: account.username,
			Password: account.password,
		})
	}
	b, err := msgpack.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode registry: %w", err)
	}
	return b, nil
}

// DecodeRegistry reconstructs the registry. Accounts resolve their
// portfolios lazily through load.
func DecodeRegistry(b []byte, load PortfolioLoader) (*Registry, error) {
	var rec registryRecord
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	if err := checkVersion("registry", rec.Version); err != nil {
		return nil, err
	}
	r := NewRegistry(load)
	for _, u := range rec.Users {
		r.index[u.Username] = &UserAccount{
			username: u.Username,
			password: u.Password,
			load:     load,
		}
	}
	return r, nil
}
