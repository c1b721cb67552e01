// Package renderer turns game state into markdown documents for the
// terminal. It only reads: every view is a plain projection of the market
// or a portfolio at the moment of the call.
package renderer

import (
	"bytes"
	"fmt"

	"bourse"
	md "github.com/nao1215/markdown"
)

// Market renders the full market: every stock and every item with their
// current price and remaining inventory.
func Market(m *bourse.Market) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Market")

	doc.H2("Stocks")
	if len(m.Stocks()) == 0 {
		doc.PlainText("No stocks listed.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Symbol", "Price", "Available", "Ticks"},
			Rows:      [][]string{},
		}
		for _, inst := range m.Stocks() {
			table.Rows = append(table.Rows, []string{
				inst.Symbol(),
				bourse.M(inst.Price()).String(),
				fmt.Sprintf("%d", inst.Available()),
				fmt.Sprintf("%d", len(inst.History())),
			})
		}
		doc.Table(table)
	}

	doc.H2("Items")
	if len(m.Items()) == 0 {
		doc.PlainText("No items listed.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Name", "Price", "Available"},
			Rows:      [][]string{},
		}
		for _, inst := range m.Items() {
			table.Rows = append(table.Rows, []string{
				inst.Symbol(),
				bourse.M(inst.Price()).String(),
				fmt.Sprintf("%d", inst.Available()),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// Portfolio renders one user's holdings valued at current market prices,
// the cash balance, the per-trade fee, and the total portfolio value.
// Holdings whose symbol left the market are shown as delisted with no value.
func Portfolio(owner string, p *bourse.Portfolio, m *bourse.Market) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Portfolio of %s", owner))

	for _, section := range []struct {
		title string
		kind  bourse.Kind
	}{
		{"Stocks", bourse.Stock},
		{"Items", bourse.Item},
	} {
		symbols := p.Symbols(section.kind)
		if len(symbols) == 0 {
			continue
		}
		doc.H2(section.title)
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Symbol", "Quantity", "Price", "Value"},
			Rows:      [][]string{},
		}
		for _, symbol := range symbols {
			quantity := p.Holding(section.kind, symbol)
			price, value := "delisted", "-"
			if inst, ok := m.Instrument(section.kind, symbol); ok {
				price = bourse.M(inst.Price()).String()
				value = bourse.M(inst.Price() * float64(quantity)).String()
			}
			table.Rows = append(table.Rows, []string{
				symbol,
				fmt.Sprintf("%d", quantity),
				price,
				value,
			})
		}
		doc.Table(table)
	}

	doc.H2("Balance")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Cash", bourse.M(p.Cash()).String()},
			{"Transaction fee", bourse.M(p.Fee()).String()},
			{"Total value", bourse.M(p.Value(m)).String()},
		},
	}
	doc.Table(table)

	return doc.String()
}
