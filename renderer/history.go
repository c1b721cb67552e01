package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"bourse"
	md "github.com/nao1215/markdown"
)

// sparkRunes maps a price between the history minimum and maximum onto a
// terminal-friendly bar.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// History renders the price chart of one stock: a sparkline over the whole
// history plus the key figures.
func History(inst *bourse.Instrument) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("History for %s", inst.Symbol()))

	prices := inst.History()
	if len(prices) == 0 {
		doc.PlainText("No price history.")
		return doc.String()
	}

	doc.CodeBlocks(md.SyntaxHighlightNone, sparkline(prices))

	first, last := prices[0], prices[len(prices)-1]
	low, high := first, first
	for _, p := range prices {
		if p < low {
			low = p
		}
		if p > high {
			high = p
		}
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Price"},
		Rows: [][]string{
			{"First", bourse.M(first).String()},
			{"Low", bourse.M(low).String()},
			{"High", bourse.M(high).String()},
			{"Last", bourse.M(last).String()},
			{"Ticks", fmt.Sprintf("%d", len(prices))},
		},
	}
	doc.Table(table)

	return doc.String()
}

// sparkline scales prices between their minimum and maximum onto bar runes.
// A flat history renders as a flat middle line.
func sparkline(prices []float64) string {
	low, high := prices[0], prices[0]
	for _, p := range prices {
		if p < low {
			low = p
		}
		if p > high {
			high = p
		}
	}

	var b strings.Builder
	for _, p := range prices {
		i := len(sparkRunes) / 2
		if high > low {
			i = int((p - low) / (high - low) * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[i])
	}
	return b.String()
}
