package bourse

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/PaesslerAG/jsonpath"
)

// this file handles the quote import format: a JSON document, typically a
// broker or data-vendor dump, from which a JSONPath expression selects the
// entries used to seed the market.

// DefaultQuotePath selects the entries of a top-level "quotes" array.
const DefaultQuotePath = "$.quotes[*]"

// Quote is one importable market entry.
type Quote struct {
	Symbol   string
	Price    float64
	Quantity int64
}

// ImportQuotes reads a JSON document from r and extracts quotes from the
// entries selected by path (DefaultQuotePath when empty). Each selected
// entry must be an object with a "symbol" string and "price" and
// "quantity" numbers.
func ImportQuotes(r io.Reader, path string) ([]Quote, error) {
	if path == "" {
		path = DefaultQuotePath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse quote document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select quotes with %q: %w", path, err)
	}

	// jsonpath is never clear about whether it returns a list or a single
	// answer: normalize to a list.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	quotes := make([]Quote, 0, len(jlist))
	for i, entry := range jlist {
		jmap, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("quote entry %d selected by %q is not an object", i, path)
		}
		symbol, ok := jmap["symbol"].(string)
		if !ok || symbol == "" {
			return nil, fmt.Errorf("quote entry %d: missing or invalid %q property", i, "symbol")
		}
		price, ok := jmap["price"].(float64)
		if !ok || price < 0 || math.IsNaN(price) {
			return nil, fmt.Errorf("quote entry %d (%s): missing or invalid %q property", i, symbol, "price")
		}
		jqty, ok := jmap["quantity"].(float64)
		if !ok || jqty < 0 || jqty != math.Trunc(jqty) {
			return nil, fmt.Errorf("quote entry %d (%s): missing or invalid %q property", i, symbol, "quantity")
		}
		quotes = append(quotes, Quote{Symbol: symbol, Price: price, Quantity: int64(jqty)})
	}
	return quotes, nil
}
