package bourse

import (
	"strings"
	"testing"
)

func TestImportQuotes(t *testing.T) {
	doc := `{
		"generated": "2026-08-29",
		"quotes": [
			{"symbol": "ACME", "price": 100.5, "quantity": 50},
			{"symbol": "ZORG", "price": 40, "quantity": 10}
		]
	}`

	quotes, err := ImportQuotes(strings.NewReader(doc), "")
	if err != nil {
		t.Fatalf("ImportQuotes() error = %v", err)
	}
	want := []Quote{
		{Symbol: "ACME", Price: 100.5, Quantity: 50},
		{Symbol: "ZORG", Price: 40, Quantity: 10},
	}
	if len(quotes) != len(want) {
		t.Fatalf("got %d quotes, want %d", len(quotes), len(want))
	}
	for i := range want {
		if quotes[i] != want[i] {
			t.Errorf("quote %d = %+v, want %+v", i, quotes[i], want[i])
		}
	}
}

func TestImportQuotes_CustomPath(t *testing.T) {
	// Vendor dumps nest their entries in all sorts of places; the path
	// flag reaches them without reshaping the file.
	doc := `{"data": {"listing": [{"symbol": "PNY", "price": 2.0, "quantity": 100}]}}`

	quotes, err := ImportQuotes(strings.NewReader(doc), "$.data.listing[*]")
	if err != nil {
		t.Fatalf("ImportQuotes() error = %v", err)
	}
	if len(quotes) != 1 || quotes[0].Symbol != "PNY" {
		t.Errorf("quotes = %v, want the single PNY entry", quotes)
	}
}

func TestImportQuotes_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		path string
	}{
		{"not json", "not json at all", ""},
		{"missing symbol", `{"quotes": [{"price": 1, "quantity": 1}]}`, ""},
		{"missing price", `{"quotes": [{"symbol": "A", "quantity": 1}]}`, ""},
		{"negative price", `{"quotes": [{"symbol": "A", "price": -1, "quantity": 1}]}`, ""},
		{"fractional quantity", `{"quotes": [{"symbol": "A", "price": 1, "quantity": 1.5}]}`, ""},
		{"entry not an object", `{"quotes": ["ACME"]}`, ""},
		{"bad path", `{"quotes": []}`, "$.["},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportQuotes(strings.NewReader(tc.doc), tc.path); err == nil {
				t.Errorf("ImportQuotes(%q) succeeded, want error", tc.doc)
			}
		})
	}
}
