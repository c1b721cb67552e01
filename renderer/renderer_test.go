package renderer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"bourse"
)

func testMarket(t *testing.T) *bourse.Market {
	t.Helper()
	m := bourse.NewMarket()
	if _, err := m.AddStock("ACME", 100.0, 50); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddItem("sword", 250.0, 4); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMarket(t *testing.T) {
	got := Market(testMarket(t))

	for _, want := range []string{"# Market", "## Stocks", "## Items", "ACME", "$100.00", "sword", "$250.00", "50", "4"} {
		if !strings.Contains(got, want) {
			t.Errorf("Market() misses %q in:\n%s", want, got)
		}
	}
}

func TestMarket_Empty(t *testing.T) {
	got := Market(bourse.NewMarket())
	if !strings.Contains(got, "No stocks listed.") || !strings.Contains(got, "No items listed.") {
		t.Errorf("Market() on empty market = %s", got)
	}
}

func TestPortfolio(t *testing.T) {
	m := testMarket(t)
	p := bourse.NewPortfolio()
	acme, _ := m.Stock("ACME")
	if err := p.Buy(acme, 10); err != nil {
		t.Fatal(err)
	}

	got := Portfolio("alice", p, m)

	for _, want := range []string{
		"# Portfolio of alice",
		"## Stocks",
		"ACME", "10",
		"## Balance",
		"$8,990.00",  // cash after the buy
		"$10.00",     // the flat fee
		"$9,990.00",  // cash plus 10 ACME at 100
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Portfolio() misses %q in:\n%s", want, got)
		}
	}
}

func TestPortfolio_DelistedHolding(t *testing.T) {
	m := testMarket(t)
	p := bourse.NewPortfolio()
	acme, _ := m.Stock("ACME")
	if err := p.Buy(acme, 1); err != nil {
		t.Fatal(err)
	}

	// Rebuild the market without ACME: the holding renders as delisted.
	empty := bourse.NewMarket()
	got := Portfolio("alice", p, empty)
	if !strings.Contains(got, "delisted") {
		t.Errorf("Portfolio() misses delisted marker in:\n%s", got)
	}
}

func TestHistory(t *testing.T) {
	m := testMarket(t)
	acme, _ := m.Stock("ACME")
	for i := 0; i < 9; i++ {
		m.Reprice(bourse.PriceModel{})
	}

	got := History(acme)

	if !strings.Contains(got, "# History for ACME") {
		t.Errorf("History() misses title in:\n%s", got)
	}
	for _, want := range []string{"First", "Low", "High", "Last", "Ticks", "10"} {
		if !strings.Contains(got, want) {
			t.Errorf("History() misses %q in:\n%s", want, got)
		}
	}
}

func TestSparkline(t *testing.T) {
	testCases := []struct {
		name   string
		prices []float64
	}{
		{"rising", []float64{1, 2, 3, 4}},
		{"flat", []float64{5, 5, 5}},
		{"single", []float64{7}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sparkline(tc.prices)
			if n := utf8.RuneCountInString(got); n != len(tc.prices) {
				t.Errorf("sparkline(%v) has %d runes, want %d", tc.prices, n, len(tc.prices))
			}
		})
	}

	// The extremes map to the extreme bars.
	got := []rune(sparkline([]float64{1, 2, 3, 4}))
	if got[0] != sparkRunes[0] {
		t.Errorf("lowest price renders %q, want %q", got[0], sparkRunes[0])
	}
	if got[len(got)-1] != sparkRunes[len(sparkRunes)-1] {
		t.Errorf("highest price renders %q, want %q", got[len(got)-1], sparkRunes[len(sparkRunes)-1])
	}
}
