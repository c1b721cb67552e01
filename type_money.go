package bourse

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The game trades in a single currency.
const gameCurrency = money.USD

// Money is a display value for currency amounts. The trading engine keeps
// its arithmetic in float64; Money only exists so every price, cost and
// balance prints the same way everywhere.
type Money struct {
	value decimal.Decimal
}

// M wraps an amount expressed in major units.
func M(value float64) Money {
	return Money{value: decimal.NewFromFloat(value)}
}

// String formats the amount with the currency's symbol and grouping,
// rounded to its fraction digits.
func (m Money) String() string {
	cur := money.GetCurrency(gameCurrency)
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), gameCurrency).Display()
}

// SignedString is String with an explicit sign, and "-" for zero. Used in
// tabular views to make gains and losses stand out.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.value.IsNegative() }
