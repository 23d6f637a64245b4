package fincalc

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value to be displayed.
//
// Calculations are done in float64, Money only carries the final figure
// with its currency so that it can be rounded and formatted the way the
// currency wants it.
//
// Non-finite amounts (NaN, ±Inf) have no decimal value, they are kept as
// undefined and displayed as "-".
type Money struct {
	value     decimal.Decimal // as major unit value
	cur       string
	undefined bool
}

// M creates a Money from a float amount in major units.
func M(value float64, currency string) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{cur: currency, undefined: true}
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if m.undefined {
		return "-"
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.undefined || m.Rounded().IsZero() {
		return "-"
	}
	if m.IsNegative() {
		return m.String()
	}
	return "+" + m.String()
}

func (m Money) Currency() string  { return m.cur }
func (m Money) IsZero() bool      { return !m.undefined && m.value.IsZero() }
func (m Money) IsNegative() bool  { return !m.undefined && m.value.IsNegative() }
func (m Money) IsUndefined() bool { return m.undefined }
func (m Money) Equal(n Money) bool {
	return m.undefined == n.undefined && m.value.Equal(n.value) && m.cur == n.cur
}

// Rounded returns the amount rounded to the currency fraction digits.
func (m Money) Rounded() Money {
	if m.undefined {
		return m
	}
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}

// Scale multiplies the amount by f, see ScaleFactor.
func (m Money) Scale(f float64) Money {
	if m.undefined || math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{cur: m.cur, undefined: true}
	}
	return Money{value: m.value.Mul(decimal.NewFromFloat(f)), cur: m.cur}
}

// Float returns the amount as a float.
func (m Money) Float() float64 {
	if m.undefined {
		return math.NaN()
	}
	return m.value.InexactFloat64()
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	if m.undefined {
		w.Append("amount", nil)
		return w.MarshalJSON()
	}
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}
