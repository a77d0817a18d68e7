package resale

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code of the single currency the ledger is kept in.
// It only affects how amounts are printed.
var Currency = "EUR"

// Money represents a monetary value in the ledger currency.
//
// Money keeps full decimal precision; it is only rounded to cents when it is
// marshalled, so that figures chained from sums never compound rounding errors.
type Money struct {
	value decimal.Decimal
}

func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	panic("unreachable")
}

// currency returns the ledger currency.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the amount formatted in the ledger currency, e.g. "€12.50".
func (m Money) String() string {
	cur := currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) MarshalJSON() ([]byte, error) { return fixed(m.value), nil }

// DivCount divides m by a count of items, 0 when there are none.
func (m Money) DivCount(n int) Money {
	return Money{value: quotient(m.value, decimal.NewFromInt(int64(n)))}
}

// Percent is a percentage, 12.5 meaning 12.5%.
type Percent struct {
	value decimal.Decimal
}

// percentOf returns num/den*100, or 0 when den is zero.
func percentOf(num, den decimal.Decimal) Percent {
	return Percent{value: quotient(num, den).Mul(decimal.NewFromInt(100))}
}

func (p Percent) Decimal() decimal.Decimal     { return p.value }
func (p Percent) String() string               { return p.value.StringFixed(2) + "%" }
func (p Percent) MarshalJSON() ([]byte, error) { return fixed(p.value), nil }

// Ratio is a dimensionless mean, like a profit multiple or a number of days.
type Ratio struct {
	value decimal.Decimal
}

// ratioOf returns num/den, or 0 when den is zero.
func ratioOf(num, den decimal.Decimal) Ratio { return Ratio{value: quotient(num, den)} }

func (r Ratio) Decimal() decimal.Decimal     { return r.value }
func (r Ratio) String() string               { return r.value.StringFixed(2) }
func (r Ratio) MarshalJSON() ([]byte, error) { return fixed(r.value), nil }

// quotient divides num by den. A zero denominator yields zero, never a panic or NaN.
func quotient(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.DivRound(den, 16)
}

// fixed is the JSON number of v rounded to two decimals.
func fixed(v decimal.Decimal) []byte {
	return []byte(v.StringFixed(2))
}
