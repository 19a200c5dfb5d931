package brokerbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The book reports in a single currency.
const currencyCode = money.INR

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in the reporting currency.
//
// Values that end up in the ledger are rounded half-up (away from zero) to
// two decimal places; see Round.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the reporting currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, currencyCode).Currency()
}

// String returns the localized representation of the money value, like "₹1,010.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Fixed returns the plain representation with two decimal places, like "1010.00".
func (m Money) Fixed() string { return m.value.StringFixed(2) }

func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Neg() Money           { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value)} }
func (m Money) MulInt(q int64) Money { return Money{value: m.value.Mul(decimal.NewFromInt(q))} }

// Round rounds to the currency's fraction, half-up (away from zero).
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction))}
}

// Decimal returns the underlying exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(bytes []byte) error {
	return m.value.UnmarshalJSON(bytes)
}
