package famfin

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal. Non-finite floats become zero.
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(ToSafeNumber(v))
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// Money is an exact monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of value in currency (empty meaning the reporting currency).
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: normalizeCurrency(currency)}
}

// BRL is a shorthand for a Money in the reporting currency.
func BRL(value float64) Money { return M(value, ReportingCurrency) }

// currency returns the money's currency metadata, never nil.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.Currency()).Currency()
}

// Currency returns the currency code.
func (m Money) Currency() string {
	if m.cur == "" {
		return ReportingCurrency
	}
	return m.cur
}

// String returns the value formatted with the currency's own conventions (e.g. R$1.234,56).
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is String with an explicit sign, "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	default:
		return m.String()
	}
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) Neg() Money       { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money       { return Money{value: m.value.Abs(), cur: m.cur} }

// Equal reports whether both values and currencies are equal.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.Currency() == n.Currency() }

// In converts m to another currency using the static rate table.
func (m Money) In(currency string) Money {
	currency = normalizeCurrency(currency)
	if currency == m.Currency() {
		return m
	}
	return M(Convert(toFloat(m.value), m.Currency(), currency), currency)
}

// Add returns m+n in m's currency, n is converted first if needed.
func (m Money) Add(n Money) Money {
	return Money{value: m.value.Add(n.In(m.Currency()).value), cur: m.cur}
}

// Sub returns m-n in m's currency, n is converted first if needed.
func (m Money) Sub(n Money) Money { return m.Add(n.Neg()) }

// Float returns the value rounded to Precision decimal places, saturated to
// the float64 range.
func (m Money) Float() float64 { return toFloat(m.value.Round(Precision)) }
