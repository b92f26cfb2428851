package stockavg

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a ledger does not name one.
const DefaultCurrency = money.INR

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Round returns m rounded half-up (away from zero) to the currency minor unit.
//
// It is the only rounding applied to amounts: summaries, chart labels and
// exported tables all print through it, so they never disagree.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}

// String returns the rounded amount with the currency symbol and thousands grouping.
//
// The digits come from the decimal itself, so amounts beyond int64 minor
// units print as they are.
func (m Money) String() string {
	c := m.currency()
	f := c.Formatter()
	r := m.Round().value
	whole, frac, _ := strings.Cut(r.Abs().StringFixed(int32(f.Fraction)), ".")
	amount := groupThousands(whole, f.Thousand)
	if frac != "" {
		amount += f.Decimal + frac
	}
	// same substitutions as money.Formatter.Format
	s := strings.Replace(f.Template, "1", amount, 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if r.IsNegative() {
		s = "-" + s
	}
	return s
}

// groupThousands inserts sep every three digits from the right of digits.
func groupThousands(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Fixed returns the rounded amount without symbol nor grouping, "1933.33".
func (m Money) Fixed() string {
	return m.Round().value.StringFixed(int32(m.currency().Fraction))
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Mul(n Quantity) Money     { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money     { return Money{value: m.value.Div(n.value), cur: m.cur} }

// Ratio returns m/n as a plain number, n must not be zero.
func (m Money) Ratio(n Money) decimal.Decimal { return m.value.Div(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// InexactFloat64 is meant for chart scaling only, never for arithmetic.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }
