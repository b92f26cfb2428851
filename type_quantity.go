package stockavg

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a number of shares.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// shares are printed as grouped integers, "1,250".
var sharesFormatter = money.NewFormatter(0, ".", ",", "", "1")

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsInteger() bool             { return q.value.IsInteger() }
func (q Quantity) Decimal() decimal.Decimal    { return q.value }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }

// String returns the quantity with thousands grouping.
func (q Quantity) String() string {
	if !q.value.IsInteger() {
		return q.value.String()
	}
	s := groupThousands(q.value.Abs().StringFixed(0), sharesFormatter.Thousand)
	if q.value.IsNegative() {
		s = "-" + s
	}
	return s
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
