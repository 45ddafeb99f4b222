package stockroom

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is a whole-unit stock count. Stock is counted in units, never in
// fractions, and the constructors enforce that.
type Quantity struct {
	value decimal.Decimal
}

// Q returns the Quantity for a unit count.
func Q(units int) Quantity { return Quantity{value: decimal.NewFromInt(int64(units))} }

// ParseQuantity parses a whole, non-negative quantity from its string form.
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if !v.IsInteger() {
		return Quantity{}, fmt.Errorf("invalid quantity %q: must be a whole number of units", s)
	}
	if v.IsNegative() {
		return Quantity{}, fmt.Errorf("invalid quantity %q: must not be negative", s)
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) String() string              { return q.value.String() }

// Units returns the quantity as a plain unit count.
func (q Quantity) Units() int { return int(q.value.IntPart()) }

// MarshalJSON implements the json.Marshaler interface.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
