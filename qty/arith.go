package qty

import (
	"fmt"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/unit"
)

// Add returns q + other after matching units. The result carries the unit
// chosen by MatchUnits.
func (q *Quantity) Add(other any) (*Quantity, error) {
	return q.additive(other, num.Add)
}

// Sub returns q - other after matching units.
func (q *Quantity) Sub(other any) (*Quantity, error) {
	return q.additive(other, num.Sub)
}

func (q *Quantity) additive(other any, op func(a, b num.Value) (num.Value, error)) (*Quantity, error) {
	s, o, err := q.MatchUnits(other)
	if err != nil {
		return nil, err
	}
	v, err := op(s.value, o.value)
	if err != nil {
		return nil, err
	}
	return s.with(v, s.unit.Clone()), nil
}

// Mul returns q · other. Exponents are summed; a unitless side simply
// adopts the unit of the other.
func (q *Quantity) Mul(other any) (*Quantity, error) {
	return q.multiplicative(other, num.Mul, unit.Mul)
}

// Div returns q / other.
func (q *Quantity) Div(other any) (*Quantity, error) {
	return q.multiplicative(other, num.Div, unit.Div)
}

// FloorDiv returns floor(q / other) with the unit of Div. The floor applies
// to the raw values, so it is only meaningful for matching units.
func (q *Quantity) FloorDiv(other any) (*Quantity, error) {
	return q.multiplicative(other, num.FloorDiv, unit.Div)
}

func (q *Quantity) multiplicative(
	other any,
	op func(a, b num.Value) (num.Value, error),
	combine func(a, b unit.Vector) (unit.Vector, error),
) (*Quantity, error) {
	s, o, err := q.operands(other)
	if err != nil {
		return nil, err
	}
	u, err := combine(s.unit, o.unit)
	if err != nil {
		return nil, err
	}
	v, err := op(s.value, o.value)
	if err != nil {
		return nil, err
	}
	return s.with(v, u), nil
}

// Pow returns q ** other.
//
// A zero exponent yields a unitless result. Otherwise the exponent must
// simplify to a unitless scalar (ErrShouldBeUnitless), and every unit
// exponent is multiplied by it: (4 m²) ** 0.5 = 2 m. Exponents that leave
// the int64 rational range fail with unit.ErrExponentRange.
func (q *Quantity) Pow(other any) (*Quantity, error) {
	s, o, err := q.operands(other)
	if err != nil {
		return nil, err
	}

	u := unit.Vector{}
	if !num.IsZero(o.value) {
		e, err := o.Simplified()
		if err != nil {
			return nil, err
		}
		if !e.unit.IsEmpty() {
			return nil, fmt.Errorf("%w: exponent has unit [%s]", ErrShouldBeUnitless, e.unit)
		}
		if !s.unit.IsEmpty() {
			exp, err := toExp(e.value)
			if err != nil {
				return nil, err
			}
			if u, err = unit.Pow(s.unit, exp); err != nil {
				return nil, err
			}
		}
		o = e
	}

	v, err := num.Pow(s.value, o.value)
	if err != nil {
		return nil, err
	}
	return s.with(v, u), nil
}

// toExp converts a scalar exponent into a unit exponent.
func toExp(v num.Value) (unit.Exp, error) {
	switch x := v.(type) {
	case num.Rat:
		return unit.ExpFromRat(x.Big())
	case num.Float:
		return unit.ExpFromFloat(float64(x))
	}
	return unit.Exp{}, fmt.Errorf("qty: exponent %s: %w", v, num.ErrNotScalar)
}

// Neg returns -q.
func (q *Quantity) Neg() *Quantity {
	return q.with(num.Neg(q.value), q.unit.Clone())
}

// Abs returns |q|.
func (q *Quantity) Abs() *Quantity {
	return q.with(num.Abs(q.value), q.unit.Clone())
}

// Cmp matches units and compares the values: -1, 0 or +1.
func (q *Quantity) Cmp(other any) (int, error) {
	s, o, err := q.MatchUnits(other)
	if err != nil {
		return 0, err
	}
	return num.Cmp(s.value, o.value)
}

// Less reports q < other.
func (q *Quantity) Less(other any) (bool, error) {
	c, err := q.Cmp(other)
	return c < 0, err
}

// LessEq reports q <= other.
func (q *Quantity) LessEq(other any) (bool, error) {
	c, err := q.Cmp(other)
	return err == nil && c <= 0, err
}

// Greater reports q > other.
func (q *Quantity) Greater(other any) (bool, error) {
	c, err := q.Cmp(other)
	return c > 0, err
}

// GreaterEq reports q >= other.
func (q *Quantity) GreaterEq(other any) (bool, error) {
	c, err := q.Cmp(other)
	return err == nil && c >= 0, err
}

// Equal reports whether q and other denote the same amount. It never fails:
// operands that cannot be matched are simply not equal.
func (q *Quantity) Equal(other any) bool {
	s, o, err := q.MatchUnits(other)
	if err != nil {
		return false
	}
	return num.Equal(s.value, o.value)
}

// NotEqual is !Equal.
func (q *Quantity) NotEqual(other any) bool { return !q.Equal(other) }

// Len returns the number of elements of a vector-valued quantity.
func (q *Quantity) Len() (int, error) { return num.Len(q.value) }

// Index returns element i, keeping q's unit.
func (q *Quantity) Index(i int) (*Quantity, error) {
	v, err := num.Index(q.value, i)
	if err != nil {
		return nil, err
	}
	return q.with(v, q.unit.Clone()), nil
}

// SetIndex converts v into q's unit and stores it at position i, in place.
func (q *Quantity) SetIndex(i int, v any) error {
	x, err := Coerce(v)
	if err != nil {
		return err
	}
	n, err := x.NumberIn(q.Unit())
	if err != nil {
		return err
	}
	return num.SetIndex(q.value, i, n)
}
