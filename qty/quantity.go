package qty

import (
	"fmt"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/unit"
)

// Quantity is a numeric value tagged with a unit vector.
//
// Quantities are value-like: every operation returns a fresh Quantity and
// never shares a unit vector with its inputs. The only in-place mutators are
// SimplifyUnit, Materialize and SetIndex.
type Quantity struct {
	value  num.Value
	unit   unit.Vector
	normal bool      // already in canonical display form
	reg    *Registry // nil → Default()
}

// New builds a quantity in the default registry. value is anything
// num.Coerce accepts; u may be nil for a unitless quantity.
func New(value any, u unit.Vector) (*Quantity, error) {
	return newQuantity(nil, value, u)
}

// MustNew is like New but panics on error.
func MustNew(value any, u unit.Vector) *Quantity {
	q, err := New(value, u)
	if err != nil {
		panic(err)
	}
	return q
}

// Must returns q, panicking if err is non-nil:
//
//	km := r.MustUnit("km", qty.Must(m.Mul(1000)), "kilometer")
func Must(q *Quantity, err error) *Quantity {
	if err != nil {
		panic(err)
	}
	return q
}

// Unitless returns value without a unit. It panics if value is not numeric.
func Unitless(value any) *Quantity {
	return MustNew(value, nil)
}

func newQuantity(r *Registry, value any, u unit.Vector) (*Quantity, error) {
	v, err := num.Coerce(value)
	if err != nil {
		return nil, err
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &Quantity{value: v, unit: u.Clone(), reg: r}, nil
}

// Coerce turns x into a Quantity. A *Quantity (or Quantity) is returned as is;
// raw numbers become unitless quantities. It is the single coercion step used
// by every binary operation.
func Coerce(x any) (*Quantity, error) {
	switch v := x.(type) {
	case *Quantity:
		if v == nil {
			return nil, ErrNilQuantity
		}
		return v, nil
	case Quantity:
		return &v, nil
	}
	v, err := num.Coerce(x)
	if err != nil {
		return nil, err
	}
	return &Quantity{value: v, unit: unit.Vector{}}, nil
}

// Value returns the raw numeric value in the quantity's own unit.
func (q *Quantity) Value() num.Value { return q.value }

// Units returns a copy of the unit vector.
func (q *Quantity) Units() unit.Vector { return q.unit.Clone() }

// Unit returns 1 in the same unit as q.
func (q *Quantity) Unit() *Quantity {
	return &Quantity{value: num.Int(1), unit: q.unit.Clone(), normal: q.normal, reg: q.reg}
}

// Registry returns the registry q resolves symbols through.
func (q *Quantity) Registry() *Registry { return q.registry() }

// IsZero reports whether q's value is zero.
func (q *Quantity) IsZero() bool { return num.IsZero(q.value) }

// IsUnitless reports whether q carries no unit.
func (q *Quantity) IsUnitless() bool { return q.unit.IsEmpty() }

// IsNormal reports whether q is cached as being in canonical display form.
func (q *Quantity) IsNormal() bool { return q.normal }

// Copy returns an independent copy of q. Vector values are duplicated too.
func (q *Quantity) Copy() *Quantity {
	c := *q
	c.unit = q.unit.Clone()
	if v, ok := q.value.(num.Vec); ok {
		c.value = append(num.Vec(nil), v...)
	}
	return &c
}

// Pos returns +q.
func (q *Quantity) Pos() *Quantity { return q.Copy() }

func (q *Quantity) registry() *Registry {
	if q.reg == nil {
		return defaultRegistry
	}
	return q.reg
}

// with returns a quantity in q's registry. The unit is not copied.
func (q *Quantity) with(v num.Value, u unit.Vector) *Quantity {
	return &Quantity{value: v, unit: u, reg: q.reg}
}

// pickRegistry selects the registry shared by two operands.
func pickRegistry(a, b *Quantity) (*Registry, error) {
	switch {
	case a.reg == nil:
		return b.reg, nil
	case b.reg == nil, a.reg == b.reg:
		return a.reg, nil
	}
	return nil, fmt.Errorf("%w: %s and %s", ErrRegistryMismatch, a.unit, b.unit)
}

// operands coerces other and binds both sides to a common registry.
func (q *Quantity) operands(other any) (*Quantity, *Quantity, error) {
	if q == nil {
		return nil, nil, ErrNilQuantity
	}
	o, err := Coerce(other)
	if err != nil {
		return nil, nil, err
	}
	r, err := pickRegistry(q, o)
	if err != nil {
		return nil, nil, err
	}
	if q.reg != r {
		c := *q
		c.reg = r
		q = &c
	}
	if o.reg != r {
		c := *o
		c.reg = r
		o = &c
	}
	return q, o, nil
}
