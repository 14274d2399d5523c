package qty

import (
	"math"

	"github.com/katalvlaran/dimension/num"
)

// AsQuantity returns value as a quantity.
//
//   - a quantity without u is returned as is;
//   - a raw number without u becomes unitless;
//   - a raw number with u is taken to be expressed in u (u must be basic);
//   - a quantity with u is cast into u.
func AsQuantity(value any, u *Quantity) (*Quantity, error) {
	q, err := Coerce(value)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return q, nil
	}
	if err := checkBasic(u); err != nil {
		return nil, err
	}
	if _, ok := value.(*Quantity); ok {
		return q.CastUnit(u)
	}
	if _, ok := value.(Quantity); ok {
		return q.CastUnit(u)
	}
	return q.Mul(u)
}

// AsUnit returns the unit of value: 1 in value's unit, or unitless 1 for a
// raw number.
func AsUnit(value any) (*Quantity, error) {
	q, err := Coerce(value)
	if err != nil {
		return nil, err
	}
	return q.Unit(), nil
}

// WithUnit attaches u to a raw number. A quantity is only checked for
// compatibility with u and returned unchanged.
func WithUnit(value any, u *Quantity) (*Quantity, error) {
	switch value.(type) {
	case *Quantity, Quantity:
		q, err := Coerce(value)
		if err != nil {
			return nil, err
		}
		if _, _, err := q.MatchUnits(u); err != nil {
			return nil, err
		}
		return q, nil
	}
	return u.Mul(value)
}

// NumberOption configures AsNumber.
type NumberOption func(*numberOptions)

type numberOptions struct {
	in     *Quantity
	to     *Quantity
	places int
	round  bool
}

// InUnit states the unit of the value: a raw number is read in u, a quantity
// must be compatible with u and is read in it.
func InUnit(u *Quantity) NumberOption {
	return func(o *numberOptions) { o.in = u }
}

// ToUnit converts the result into u before extracting the number.
func ToUnit(u *Quantity) NumberOption {
	return func(o *numberOptions) { o.to = u }
}

// Places rounds the result to n decimal places.
func Places(n int) NumberOption {
	return func(o *numberOptions) { o.places, o.round = n, true }
}

// AsNumber extracts a raw number from value.
//
// Without options a quantity yields its simplified value and a raw number
// itself. With InUnit a quantity is read in that unit, while a raw number is
// assumed to already be in it. ToUnit converts further before reading.
// Places rounds the result (rounded values are floats).
func AsNumber(value any, opts ...NumberOption) (num.Value, error) {
	var o numberOptions
	for _, opt := range opts {
		opt(&o)
	}

	q, err := Coerce(value)
	if err != nil {
		return nil, err
	}
	_, isQty := value.(*Quantity)
	if _, ok := value.(Quantity); ok {
		isQty = true
	}

	var out num.Value
	switch {
	case o.in == nil && o.to == nil:
		out, err = q.Number()
	case o.to == nil && isQty:
		out, err = q.NumberIn(o.in)
	case o.to == nil:
		out = q.value
	default:
		if o.in != nil {
			if q, err = AsQuantity(value, o.in); err != nil {
				return nil, err
			}
		}
		out, err = q.NumberIn(o.to)
	}
	if err != nil {
		return nil, err
	}
	if o.round {
		out = roundPlaces(out, o.places)
	}
	return out, nil
}

// roundPlaces rounds half away from zero to n decimals.
func roundPlaces(v num.Value, n int) num.Value {
	scale := math.Pow(10, float64(n))
	round := func(f float64) float64 { return math.Round(f*scale) / scale }
	if vec, ok := v.(num.Vec); ok {
		out := make(num.Vec, len(vec))
		for i, f := range vec {
			out[i] = round(f)
		}
		return out
	}
	f, err := num.Float64(v)
	if err != nil {
		return v
	}
	return num.Float(round(f))
}
