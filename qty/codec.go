package qty

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/unit"
)

// Encoded is the flat persistence form of a Quantity: a value and a unit
// vector, nothing else. The normal flag and the registry are not carried.
type Encoded struct {
	Value num.Value
	Unit  unit.Vector
}

// Encode returns the Encoded form of a quantity; any other value is
// returned unchanged.
func Encode(x any) any {
	switch q := x.(type) {
	case *Quantity:
		if q == nil {
			return x
		}
		return Encoded{Value: q.value, Unit: q.unit.Clone()}
	case Quantity:
		return Encoded{Value: q.value, Unit: q.unit.Clone()}
	}
	return x
}

// Decode rebuilds a quantity in the default registry from its Encoded form;
// any other value is returned unchanged. The encoded parts are checked like
// New checks its arguments: a missing value or a stored zero exponent fails.
func Decode(x any) (any, error) {
	switch e := x.(type) {
	case Encoded:
		return decodeEncoded(e)
	case *Encoded:
		if e == nil {
			return x, nil
		}
		return decodeEncoded(*e)
	}
	return x, nil
}

func decodeEncoded(e Encoded) (*Quantity, error) {
	q, err := newQuantity(nil, e.Value, e.Unit)
	if err != nil {
		return nil, fmt.Errorf("qty: decode: %w", err)
	}
	return q, nil
}

var wireAPI = sonic.Config{
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// wireQuantity is the JSON shape {"value": ..., "unit": {"m": 1}}.
//
// value is a JSON number for integers and floats (floats always carry a
// fraction or exponent), a "p/q" string for non-integral rationals and an
// array for vectors.
type wireQuantity struct {
	Value any         `json:"value"`
	Unit  unit.Vector `json:"unit"`
}

// MarshalJSON implements json.Marshaler.
func (q *Quantity) MarshalJSON() ([]byte, error) {
	v, err := wireValue(q.value)
	if err != nil {
		return nil, err
	}
	u := q.unit
	if u == nil {
		u = unit.Vector{}
	}
	return wireAPI.Marshal(wireQuantity{Value: v, Unit: u})
}

// UnmarshalJSON implements json.Unmarshaler. The quantity is bound to the
// default registry.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var w wireQuantity
	if err := wireAPI.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("qty: decode quantity: %w", err)
	}
	v, err := fromWire(w.Value)
	if err != nil {
		return err
	}
	if err := w.Unit.Validate(); err != nil {
		return err
	}
	*q = Quantity{value: v, unit: w.Unit.Clone()}
	if q.unit == nil {
		q.unit = unit.Vector{}
	}
	return nil
}

// DecodeJSON parses a quantity and binds it to r. Every symbol must be
// registered in r.
func (r *Registry) DecodeJSON(data []byte) (*Quantity, error) {
	q := new(Quantity)
	if err := q.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	for _, sym := range q.unit.Symbols() {
		if !r.Has(sym) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, sym)
		}
	}
	q.reg = r
	return q, nil
}

func wireValue(v num.Value) (any, error) {
	switch x := v.(type) {
	case num.Rat:
		b := x.Big()
		if b.IsInt() {
			return json.Number(b.Num().String()), nil
		}
		return b.RatString(), nil
	case num.Float:
		return floatLiteral(float64(x))
	case num.Vec:
		return []float64(x), nil
	}
	return nil, fmt.Errorf("qty: encode value: %w: %T", num.ErrUnsupportedType, v)
}

func floatLiteral(f float64) (json.Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("qty: encode value: %v is not representable in JSON", f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return json.Number(s), nil
}

func fromWire(x any) (num.Value, error) {
	switch v := x.(type) {
	case json.Number:
		return num.Parse(v.String())
	case string:
		return num.Parse(v)
	case float64:
		return num.Float(v), nil
	case []any:
		out := make(num.Vec, len(v))
		for i, e := range v {
			s, err := fromWire(e)
			if err != nil {
				return nil, err
			}
			f, err := num.Float64(s)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, fmt.Errorf("qty: decode value: %w: %T", num.ErrUnsupportedType, x)
}
