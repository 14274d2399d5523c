package qty

import (
	"fmt"

	"github.com/katalvlaran/dimension/num"
)

// Number returns the raw value of q after simplification (1 km/m → 1000).
func (q *Quantity) Number() (num.Value, error) {
	s, err := q.Simplified()
	if err != nil {
		return nil, err
	}
	return s.value, nil
}

// NumberIn returns the raw value of q expressed in target.
//
// A Quantity target must be a basic unit, i.e. have value 1 (cm, not 2 cm);
// otherwise ErrNonBasicUnit. The units are matched and the ratio returned.
// A raw numeric target requires q to simplify to a unitless value, which is
// then divided by target.
func (q *Quantity) NumberIn(target any) (num.Value, error) {
	switch t := target.(type) {
	case *Quantity, Quantity:
		tq, err := Coerce(t)
		if err != nil {
			return nil, err
		}
		if err := checkBasic(tq); err != nil {
			return nil, err
		}
		s, o, err := q.MatchUnits(tq)
		if err != nil {
			return nil, err
		}
		return num.Div(s.value, o.value)
	}

	raw, err := num.Coerce(target)
	if err != nil {
		return nil, err
	}
	s, err := q.Simplified()
	if err != nil {
		return nil, err
	}
	if err := s.CheckUnitless(); err != nil {
		return nil, err
	}
	return num.Div(s.value, raw)
}

// Float64 returns q as a unitless float64. q must simplify to no unit.
func (q *Quantity) Float64() (float64, error) {
	v, err := q.NumberIn(num.Int(1))
	if err != nil {
		return 0, err
	}
	return num.Float64(v)
}

// CastUnit returns q expressed in the unit of target, which must be basic.
// The result is marked normal so that display keeps the requested unit.
func (q *Quantity) CastUnit(target any) (*Quantity, error) {
	tq, err := Coerce(target)
	if err != nil {
		return nil, err
	}
	if err := checkBasic(tq); err != nil {
		return nil, err
	}
	s, o, err := q.MatchUnits(tq)
	if err != nil {
		return nil, err
	}
	v, err := num.Div(s.value, o.value)
	if err != nil {
		return nil, err
	}
	res := s.with(v, tq.unit.Clone())
	res.normal = true
	return res, nil
}

// Converted replaces the single symbol of q by its definition:
// 1 N → 1 kg.m/s2, 1 cm² → 0.0001 m². Quantities with several symbols or
// with a base unit fail with ErrConversion.
func (q *Quantity) Converted() (*Quantity, error) {
	if q.unit.Len() != 1 {
		return nil, fmt.Errorf("%w: [%s] is not a single unit", ErrConversion, q.unit)
	}
	sym := q.unit.Symbols()[0]
	def, ok := q.registry().definition(sym)
	if !ok {
		return nil, fmt.Errorf("%w: [%s] has no definition", ErrConversion, q.unit)
	}
	res, err := replaced(q, sym, q.unit[sym], def)
	if err != nil {
		return nil, err
	}
	res.normal = true
	return res, nil
}

// CheckUnitless returns ErrShouldBeUnitless when q carries a unit.
func (q *Quantity) CheckUnitless() error {
	if !q.unit.IsEmpty() {
		return fmt.Errorf("%w: [%s]", ErrShouldBeUnitless, q.unit)
	}
	return nil
}

// MaxLevel returns the deepest definition level among q's symbols.
func (q *Quantity) MaxLevel() int { return q.registry().MaxLevel(q.unit) }

// checkBasic rejects conversion targets whose value is not exactly one.
func checkBasic(t *Quantity) error {
	if !num.IsOne(t.value) {
		return fmt.Errorf("%w: %s [%s]", ErrNonBasicUnit, t.value, t.unit)
	}
	return nil
}

// IsBasic reports whether q is a pure unit of value one.
func (q *Quantity) IsBasic() bool { return checkBasic(q) == nil }

// SameDimension reports whether q and other can be matched.
func (q *Quantity) SameDimension(other any) bool {
	s, o, err := q.operands(other)
	if err != nil {
		return false
	}
	one := func(x *Quantity) *Quantity { return x.with(num.Int(1), x.unit) }
	_, _, err = matchUnits(one(s), one(o))
	return err == nil
}
