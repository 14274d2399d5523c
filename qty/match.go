package qty

import (
	"fmt"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/unit"
)

// MatchUnits returns (q', o') expressing q and other in one common unit.
//
// Preference goes to the operand with fewer distinct symbols and, on a tie,
// to the one whose deepest symbol sits higher in the registry (km over m).
// The other operand is divided by one unit of the preferred vector and
// simplified; any residual unit means the dimensions differ and
// ErrIncompatibleUnits is returned. A zero-valued operand adopts the unit of
// the other without conversion. Neither input is modified.
func (q *Quantity) MatchUnits(other any) (*Quantity, *Quantity, error) {
	s, o, err := q.operands(other)
	if err != nil {
		return nil, nil, err
	}
	return matchUnits(s, o)
}

func matchUnits(s, o *Quantity) (*Quantity, *Quantity, error) {
	// 1. Same unit: nothing to convert
	if s.unit.Equal(o.unit) {
		return s, o, nil
	}
	// 2. Zero is dimension-free and adopts the other unit
	if num.IsZero(s.value) {
		return s.with(s.value, o.unit.Clone()), o, nil
	}
	if num.IsZero(o.value) {
		return s, o.with(o.value, s.unit.Clone()), nil
	}

	// 3. Prefer fewer symbols, then the deeper unit
	r := s.registry()
	preferred, converted := s, o
	sLen, oLen := s.unit.Len(), o.unit.Len()
	revert := sLen > oLen || (sLen == oLen && r.MaxLevel(s.unit) < r.MaxLevel(o.unit))
	if revert {
		preferred, converted = o, s
	}

	// 4. converted in units of preferred must simplify to a bare number
	rest, err := unit.Div(converted.unit, preferred.unit)
	if err != nil {
		return nil, nil, err
	}
	ratio := converted.with(converted.value, rest)
	if err := ratio.simplify(simplifyOptions{}); err != nil {
		return nil, nil, err
	}
	if !ratio.unit.IsEmpty() {
		return nil, nil, fmt.Errorf("%w: [%s] and [%s]", ErrIncompatibleUnits, s.unit, o.unit)
	}
	// 5. That number is the converted value in the preferred unit
	matched := converted.with(ratio.value, preferred.unit.Clone())

	if revert {
		return matched, preferred, nil
	}
	return preferred, matched, nil
}
