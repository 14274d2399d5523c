package unit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for vector validation.
var (
	// ErrZeroExponent indicates a stored entry with exponent 0.
	ErrZeroExponent = errors.New("unit: zero exponent stored")

	// ErrEmptySymbol indicates an entry keyed by the empty string.
	ErrEmptySymbol = errors.New("unit: empty symbol")
)

// Vector maps unit symbols to their exponents, e.g. {m:1, s:-2}.
//
// A Vector never stores a zero exponent. Vectors are treated as immutable
// once built: every operation below returns a fresh map.
// The nil Vector is the empty (dimensionless) unit.
type Vector map[string]Exp

// Base returns the vector {sym: 1}.
func Base(sym string) Vector {
	return Vector{sym: Int(1)}
}

// New builds a Vector from integer exponents, dropping zeros.
func New(exps map[string]int64) Vector {
	v := make(Vector, len(exps))
	for sym, e := range exps {
		if e != 0 {
			v[sym] = Int(e)
		}
	}
	return v
}

// Len returns the number of distinct symbols.
func (v Vector) Len() int { return len(v) }

// IsEmpty reports whether v carries no symbol.
func (v Vector) IsEmpty() bool { return len(v) == 0 }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for sym, e := range v {
		out[sym] = e
	}
	return out
}

// Equal reports structural equality: same symbols with the same exponents.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for sym, e := range v {
		if oe, ok := o[sym]; !ok || oe != e {
			return false
		}
	}
	return true
}

// Exp returns the exponent of sym (zero if absent).
func (v Vector) Exp(sym string) Exp { return v[sym] }

// Has reports whether sym is present.
func (v Vector) Has(sym string) bool {
	_, ok := v[sym]
	return ok
}

// Mul returns the product a·b: exponents summed per symbol, zeros dropped.
// It fails with ErrExponentRange when a sum overflows.
func Mul(a, b Vector) (Vector, error) {
	out := a.Clone()
	for sym, e := range b {
		sum, err := out[sym].Add(e)
		if err != nil {
			return nil, fmt.Errorf("unit: %s: %w", sym, err)
		}
		if sum.IsZero() {
			delete(out, sym)
			continue
		}
		out[sym] = sum
	}
	return out, nil
}

// Div returns the quotient a/b.
func Div(a, b Vector) (Vector, error) {
	out := a.Clone()
	for sym, e := range b {
		diff, err := out[sym].Sub(e)
		if err != nil {
			return nil, fmt.Errorf("unit: %s: %w", sym, err)
		}
		if diff.IsZero() {
			delete(out, sym)
			continue
		}
		out[sym] = diff
	}
	return out, nil
}

// Pow multiplies every exponent of v by e. Pow(v, 0) is the empty vector.
func Pow(v Vector, e Exp) (Vector, error) {
	out := make(Vector, len(v))
	if e.IsZero() {
		return out, nil
	}
	for sym, x := range v {
		p, err := x.Mul(e)
		if err != nil {
			return nil, fmt.Errorf("unit: %s: %w", sym, err)
		}
		if p.IsZero() {
			continue
		}
		out[sym] = p
	}
	return out, nil
}

// Without returns a copy of v with sym removed.
func (v Vector) Without(sym string) Vector {
	out := v.Clone()
	delete(out, sym)
	return out
}

// Symbols returns the symbols of v in ascending order.
func (v Vector) Symbols() []string {
	syms := make([]string, 0, len(v))
	for sym := range v {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

// Key returns a canonical string for v ("m^1*s^-2"), suitable as a map key.
func (v Vector) Key() string {
	var b strings.Builder
	for i, sym := range v.Symbols() {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(sym)
		b.WriteByte('^')
		b.WriteString(v[sym].String())
	}
	return b.String()
}

// Validate checks the no-zero-exponent and non-empty-symbol invariants.
func (v Vector) Validate() error {
	for sym, e := range v {
		if sym == "" {
			return ErrEmptySymbol
		}
		if e.IsZero() {
			return fmt.Errorf("%w: %q", ErrZeroExponent, sym)
		}
	}
	return nil
}

// String renders v in the default style: "kg.m/s2", "1/s", "" for empty.
func (v Vector) String() string {
	var numer, denom []string
	for _, sym := range v.Symbols() {
		e := v[sym]
		if e.Sign() > 0 {
			numer = append(numer, sym+expSuffix(e))
		} else {
			denom = append(denom, sym+expSuffix(e.Neg()))
		}
	}
	out := strings.Join(numer, ".")
	if len(denom) > 0 {
		if out == "" {
			out = "1"
		}
		out += "/" + strings.Join(denom, ".")
	}
	return out
}

func expSuffix(e Exp) string {
	switch {
	case e == Int(1):
		return ""
	case e.IsInt():
		return e.String()
	default:
		return "(" + e.String() + ")"
	}
}
