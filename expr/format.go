package expr

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/qty"
)

// Format renders q as an expression that Parse reads back to an equal
// quantity of the same numeric kind: "1000 m", "kg*m*s^-2", "m^(1/2)".
// Vector values have no expression form and render as "[1 2] m".
func Format(q *qty.Quantity) string {
	u := q.Units()
	syms := u.Symbols()
	parts := make([]string, 0, len(syms))
	for _, sym := range syms {
		e := u[sym]
		switch {
		case e.IsInt() && e.Num() == 1:
			parts = append(parts, sym)
		case e.IsInt():
			parts = append(parts, sym+"^"+e.String())
		default:
			parts = append(parts, sym+"^("+e.String()+")")
		}
	}
	units := strings.Join(parts, "*")

	v := q.Value()
	if _, exact := v.(num.Rat); exact && units != "" && num.IsOne(v) {
		return units
	}
	lit := literal(v)
	if units == "" {
		return lit
	}
	return lit + " " + units
}

func literal(v num.Value) string {
	f, ok := v.(num.Float)
	if !ok {
		return v.String()
	}
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// Symbols lists the identifiers of s in order of first use. It only
// tokenizes: "kg*m/s^2" gives [kg m s] whether or not those are registered.
func Symbols(s string) ([]string, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	var out []string
	seen := make(map[string]bool)
	for _, t := range toks {
		if t.kind == tokIdent && !seen[t.text] {
			seen[t.text] = true
			out = append(out, t.text)
		}
	}
	return out, nil
}

// IsSymbol reports whether s can appear as a unit symbol in an expression.
func IsSymbol(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !isIdentStart(first) {
		return false
	}
	for _, r := range s {
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}
