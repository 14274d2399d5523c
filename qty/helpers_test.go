package qty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/qty"
)

// units is a small fixture registry:
//
//	m, s, g     base
//	km = 1000 m, cm = m/100, mm = m/1000
//	kg = 1000 g
//	N = kg.m/s2, J = N.m, Pa = N/m2
//	min = 60 s, h = 60 min
//	percent = 1/100 (unitless)
type units struct {
	r                     *qty.Registry
	m, s, g               *qty.Quantity
	km, cm, mm, kg        *qty.Quantity
	N, J, Pa, min, h, pct *qty.Quantity
}

func newUnits(t testing.TB) *units {
	t.Helper()
	r := qty.NewRegistry()
	u := &units{r: r}

	u.m = r.MustUnit("m", qty.Base, "meter")
	u.s = r.MustUnit("s", qty.Base, "second")
	u.g = r.MustUnit("g", qty.Base, "gram")

	u.km = r.MustUnit("km", qty.Must(u.m.Mul(1000)), "kilometer")
	u.cm = r.MustUnit("cm", qty.Must(u.m.Div(100)), "centimeter")
	u.mm = r.MustUnit("mm", qty.Must(u.m.Div(1000)), "millimeter")
	u.kg = r.MustUnit("kg", qty.Must(u.g.Mul(1000)), "kilogram")

	s2 := qty.Must(u.s.Pow(2))
	u.N = r.MustUnit("N", qty.Must(qty.Must(u.kg.Mul(u.m)).Div(s2)), "newton")
	u.J = r.MustUnit("J", qty.Must(u.N.Mul(u.m)), "joule")
	u.Pa = r.MustUnit("Pa", qty.Must(u.N.Div(qty.Must(u.m.Pow(2)))), "pascal")

	u.min = r.MustUnit("min", qty.Must(u.s.Mul(60)), "minute")
	u.h = r.MustUnit("h", qty.Must(u.min.Mul(60)), "hour")
	u.pct = r.MustUnit("percent", num.NewRat(1, 100), "percent")

	require.Equal(t, 13, r.Len())
	return u
}

// of returns v·unit.
func of(t testing.TB, v any, unit *qty.Quantity) *qty.Quantity {
	t.Helper()
	q, err := unit.Mul(v)
	require.NoError(t, err)
	return q
}

func number(t testing.TB, q *qty.Quantity) string {
	t.Helper()
	v, err := q.Number()
	require.NoError(t, err)
	return v.String()
}

func floatOf(t testing.TB, v num.Value) float64 {
	t.Helper()
	f, err := num.Float64(v)
	require.NoError(t, err)
	return f
}
