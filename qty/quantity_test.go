package qty_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/qty"
	"github.com/katalvlaran/dimension/unit"
)

func TestScenarios(t *testing.T) {
	u := newUnits(t)

	// 1 km in m.
	v, err := of(t, 1, u.km).NumberIn(u.m)
	require.NoError(t, err)
	assert.Equal(t, "1000", v.String())

	// 2 g is not a conversion target.
	_, err = u.kg.NumberIn(of(t, 2, u.g))
	assert.ErrorIs(t, err, qty.ErrNonBasicUnit)

	// 1 kg in g.
	v, err = u.kg.NumberIn(u.g)
	require.NoError(t, err)
	assert.Equal(t, "1000", v.String())

	// N == kg.m/s2.
	rhs := qty.Must(qty.Must(u.kg.Mul(u.m)).Div(qty.Must(u.s.Pow(2))))
	assert.True(t, u.N.Equal(rhs))
	assert.True(t, rhs.Equal(u.N))

	// 5 m + 3 kg.
	_, err = of(t, 5, u.m).Add(of(t, 3, u.kg))
	assert.ErrorIs(t, err, qty.ErrIncompatibleUnits)
}

func TestAddSub_MatchUnits(t *testing.T) {
	u := newUnits(t)

	sum, err := u.km.Add(u.m)
	require.NoError(t, err)
	assert.Equal(t, "1001/1000", sum.Value().String())
	assert.True(t, sum.Units().Equal(unit.Base("km")))

	// The deeper unit wins regardless of operand order.
	sum, err = u.m.Add(u.km)
	require.NoError(t, err)
	assert.Equal(t, "1001/1000", sum.Value().String())
	assert.True(t, sum.Units().Equal(unit.Base("km")))

	diff, err := u.km.Sub(u.m)
	require.NoError(t, err)
	assert.Equal(t, "999/1000", diff.Value().String())

	// Raw numbers only combine with unitless quantities.
	_, err = u.m.Add(1)
	assert.ErrorIs(t, err, qty.ErrIncompatibleUnits)
	n, err := qty.Unitless(2).Add(3)
	require.NoError(t, err)
	assert.Equal(t, "5", n.Value().String())
}

func TestMulDiv(t *testing.T) {
	u := newUnits(t)

	area, err := of(t, 2, u.m).Mul(of(t, 3, u.s))
	require.NoError(t, err)
	assert.Equal(t, "6", area.Value().String())
	if diff := cmp.Diff(unit.New(map[string]int64{"m": 1, "s": 1}), area.Units()); diff != "" {
		t.Errorf("unit mismatch (-want +got):\n%s", diff)
	}

	scaled, err := of(t, 2, u.m).Mul(3)
	require.NoError(t, err)
	assert.Equal(t, "6", scaled.Value().String())
	assert.True(t, scaled.Units().Equal(unit.Base("m")))

	speed, err := of(t, 6, u.m).Div(of(t, 4, u.s))
	require.NoError(t, err)
	assert.Equal(t, "3/2", speed.Value().String())
	assert.Equal(t, "m/s", speed.Units().String())

	floor, err := of(t, 7, u.m).FloorDiv(of(t, 2, u.s))
	require.NoError(t, err)
	assert.Equal(t, "3", floor.Value().String())
	assert.Equal(t, "m/s", floor.Units().String())

	inv, err := qty.Unitless(1).Div(u.s)
	require.NoError(t, err)
	assert.Equal(t, "1/s", inv.Units().String())

	_, err = u.m.Div(0)
	assert.ErrorIs(t, err, num.ErrDivisionByZero)
}

func TestMul_CancelsUnits(t *testing.T) {
	u := newUnits(t)
	q, err := of(t, 5, u.m).Div(u.m)
	require.NoError(t, err)
	assert.True(t, q.IsUnitless())
	assert.Equal(t, 0, q.Units().Len())
}

func TestPow(t *testing.T) {
	u := newUnits(t)

	sq, err := of(t, 2, u.m).Pow(2)
	require.NoError(t, err)
	assert.Equal(t, "4", sq.Value().String())
	assert.Equal(t, "m2", sq.Units().String())

	root, err := sq.Pow(num.NewRat(1, 2))
	require.NoError(t, err)
	assert.True(t, root.Equal(of(t, 2, u.m)))
	assert.Equal(t, "m", root.Units().String())

	root, err = sq.Pow(0.5)
	require.NoError(t, err)
	assert.Equal(t, "m", root.Units().String())

	// An exponent that simplifies to a number is accepted: 200 % = 2.
	cube, err := of(t, 3, u.m).Pow(of(t, 200, u.pct))
	require.NoError(t, err)
	assert.Equal(t, "9", cube.Value().String())
	assert.Equal(t, "m2", cube.Units().String())

	one, err := u.m.Pow(0)
	require.NoError(t, err)
	assert.True(t, one.IsUnitless())
	assert.Equal(t, "1", one.Value().String())

	_, err = u.m.Pow(u.s)
	assert.ErrorIs(t, err, qty.ErrShouldBeUnitless)

	_, err = u.m.Pow([]float64{1, 2})
	assert.ErrorIs(t, err, num.ErrNotScalar)
}

func TestPow_ExponentOverflow(t *testing.T) {
	u := newUnits(t)

	huge, err := u.m.Pow(1 << 32)
	require.NoError(t, err)
	require.NoError(t, huge.Units().Validate())

	_, err = huge.Pow(1 << 32)
	assert.ErrorIs(t, err, unit.ErrExponentRange)
	_, err = huge.Pow(1 << 31)
	assert.ErrorIs(t, err, unit.ErrExponentRange)

	top, err := u.m.Pow(int64(math.MaxInt64))
	require.NoError(t, err)
	_, err = top.Mul(u.m)
	assert.ErrorIs(t, err, unit.ErrExponentRange)
	_, err = qty.Must(top.Neg().Pow(-1)).Div(u.m)
	assert.ErrorIs(t, err, unit.ErrExponentRange)
}

func TestUnaryAndPredicates(t *testing.T) {
	u := newUnits(t)
	q := of(t, -3, u.km)

	assert.Equal(t, "3", q.Neg().Value().String())
	assert.Equal(t, "3", q.Abs().Value().String())
	assert.Equal(t, "-3", q.Pos().Value().String())
	assert.True(t, q.Neg().Units().Equal(q.Units()))

	assert.False(t, q.IsZero())
	assert.True(t, of(t, 0, u.km).IsZero())
	assert.False(t, q.IsBasic())

	unitOf := q.Unit()
	assert.Equal(t, "1", unitOf.Value().String())
	assert.True(t, unitOf.Units().Equal(unit.Base("km")))
}

func TestCompare(t *testing.T) {
	u := newUnits(t)

	gt, err := u.km.Greater(of(t, 999, u.m))
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := u.km.Less(of(t, 1001, u.m))
	require.NoError(t, err)
	assert.True(t, lt)

	le, err := of(t, 60, u.min).LessEq(u.h)
	require.NoError(t, err)
	assert.True(t, le)

	ge, err := u.h.GreaterEq(of(t, 3600, u.s))
	require.NoError(t, err)
	assert.True(t, ge)

	c, err := u.h.Cmp(of(t, 3601, u.s))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = u.m.Less(u.s)
	assert.ErrorIs(t, err, qty.ErrIncompatibleUnits)

	_, err = u.m.Mul([]float64{1, 2})
	require.NoError(t, err)
	_, err = qty.Must(u.m.Mul([]float64{1, 2})).Less(u.m)
	assert.ErrorIs(t, err, num.ErrNotOrdered)
}

func TestEqual_NeverFails(t *testing.T) {
	u := newUnits(t)

	assert.True(t, of(t, 1000, u.m).Equal(u.km))
	assert.False(t, of(t, 5, u.m).Equal(of(t, 5, u.kg)))
	assert.True(t, of(t, 5, u.m).NotEqual(of(t, 5, u.kg)))
	assert.False(t, u.m.Equal("m"))
	assert.False(t, u.m.Equal((*qty.Quantity)(nil)))
	assert.True(t, qty.Unitless(2).Equal(2))

	other := qty.NewRegistry().MustUnit("m", qty.Base, "")
	assert.False(t, u.m.Equal(other))
	_, err := u.m.Add(other)
	assert.ErrorIs(t, err, qty.ErrRegistryMismatch)
}

func TestZeroMatchesAnyUnit(t *testing.T) {
	u := newUnits(t)

	sum, err := of(t, 0, u.m).Add(of(t, 3, u.kg))
	require.NoError(t, err)
	assert.Equal(t, "3", sum.Value().String())
	assert.True(t, sum.Units().Equal(unit.Base("kg")))

	sum, err = of(t, 3, u.kg).Add(of(t, 0, u.m))
	require.NoError(t, err)
	assert.True(t, sum.Units().Equal(unit.Base("kg")))

	assert.True(t, of(t, 0, u.m).Equal(of(t, 0, u.s)))
}

func TestMatchUnits_OrderIndependent(t *testing.T) {
	u := newUnits(t)
	pairs := [][2]*qty.Quantity{
		{of(t, 3, u.km), of(t, 5, u.m)},
		{of(t, 2, u.h), of(t, 30, u.min)},
		{u.N, qty.Must(qty.Must(u.kg.Mul(u.m)).Div(qty.Must(u.s.Pow(2))))},
		{of(t, 7, u.J), qty.Must(u.N.Mul(of(t, 2, u.cm)))},
	}
	for _, p := range pairs {
		a1, b1, err := p[0].MatchUnits(p[1])
		require.NoError(t, err)
		b2, a2, err := p[1].MatchUnits(p[0])
		require.NoError(t, err)

		assert.True(t, a1.Units().Equal(b1.Units()))
		assert.True(t, a1.Units().Equal(a2.Units()), "%s vs %s", a1.Units(), a2.Units())
		assert.True(t, num.Equal(a1.Value(), a2.Value()))
		assert.True(t, num.Equal(b1.Value(), b2.Value()))
	}
}

func TestMatchUnits_DoesNotMutate(t *testing.T) {
	u := newUnits(t)
	a, b := of(t, 3, u.km), of(t, 5, u.m)
	_, _, err := a.MatchUnits(b)
	require.NoError(t, err)
	assert.Equal(t, "3", a.Value().String())
	assert.Equal(t, "km", a.Units().String())
	assert.Equal(t, "5", b.Value().String())
	assert.Equal(t, "m", b.Units().String())
}

func TestRoundTripMulDiv(t *testing.T) {
	u := newUnits(t)
	for _, q := range []*qty.Quantity{of(t, 5, u.km), of(t, 2.5, u.N), of(t, num.NewRat(1, 3), u.h)} {
		for _, unitQ := range []*qty.Quantity{u.s, u.kg, u.Pa, u.km} {
			back, err := qty.Must(q.Mul(unitQ)).Div(unitQ)
			require.NoError(t, err)
			assert.True(t, back.Equal(q))
			assert.True(t, back.Units().Equal(q.Units()))
			assert.True(t, num.Equal(back.Value(), q.Value()))
		}
	}
}

func TestSimplify(t *testing.T) {
	u := newUnits(t)

	q := qty.Must(of(t, 3, u.km).Div(u.m))
	assert.Equal(t, "3000", number(t, q))
	assert.Equal(t, "km/m", q.Units().String(), "Number does not mutate")

	same, err := q.SimplifyUnit()
	require.NoError(t, err)
	assert.Same(t, q, same)
	assert.True(t, q.IsUnitless())
	assert.Equal(t, "3000", q.Value().String())

	// J/N collapses to m.
	jn, err := qty.Must(u.J.Div(u.N)).Simplified()
	require.NoError(t, err)
	assert.Equal(t, "m", jn.Units().String())
	assert.Equal(t, "1", jn.Value().String())

	// h/s collapses to a number.
	hs, err := qty.Must(u.h.Div(u.s)).Simplified()
	require.NoError(t, err)
	assert.True(t, hs.IsUnitless())
	assert.Equal(t, "3600", hs.Value().String())
}

func TestSimplify_Idempotent(t *testing.T) {
	u := newUnits(t)
	inputs := []*qty.Quantity{
		qty.Must(u.J.Div(u.N)),
		qty.Must(of(t, 2, u.h).Div(u.min)),
		qty.Must(u.Pa.Mul(u.m)),
		qty.Must(u.kg.Mul(u.km)),
		of(t, 50, u.pct),
	}
	for _, in := range inputs {
		for _, opts := range [][]qty.SimplifyOption{nil, {qty.WithForDisplay()}} {
			once, err := in.Simplified(opts...)
			require.NoError(t, err)
			twice, err := once.Simplified(opts...)
			require.NoError(t, err)
			assert.True(t, once.Units().Equal(twice.Units()), "%s", in.Units())
			assert.True(t, num.Equal(once.Value(), twice.Value()))
		}
	}
}

func TestSimplify_ForDisplayKeepsSingleUnit(t *testing.T) {
	u := newUnits(t)
	half := of(t, 50, u.pct)

	plain, err := half.Simplified()
	require.NoError(t, err)
	assert.True(t, plain.IsUnitless())
	assert.Equal(t, "1/2", plain.Value().String())

	shown, err := half.Simplified(qty.WithForDisplay())
	require.NoError(t, err)
	assert.Equal(t, "percent", shown.Units().String())
	assert.True(t, shown.IsNormal())

	canon, err := half.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "percent", canon.Units().String())
	assert.False(t, half.IsNormal(), "Canonical leaves the receiver alone")

	require.NoError(t, half.Materialize())
	assert.True(t, half.IsNormal())
	again, err := half.Canonical()
	require.NoError(t, err)
	assert.Same(t, half, again)
}

func TestNumberIn(t *testing.T) {
	u := newUnits(t)

	v, err := of(t, 2, u.h).NumberIn(u.min)
	require.NoError(t, err)
	assert.Equal(t, "120", v.String())

	v, err = qty.Must(of(t, 3, u.km).Div(u.m)).NumberIn(1000)
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())

	_, err = u.m.NumberIn(2)
	assert.ErrorIs(t, err, qty.ErrShouldBeUnitless)

	_, err = u.m.NumberIn(u.s)
	assert.ErrorIs(t, err, qty.ErrIncompatibleUnits)

	f, err := of(t, 50, u.pct).Float64()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f, 1e-12)

	_, err = u.m.Float64()
	assert.ErrorIs(t, err, qty.ErrShouldBeUnitless)
}

func TestCastUnit(t *testing.T) {
	u := newUnits(t)

	s, err := u.h.CastUnit(u.s)
	require.NoError(t, err)
	assert.Equal(t, "3600", s.Value().String())
	assert.Equal(t, "s", s.Units().String())
	assert.True(t, s.IsNormal())

	cm, err := of(t, 2, u.m).CastUnit(u.cm)
	require.NoError(t, err)
	assert.Equal(t, "200", cm.Value().String())

	_, err = u.h.CastUnit(of(t, 2, u.s))
	assert.ErrorIs(t, err, qty.ErrNonBasicUnit)

	_, err = u.h.CastUnit(u.m)
	assert.ErrorIs(t, err, qty.ErrIncompatibleUnits)
}

func TestConverted(t *testing.T) {
	u := newUnits(t)

	n, err := u.N.Converted()
	require.NoError(t, err)
	assert.Equal(t, "kg.m/s2", n.Units().String())
	assert.Equal(t, "1", n.Value().String())

	cm2, err := qty.Must(u.cm.Pow(2)).Converted()
	require.NoError(t, err)
	assert.Equal(t, "1/10000", cm2.Value().String())
	assert.Equal(t, "m2", cm2.Units().String())

	_, err = u.m.Converted()
	assert.ErrorIs(t, err, qty.ErrConversion)

	_, err = qty.Must(u.J.Div(u.s)).Converted()
	assert.ErrorIs(t, err, qty.ErrConversion)
}

func TestSameDimension(t *testing.T) {
	u := newUnits(t)
	assert.True(t, of(t, 5, u.km).SameDimension(u.cm))
	assert.True(t, u.J.SameDimension(qty.Must(u.Pa.Mul(qty.Must(u.m.Pow(3))))))
	assert.False(t, u.J.SameDimension(u.N))
	assert.False(t, u.m.SameDimension("x"))
}

func TestVectorValues(t *testing.T) {
	u := newUnits(t)
	v := qty.Must(u.m.Mul([]float64{1, 2, 3}))

	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, v.SetIndex(0, u.km))
	e, err := v.Index(0)
	require.NoError(t, err)
	assert.True(t, e.Equal(u.km))
	assert.Equal(t, "m", e.Units().String())

	err = v.SetIndex(1, u.s)
	assert.ErrorIs(t, err, qty.ErrIncompatibleUnits)

	_, err = u.m.Len()
	assert.ErrorIs(t, err, num.ErrNotIndexable)

	sum, err := v.Add(u.m)
	require.NoError(t, err)
	assert.Equal(t, num.Vec{1001, 3, 4}, sum.Value())
}

func TestCoerce(t *testing.T) {
	q, err := qty.Coerce(3)
	require.NoError(t, err)
	assert.True(t, q.IsUnitless())

	_, err = qty.Coerce((*qty.Quantity)(nil))
	assert.ErrorIs(t, err, qty.ErrNilQuantity)

	_, err = qty.Coerce("3")
	assert.ErrorIs(t, err, num.ErrUnsupportedType)

	_, err = qty.New(1, unit.Vector{"m": unit.Exp{}})
	assert.True(t, errors.Is(err, unit.ErrZeroExponent))
}
