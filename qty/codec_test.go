package qty_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/qty"
	"github.com/katalvlaran/dimension/unit"
)

func TestEncodeDecode_Identity(t *testing.T) {
	assert.Equal(t, 12.3, qty.Encode(12.3))
	for _, x := range []any{12.3, "x", (*qty.Encoded)(nil)} {
		back, err := qty.Decode(x)
		require.NoError(t, err)
		assert.Equal(t, x, back)
	}
}

func TestEncodeDecode_Quantity(t *testing.T) {
	u := newUnits(t)
	q := qty.Must(u.km.Mul(num.NewRat(3, 2)))

	enc := qty.Encode(q)
	e, ok := enc.(qty.Encoded)
	require.True(t, ok)
	assert.Equal(t, "3/2", e.Value.String())
	assert.True(t, e.Unit.Equal(unit.Base("km")))

	// The encoded form is independent of later changes to q.
	q, err := q.Mul(u.s)
	require.NoError(t, err)
	assert.True(t, e.Unit.Equal(unit.Base("km")))

	decoded, err := qty.Decode(e)
	require.NoError(t, err)
	back, ok := decoded.(*qty.Quantity)
	require.True(t, ok)
	assert.Equal(t, "3/2", back.Value().String())
	assert.True(t, back.Units().Equal(unit.Base("km")))
	assert.False(t, back.IsNormal())
	assert.Same(t, qty.Default(), back.Registry())
}

func TestDecode_RejectsBrokenForms(t *testing.T) {
	_, err := qty.Decode(qty.Encoded{Value: num.Int(1), Unit: unit.Vector{"m": unit.Int(0)}})
	assert.ErrorIs(t, err, unit.ErrZeroExponent)

	_, err = qty.Decode(&qty.Encoded{Unit: unit.Vector{}})
	assert.ErrorIs(t, err, num.ErrUnsupportedType)

	_, err = qty.Decode(qty.Encoded{Value: num.Int(1), Unit: unit.Vector{"": unit.Int(1)}})
	assert.ErrorIs(t, err, unit.ErrEmptySymbol)

	// a nil unit is the empty unit
	decoded, err := qty.Decode(qty.Encoded{Value: num.Int(3)})
	require.NoError(t, err)
	q := decoded.(*qty.Quantity)
	assert.True(t, q.IsUnitless())
	assert.Equal(t, "3 []", q.String())
	less, err := q.Less(4)
	require.NoError(t, err)
	assert.True(t, less)
}

func TestQuantityJSON(t *testing.T) {
	u := newUnits(t)

	cases := []struct {
		name string
		q    *qty.Quantity
		want string
	}{
		{"integer", of(t, 3, u.km), `{"value":3,"unit":{"km":1}}`},
		{"fraction", qty.Must(u.km.Add(u.m)), `{"value":"1001/1000","unit":{"km":1}}`},
		{"float", of(t, 2.0, u.s), `{"value":2.0,"unit":{"s":1}}`},
		{"vector", qty.Must(u.m.Mul([]float64{1, 2.5})), `{"value":[1,2.5],"unit":{"m":1}}`},
		{"compound", qty.Must(of(t, 9.81, u.m).Div(qty.Must(u.s.Pow(2)))), `{"value":9.81,"unit":{"m":1,"s":-2}}`},
		{"unitless", qty.Unitless(7), `{"value":7,"unit":{}}`},
		{"rational exponent", qty.Must(of(t, 4, u.m).Pow(num.NewRat(1, 2))), `{"value":2.0,"unit":{"m":"1/2"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.q)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(b))

			var back qty.Quantity
			require.NoError(t, json.Unmarshal(b, &back))
			assert.True(t, back.Units().Equal(tc.q.Units()))
			assert.Equal(t, tc.q.Value().Kind(), back.Value().Kind())
			assert.True(t, num.Equal(tc.q.Value(), back.Value()))
		})
	}
}

func TestQuantityJSON_Errors(t *testing.T) {
	var q qty.Quantity
	assert.Error(t, json.Unmarshal([]byte(`{"value":true,"unit":{}}`), &q))
	assert.Error(t, json.Unmarshal([]byte(`{"value":1,"unit":{"m":0}}`), &q))
	assert.Error(t, json.Unmarshal([]byte(`{"value":"abc","unit":{}}`), &q))
	assert.Error(t, json.Unmarshal([]byte(`{"value":null,"unit":{}}`), &q))
	assert.Error(t, json.Unmarshal([]byte(`{"unit":{"m":1}}`), &q))

	_, err := json.Marshal(qty.Unitless(math.NaN()))
	assert.Error(t, err)
}

func TestRegistry_DecodeJSON(t *testing.T) {
	u := newUnits(t)

	q, err := u.r.DecodeJSON([]byte(`{"value":1500,"unit":{"m":1}}`))
	require.NoError(t, err)
	assert.Same(t, u.r, q.Registry())
	v, err := q.NumberIn(u.km)
	require.NoError(t, err)
	assert.Equal(t, "3/2", v.String())

	_, err = u.r.DecodeJSON([]byte(`{"value":1,"unit":{"furlong":1}}`))
	assert.ErrorIs(t, err, qty.ErrUnknownUnit)
}
