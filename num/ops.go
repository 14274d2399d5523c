package num

import (
	"fmt"
	"math"
	"math/big"

	"gonum.org/v1/gonum/floats"
)

// maxExactPower bounds the integer exponent computed exactly on rationals.
const maxExactPower = 1 << 12

// binaryOp bundles the per-kind implementations of one arithmetic operator.
type binaryOp struct {
	name string
	rat  func(x, y *big.Rat) (*big.Rat, error)
	flt  func(x, y float64) float64
	vec  func(dst, x, y []float64)
}

var (
	opAdd = binaryOp{
		name: "add",
		rat:  func(x, y *big.Rat) (*big.Rat, error) { return new(big.Rat).Add(x, y), nil },
		flt:  func(x, y float64) float64 { return x + y },
		vec:  func(dst, x, y []float64) { floats.AddTo(dst, x, y) },
	}
	opSub = binaryOp{
		name: "sub",
		rat:  func(x, y *big.Rat) (*big.Rat, error) { return new(big.Rat).Sub(x, y), nil },
		flt:  func(x, y float64) float64 { return x - y },
		vec:  func(dst, x, y []float64) { floats.SubTo(dst, x, y) },
	}
	opMul = binaryOp{
		name: "mul",
		rat:  func(x, y *big.Rat) (*big.Rat, error) { return new(big.Rat).Mul(x, y), nil },
		flt:  func(x, y float64) float64 { return x * y },
		vec:  func(dst, x, y []float64) { floats.MulTo(dst, x, y) },
	}
	opDiv = binaryOp{
		name: "div",
		rat: func(x, y *big.Rat) (*big.Rat, error) {
			if y.Sign() == 0 {
				return nil, ErrDivisionByZero
			}
			return new(big.Rat).Quo(x, y), nil
		},
		flt: func(x, y float64) float64 { return x / y },
		vec: func(dst, x, y []float64) { floats.DivTo(dst, x, y) },
	}
	opFloorDiv = binaryOp{
		name: "floordiv",
		rat: func(x, y *big.Rat) (*big.Rat, error) {
			if y.Sign() == 0 {
				return nil, ErrDivisionByZero
			}
			q := new(big.Rat).Quo(x, y)
			// big.Int.Div is Euclidean; with a positive denominator that is floor.
			fl := new(big.Int).Div(q.Num(), q.Denom())
			return new(big.Rat).SetInt(fl), nil
		},
		flt: func(x, y float64) float64 { return math.Floor(x / y) },
		vec: func(dst, x, y []float64) {
			floats.DivTo(dst, x, y)
			for i := range dst {
				dst[i] = math.Floor(dst[i])
			}
		},
	}
	opPow = binaryOp{
		name: "pow",
		rat:  ratPow,
		flt:  math.Pow,
		vec: func(dst, x, y []float64) {
			for i := range dst {
				dst[i] = math.Pow(x[i], y[i])
			}
		},
	}
)

// Add returns a + b.
func Add(a, b Value) (Value, error) { return apply(opAdd, a, b) }

// Sub returns a - b.
func Sub(a, b Value) (Value, error) { return apply(opSub, a, b) }

// Mul returns a * b.
func Mul(a, b Value) (Value, error) { return apply(opMul, a, b) }

// Div returns a / b. Rational division by zero fails with ErrDivisionByZero;
// float division follows IEEE-754.
func Div(a, b Value) (Value, error) { return apply(opDiv, a, b) }

// FloorDiv returns floor(a / b).
func FloorDiv(a, b Value) (Value, error) { return apply(opFloorDiv, a, b) }

// Pow returns a ** b. Rational bases with small integral rational exponents
// stay exact; everything else goes through math.Pow.
func Pow(a, b Value) (Value, error) { return apply(opPow, a, b) }

func ratPow(x, y *big.Rat) (*big.Rat, error) {
	if !y.IsInt() || !y.Num().IsInt64() {
		return nil, errInexact
	}
	n := y.Num().Int64()
	if n > maxExactPower || n < -maxExactPower {
		return nil, errInexact
	}
	if n < 0 {
		if x.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		x = new(big.Rat).Inv(x)
		n = -n
	}
	e := big.NewInt(n)
	num := new(big.Int).Exp(x.Num(), e, nil)
	den := new(big.Int).Exp(x.Denom(), e, nil)
	return new(big.Rat).SetFrac(num, den), nil
}

// errInexact tells apply to fall back to float arithmetic.
var errInexact = fmt.Errorf("num: inexact")

func apply(op binaryOp, a, b Value) (Value, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand to %s", ErrUnsupportedType, op.name)
	}
	switch maxKind(a.Kind(), b.Kind()) {
	case KindRat:
		r, err := op.rat(a.(Rat).big(), b.(Rat).big())
		if err == errInexact {
			return Float(op.flt(toFloat(a), toFloat(b))), nil
		}
		if err != nil {
			return nil, err
		}
		return Rat{r: r}, nil
	case KindFloat:
		return Float(op.flt(toFloat(a), toFloat(b))), nil
	default:
		x, y, err := broadcast(a, b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.name, err)
		}
		dst := make([]float64, len(x))
		op.vec(dst, x, y)
		return Vec(dst), nil
	}
}

func maxKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

func toFloat(v Value) float64 {
	switch x := v.(type) {
	case Rat:
		f, _ := x.big().Float64()
		return f
	case Float:
		return float64(x)
	}
	return math.NaN()
}

// broadcast returns two equal-length slices for element-wise evaluation.
func broadcast(a, b Value) ([]float64, []float64, error) {
	av, aVec := a.(Vec)
	bv, bVec := b.(Vec)
	switch {
	case aVec && bVec:
		if len(av) != len(bv) {
			return nil, nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(av), len(bv))
		}
		return av, bv, nil
	case aVec:
		return av, fill(len(av), toFloat(b)), nil
	default:
		return fill(len(bv), toFloat(a)), bv, nil
	}
}

func fill(n int, f float64) []float64 {
	out := make([]float64, n)
	floats.AddConst(f, out)
	return out
}

// Neg returns -v.
func Neg(v Value) Value {
	switch x := v.(type) {
	case Rat:
		return Rat{r: new(big.Rat).Neg(x.big())}
	case Float:
		return -x
	case Vec:
		out := append([]float64(nil), x...)
		floats.Scale(-1, out)
		return Vec(out)
	}
	return v
}

// Abs returns |v| element-wise.
func Abs(v Value) Value {
	switch x := v.(type) {
	case Rat:
		return Rat{r: new(big.Rat).Abs(x.big())}
	case Float:
		return Float(math.Abs(float64(x)))
	case Vec:
		out := make([]float64, len(x))
		for i, f := range x {
			out[i] = math.Abs(f)
		}
		return Vec(out)
	}
	return v
}

// Cmp compares two scalars, returning -1, 0 or +1. Vectors are not ordered.
func Cmp(a, b Value) (int, error) {
	if a.Kind() == KindVec || b.Kind() == KindVec {
		return 0, ErrNotOrdered
	}
	if a.Kind() == KindRat && b.Kind() == KindRat {
		return a.(Rat).big().Cmp(b.(Rat).big()), nil
	}
	x, y := toFloat(a), toFloat(b)
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

// Equal reports numeric equality. It never fails: vectors of different
// length are simply unequal, and a vector equals a scalar only when every
// element does.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() == KindRat && b.Kind() == KindRat {
		return a.(Rat).big().Cmp(b.(Rat).big()) == 0
	}
	if a.Kind() != KindVec && b.Kind() != KindVec {
		return toFloat(a) == toFloat(b)
	}
	x, y, err := broadcast(a, b)
	if err != nil {
		return false
	}
	return floats.Equal(x, y)
}

// IsZero reports whether v is zero (every element, for vectors).
func IsZero(v Value) bool {
	switch x := v.(type) {
	case Rat:
		return x.big().Sign() == 0
	case Float:
		return x == 0
	case Vec:
		for _, f := range x {
			if f != 0 {
				return false
			}
		}
		return true
	}
	return false
}

// IsOne reports whether v is the scalar 1.
func IsOne(v Value) bool {
	switch x := v.(type) {
	case Rat:
		return x.big().Cmp(big.NewRat(1, 1)) == 0
	case Float:
		return x == 1
	}
	return false
}

// Float64 converts a scalar to float64.
func Float64(v Value) (float64, error) {
	if v == nil || v.Kind() == KindVec {
		return 0, ErrNotScalar
	}
	return toFloat(v), nil
}

// ToRat returns the exact rational value of a scalar.
func ToRat(v Value) (*big.Rat, error) {
	switch x := v.(type) {
	case Rat:
		return x.Big(), nil
	case Float:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil, fmt.Errorf("%w: %v has no rational form", ErrUnsupportedType, x)
		}
		return new(big.Rat).SetFloat64(float64(x)), nil
	}
	return nil, ErrNotScalar
}

// Len returns the number of elements of a vector.
func Len(v Value) (int, error) {
	if x, ok := v.(Vec); ok {
		return len(x), nil
	}
	return 0, ErrNotIndexable
}

// Index returns element i of a vector as a Float.
func Index(v Value, i int) (Value, error) {
	x, ok := v.(Vec)
	if !ok {
		return nil, ErrNotIndexable
	}
	if i < 0 || i >= len(x) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(x))
	}
	return Float(x[i]), nil
}

// SetIndex stores the scalar s at position i of vector v, in place.
func SetIndex(v Value, i int, s Value) error {
	x, ok := v.(Vec)
	if !ok {
		return ErrNotIndexable
	}
	if i < 0 || i >= len(x) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(x))
	}
	f, err := Float64(s)
	if err != nil {
		return err
	}
	x[i] = f
	return nil
}
