package num

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Sentinel errors for numeric operations.
var (
	// ErrDivisionByZero is returned when an exact (rational) division by zero is attempted.
	ErrDivisionByZero = errors.New("num: division by zero")

	// ErrShapeMismatch is returned when two vectors of different length are combined.
	ErrShapeMismatch = errors.New("num: vector length mismatch")

	// ErrNotOrdered is returned when ordering is requested on a vector.
	ErrNotOrdered = errors.New("num: vectors are not ordered")

	// ErrNotScalar is returned when a scalar was required but a vector was given.
	ErrNotScalar = errors.New("num: value is not a scalar")

	// ErrNotIndexable is returned when indexing a scalar.
	ErrNotIndexable = errors.New("num: value is not indexable")

	// ErrIndexOutOfRange is returned for an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("num: index out of range")

	// ErrUnsupportedType is returned by Coerce for values with no numeric meaning.
	ErrUnsupportedType = errors.New("num: unsupported value type")
)

// Kind orders the numeric representations by promotion rank.
type Kind int

const (
	// KindRat is an exact rational.
	KindRat Kind = iota
	// KindFloat is an IEEE-754 double.
	KindFloat
	// KindVec is a vector of doubles with element-wise arithmetic.
	KindVec
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRat:
		return "rat"
	case KindFloat:
		return "float"
	case KindVec:
		return "vec"
	default:
		return "unknown"
	}
}

// Value is the numeric capability carried by a quantity. The arithmetic is
// provided by the package functions (Add, Sub, Mul, Div, Pow, Cmp, ...),
// which promote operands to the wider Kind first.
type Value interface {
	Kind() Kind
	String() string
}

// Rat is an exact rational. Go integers and *big.Rat coerce to Rat.
// A Rat is immutable; the zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat returns a/b. It panics if b == 0, like big.NewRat.
func NewRat(a, b int64) Rat { return Rat{r: big.NewRat(a, b)} }

// Int returns the integer n as an exact rational.
func Int(n int64) Rat { return Rat{r: new(big.Rat).SetInt64(n)} }

// RatOf copies r into a Rat.
func RatOf(r *big.Rat) Rat {
	if r == nil {
		return Rat{}
	}
	return Rat{r: new(big.Rat).Set(r)}
}

func (x Rat) big() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Big returns a copy of the underlying big.Rat.
func (x Rat) Big() *big.Rat { return new(big.Rat).Set(x.big()) }

// Kind implements Value.
func (Rat) Kind() Kind { return KindRat }

// String renders integers without a denominator ("1000") and fractions as "5/6".
func (x Rat) String() string { return x.big().RatString() }

// Float is a float64 value.
type Float float64

// Kind implements Value.
func (Float) Kind() Kind { return KindFloat }

// String renders the shortest representation that round-trips.
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Vec is a vector of float64 values without an intrinsic unit. Arithmetic
// is element-wise; scalars broadcast. Operations never alias their inputs.
type Vec []float64

// Kind implements Value.
func (Vec) Kind() Kind { return KindVec }

// String renders "[1 2 3]".
func (v Vec) String() string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = Float(f).String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Format renders v with a printf verb applied to each scalar element
// ("%.2f"). An empty verb uses v.String().
func Format(v Value, verb string) string {
	if verb == "" {
		return v.String()
	}
	switch x := v.(type) {
	case Vec:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = fmt.Sprintf(verb, f)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case Rat:
		f, _ := x.big().Float64()
		return fmt.Sprintf(verb, f)
	case Float:
		return fmt.Sprintf(verb, float64(x))
	default:
		return fmt.Sprintf(verb, v)
	}
}
