package unit

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrExponentRange is returned when a rational exponent cannot be held in
// int64 numerator/denominator form.
var ErrExponentRange = errors.New("unit: exponent out of range")

// maxFloatDenominator bounds the continued-fraction search in ExpFromFloat.
const maxFloatDenominator = 10000

// Exp is a rational unit exponent kept in lowest terms.
//
// The zero value is the exponent 0. Non-zero exponents always carry a
// positive denominator, so two equal exponents compare equal with ==.
type Exp struct {
	num int64
	den int64
}

// Int returns the integer exponent n.
func Int(n int64) Exp {
	if n == 0 {
		return Exp{}
	}
	return Exp{num: n, den: 1}
}

// Frac returns the exponent n/d in lowest terms. It panics if d == 0.
func Frac(n, d int64) Exp {
	if d == 0 {
		panic("unit: Frac: zero denominator")
	}
	return normalize(n, d)
}

// ExpFromRat converts r into an Exp, failing with ErrExponentRange when the
// reduced numerator or denominator does not fit in int64.
func ExpFromRat(r *big.Rat) (Exp, error) {
	if r == nil {
		return Exp{}, nil
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Exp{}, fmt.Errorf("%w: %s", ErrExponentRange, r.RatString())
	}
	return checked(r.Num().Int64(), r.Denom().Int64())
}

// checked is normalize for values that may come from outside: MinInt64 has
// no negation, so it is out of range.
func checked(n, d int64) (Exp, error) {
	if n == math.MinInt64 || d == math.MinInt64 {
		return Exp{}, fmt.Errorf("%w: %d/%d", ErrExponentRange, n, d)
	}
	return normalize(n, d), nil
}

// ExpFromFloat finds the rational with denominator <= 10000 equal to f
// (within 1e-12). Integral values map exactly.
func ExpFromFloat(f float64) (Exp, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Exp{}, fmt.Errorf("%w: %v", ErrExponentRange, f)
	}
	if f == math.Trunc(f) {
		if math.Abs(f) > math.MaxInt64/2 {
			return Exp{}, fmt.Errorf("%w: %v", ErrExponentRange, f)
		}
		return Int(int64(f)), nil
	}

	// continued-fraction convergents h/k
	var h0, h1, k0, k1 int64 = 0, 1, 1, 0
	x := f
	for i := 0; i < 64; i++ {
		a := math.Floor(x)
		if math.Abs(a) > math.MaxInt32 {
			break
		}
		ai := int64(a)
		h0, h1 = h1, ai*h1+h0
		k0, k1 = k1, ai*k1+k0
		if k1 > maxFloatDenominator {
			break
		}
		if math.Abs(float64(h1)/float64(k1)-f) < 1e-12 {
			return normalize(h1, k1), nil
		}
		frac := x - a
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	return Exp{}, fmt.Errorf("%w: %v has no small rational form", ErrExponentRange, f)
}

// ParseExp parses "2", "-3" or "1/2".
func ParseExp(s string) (Exp, error) {
	s = strings.TrimSpace(s)
	if n, d, ok := strings.Cut(s, "/"); ok {
		nn, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return Exp{}, fmt.Errorf("unit: bad exponent %q: %w", s, err)
		}
		dd, err := strconv.ParseInt(strings.TrimSpace(d), 10, 64)
		if err != nil {
			return Exp{}, fmt.Errorf("unit: bad exponent %q: %w", s, err)
		}
		if dd == 0 {
			return Exp{}, fmt.Errorf("%w: zero denominator in %q", ErrExponentRange, s)
		}
		return checked(nn, dd)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Exp{}, fmt.Errorf("unit: bad exponent %q: %w", s, err)
	}
	return checked(n, 1)
}

func normalize(n, d int64) Exp {
	if n == 0 {
		return Exp{}
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs64(n), d)
	return Exp{num: n / g, den: d / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Num returns the numerator.
func (e Exp) Num() int64 { return e.num }

// Den returns the denominator (1 for the zero exponent).
func (e Exp) Den() int64 {
	if e.den == 0 {
		return 1
	}
	return e.den
}

// IsZero reports whether e == 0.
func (e Exp) IsZero() bool { return e.num == 0 }

// IsInt reports whether e has no fractional part.
func (e Exp) IsInt() bool { return e.Den() == 1 }

// Sign returns -1, 0 or +1.
func (e Exp) Sign() int {
	switch {
	case e.num < 0:
		return -1
	case e.num > 0:
		return 1
	}
	return 0
}

// Add returns e + o, or ErrExponentRange when the result does not fit.
func (e Exp) Add(o Exp) (Exp, error) {
	if e.small() && o.small() {
		return normalize(e.num*o.Den()+o.num*e.Den(), e.Den()*o.Den()), nil
	}
	return ExpFromRat(new(big.Rat).Add(e.Rat(), o.Rat()))
}

// Sub returns e - o.
func (e Exp) Sub(o Exp) (Exp, error) { return e.Add(o.Neg()) }

// Mul returns e * o, or ErrExponentRange when the result does not fit.
func (e Exp) Mul(o Exp) (Exp, error) {
	if e.small() && o.small() {
		return normalize(e.num*o.num, e.Den()*o.Den()), nil
	}
	return ExpFromRat(new(big.Rat).Mul(e.Rat(), o.Rat()))
}

// small reports whether numerator and denominator fit in int32, so sums of
// cross products cannot overflow int64.
func (e Exp) small() bool {
	return e.num >= math.MinInt32 && e.num <= math.MaxInt32 && e.Den() <= math.MaxInt32
}

// Neg returns -e.
func (e Exp) Neg() Exp { return Exp{num: -e.num, den: e.den} }

// Abs returns |e|.
func (e Exp) Abs() Exp {
	if e.num < 0 {
		return e.Neg()
	}
	return e
}

// Rat returns e as a fresh big.Rat.
func (e Exp) Rat() *big.Rat { return big.NewRat(e.num, e.Den()) }

// Float64 returns the nearest float64.
func (e Exp) Float64() float64 { return float64(e.num) / float64(e.Den()) }

// String renders "2", "-1" or "1/2".
func (e Exp) String() string {
	if e.IsInt() {
		return strconv.FormatInt(e.num, 10)
	}
	return strconv.FormatInt(e.num, 10) + "/" + strconv.FormatInt(e.den, 10)
}

// MarshalJSON writes integers as JSON numbers and fractions as strings.
func (e Exp) MarshalJSON() ([]byte, error) {
	if e.IsInt() {
		return []byte(strconv.FormatInt(e.num, 10)), nil
	}
	return []byte(strconv.Quote(e.String())), nil
}

// UnmarshalJSON accepts a JSON number or a "p/q" string.
func (e *Exp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = unq
	}
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("unit: bad exponent %q: %w", s, err)
		}
		v, err := ExpFromFloat(f)
		if err != nil {
			return err
		}
		*e = v
		return nil
	}
	v, err := ParseExp(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText renders the exponent as text, used by map encoders.
func (e Exp) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText parses the output of MarshalText.
func (e *Exp) UnmarshalText(b []byte) error {
	v, err := ParseExp(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
