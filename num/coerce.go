package num

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Coerce converts a raw Go value into a Value.
//
//   - Value                      → itself
//   - signed/unsigned integers   → Rat
//   - *big.Rat, big.Rat, *big.Int → Rat
//   - float32, float64           → Float
//   - []float64, []int           → Vec (copied)
//
// Anything else fails with ErrUnsupportedType.
func Coerce(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return v, nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return RatOf(new(big.Rat).SetUint64(uint64(v))), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return RatOf(new(big.Rat).SetUint64(v)), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case *big.Rat:
		if v == nil {
			break
		}
		return RatOf(v), nil
	case big.Rat:
		return RatOf(&v), nil
	case *big.Int:
		if v == nil {
			break
		}
		return RatOf(new(big.Rat).SetInt(v)), nil
	case []float64:
		return Vec(append([]float64(nil), v...)), nil
	case []int:
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return Vec(out), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}

// Parse reads a numeric literal. Integers and "p/q" fractions parse to an
// exact Rat; decimals and exponent notation parse to Float.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty literal", ErrUnsupportedType)
	}
	if strings.Contains(s, "/") || isInteger(s) {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, fmt.Errorf("%w: bad rational %q", ErrUnsupportedType, s)
		}
		return Rat{r: r}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q", ErrUnsupportedType, s)
	}
	return Float(f), nil
}

func isInteger(s string) bool {
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
