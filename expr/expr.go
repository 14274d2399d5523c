package expr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/qty"
)

var (
	// ErrSyntax is returned for malformed expressions. The wrapped message
	// carries the byte offset of the offending token.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownUnit is returned when an identifier is not registered.
	// It is the registry's own sentinel, so errors.Is works with either name.
	ErrUnknownUnit = qty.ErrUnknownUnit
)

// Parse evaluates s against the registry r (the default registry when r
// is nil) and returns the resulting quantity.
//
//	sum      := product { ('+' | '-') product }
//	product  := unary { ('*' | '/' | '·' | juxtaposition) unary }
//	unary    := ('-' | '+') unary | power
//	power    := primary [ ('^' | '**') exponent ]
//	primary  := NUMBER | IDENT | '(' sum ')'
//	exponent := ['-' | '+'] ( NUMBER | '(' ['-'] NUMBER ['/' NUMBER] ')' )
//
// Products associate to the left, so "kg/m s" is (kg/m)·s. A power binds
// tighter than a sign: "-2^2" is -4. Integer literals are exact; decimals
// are floats.
func Parse(r *qty.Registry, s string) (*qty.Quantity, error) {
	if r == nil {
		r = qty.Default()
	}
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{reg: r, toks: toks}
	if p.peek().kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	q, err := p.sum()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.unexpected(t)
	}
	return q, nil
}

// MustParse is like Parse but panics on error.
func MustParse(r *qty.Registry, s string) *qty.Quantity {
	q, err := Parse(r, s)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseUnit parses s and requires the result to be a basic unit (value 1),
// suitable as a conversion target: "km", "kg*m/s^2", "1/h".
func ParseUnit(r *qty.Registry, s string) (*qty.Quantity, error) {
	q, err := Parse(r, s)
	if err != nil {
		return nil, err
	}
	if !q.IsBasic() {
		return nil, fmt.Errorf("%w: %q", qty.ErrNonBasicUnit, s)
	}
	return q, nil
}

// Convert parses value and target and returns value expressed in target.
func Convert(r *qty.Registry, value, target string) (*qty.Quantity, error) {
	q, err := Parse(r, value)
	if err != nil {
		return nil, err
	}
	u, err := ParseUnit(r, target)
	if err != nil {
		return nil, err
	}
	return q.CastUnit(u)
}

type parser struct {
	reg  *qty.Registry
	toks []token
	at   int
}

func (p *parser) peek() token { return p.toks[p.at] }

func (p *parser) next() token {
	t := p.toks[p.at]
	if t.kind != tokEOF {
		p.at++
	}
	return t
}

func (p *parser) expect(k tokenKind) (token, error) {
	t := p.next()
	if t.kind != k {
		return t, fmt.Errorf("%w: expected %s, found %s at %d", ErrSyntax, k, describe(t), t.pos)
	}
	return t, nil
}

func (p *parser) unexpected(t token) error {
	return fmt.Errorf("%w: unexpected %s at %d", ErrSyntax, describe(t), t.pos)
}

func describe(t token) string {
	if t.kind == tokNumber || t.kind == tokIdent {
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}
	return t.kind.String()
}

func (p *parser) sum() (*qty.Quantity, error) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.kind != tokPlus && op.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.product()
		if err != nil {
			return nil, err
		}
		if op.kind == tokPlus {
			left, err = left.Add(right)
		} else {
			left, err = left.Sub(right)
		}
		if err != nil {
			return nil, fmt.Errorf("expr: at %d: %w", op.pos, err)
		}
	}
}

func (p *parser) product() (*qty.Quantity, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		div := false
		switch op.kind {
		case tokMul:
			p.next()
		case tokDiv:
			p.next()
			div = true
		case tokNumber, tokIdent, tokLParen:
			// juxtaposition
		default:
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		if div {
			left, err = left.Div(right)
		} else {
			left, err = left.Mul(right)
		}
		if err != nil {
			return nil, fmt.Errorf("expr: at %d: %w", op.pos, err)
		}
	}
}

// unary applies leading signs to the power that follows them.
func (p *parser) unary() (*qty.Quantity, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		q, err := p.unary()
		if err != nil {
			return nil, err
		}
		return q.Neg(), nil
	case tokPlus:
		p.next()
		return p.unary()
	}
	return p.power()
}

func (p *parser) power() (*qty.Quantity, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	op := p.peek()
	if op.kind != tokPow {
		return base, nil
	}
	p.next()
	e, err := p.exponent()
	if err != nil {
		return nil, err
	}
	q, err := base.Pow(e)
	if err != nil {
		return nil, fmt.Errorf("expr: at %d: %w", op.pos, err)
	}
	return q, nil
}

func (p *parser) primary() (*qty.Quantity, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := p.number(t)
		if err != nil {
			return nil, err
		}
		return p.reg.New(v, nil)
	case tokIdent:
		u, err := p.reg.Unit(t.text)
		if err != nil {
			return nil, fmt.Errorf("expr: at %d: %w", t.pos, err)
		}
		return u, nil
	case tokLParen:
		q, err := p.sum()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, p.unexpected(t)
}

func (p *parser) exponent() (num.Value, error) {
	negative := false
	switch p.peek().kind {
	case tokMinus:
		p.next()
		negative = true
	case tokPlus:
		p.next()
	}

	var v num.Value
	t := p.next()
	switch t.kind {
	case tokNumber:
		n, err := p.number(t)
		if err != nil {
			return nil, err
		}
		v = n
	case tokLParen:
		n, err := p.fraction()
		if err != nil {
			return nil, err
		}
		v = n
	default:
		return nil, fmt.Errorf("%w: expected exponent, found %s at %d", ErrSyntax, describe(t), t.pos)
	}
	if negative {
		v = num.Neg(v)
	}
	return v, nil
}

// fraction reads the "['-'] n ['/' d] ')'" tail of a parenthesized
// exponent.
func (p *parser) fraction() (num.Value, error) {
	negative := false
	if p.peek().kind == tokMinus {
		p.next()
		negative = true
	}
	t, err := p.expect(tokNumber)
	if err != nil {
		return nil, err
	}
	v, err := p.number(t)
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokDiv {
		p.next()
		dt, err := p.expect(tokNumber)
		if err != nil {
			return nil, err
		}
		d, err := p.number(dt)
		if err != nil {
			return nil, err
		}
		if num.IsZero(d) {
			return nil, fmt.Errorf("%w: zero denominator at %d", ErrSyntax, dt.pos)
		}
		if v, err = num.Div(v, d); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	if negative {
		v = num.Neg(v)
	}
	return v, nil
}

func (p *parser) number(t token) (num.Value, error) {
	v, err := num.Parse(t.text)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q at %d", ErrSyntax, t.text, t.pos)
	}
	return v, nil
}
