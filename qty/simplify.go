package qty

import (
	"strings"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/unit"
)

// SimplifyOption configures SimplifyUnit.
type SimplifyOption func(*simplifyOptions)

type simplifyOptions struct {
	forDisplay bool
}

// WithForDisplay keeps a single remaining unit instead of collapsing it to a
// bare number: with percent = 1/100, "50 [percent]" is not turned into "1/2 []".
func WithForDisplay() SimplifyOption {
	return func(o *simplifyOptions) { o.forDisplay = true }
}

// candidate is one node of the substitution search: the accumulated
// exponents substituted per symbol and the resulting quantity.
type candidate struct {
	sig map[string]unit.Exp
	q   *Quantity
}

// simplifier holds the state of one breadth-first substitution search.
type simplifier struct {
	reg      *Registry
	opts     simplifyOptions
	frontier []candidate
	best     *Quantity
	bestLen  int
}

// SimplifyUnit rewrites q IN PLACE into the equivalent quantity with the
// fewest distinct symbols and returns q.
//
// Derived symbols are replaced by their definitions breadth first, so among
// results of equal length the one reached with fewer substitutions wins.
// Candidates are deduplicated per generation by their substitution
// signature. The search ends when a generation produces nothing new.
func (q *Quantity) SimplifyUnit(opts ...SimplifyOption) (*Quantity, error) {
	var o simplifyOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := q.simplify(o); err != nil {
		return nil, err
	}
	q.normal = o.forDisplay
	return q, nil
}

// Simplified returns a simplified copy of q.
func (q *Quantity) Simplified(opts ...SimplifyOption) (*Quantity, error) {
	return q.Copy().SimplifyUnit(opts...)
}

// Canonical returns q in display-normal form without modifying q. A quantity
// already marked normal is returned as is.
func (q *Quantity) Canonical() (*Quantity, error) {
	if q.normal {
		return q, nil
	}
	return q.Simplified(WithForDisplay())
}

// Materialize simplifies q in place for display and marks it normal, so later
// formatting skips the search.
func (q *Quantity) Materialize() error {
	_, err := q.SimplifyUnit(WithForDisplay())
	return err
}

func (q *Quantity) simplify(opts simplifyOptions) error {
	s := &simplifier{
		reg:      q.registry(),
		opts:     opts,
		frontier: []candidate{{sig: map[string]unit.Exp{}, q: q.with(q.value, q.unit)}},
		best:     q,
		bestLen:  q.unit.Len(),
	}
	if err := s.loop(); err != nil {
		return err
	}
	if s.best != q {
		q.value, q.unit = s.best.value, s.best.unit
	}
	return nil
}

// loop expands generation after generation until no new signature appears.
func (s *simplifier) loop() error {
	for len(s.frontier) > 0 {
		current := s.frontier
		s.frontier = nil
		seen := make(map[string]struct{})
		for _, c := range current {
			if err := s.expand(c, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// expand substitutes every derived symbol of c once.
func (s *simplifier) expand(c candidate, seen map[string]struct{}) error {
	for _, sym := range c.q.unit.Symbols() {
		// 1. Only derived symbols can be substituted
		def, ok := s.reg.definition(sym)
		if !ok {
			continue
		}
		exp := c.q.unit[sym]

		// 2. Signature of the path after this substitution
		sig := make(map[string]unit.Exp, len(c.sig)+1)
		for k, v := range c.sig {
			sig[k] = v
		}
		total, err := sig[sym].Add(exp)
		if err != nil {
			return err
		}
		sig[sym] = total

		// 3. Skip paths already reached in this generation
		key := signatureKey(sig)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		// 4. Substitute, queue for the next generation, keep if shorter
		next, err := replaced(c.q, sym, exp, def)
		if err != nil {
			return err
		}
		s.frontier = append(s.frontier, candidate{sig: sig, q: next})
		s.consider(next)
	}
	return nil
}

// consider keeps next when it has strictly fewer symbols than the best so
// far. For display, a single unit is never traded for none.
func (s *simplifier) consider(next *Quantity) {
	n := next.unit.Len()
	if n >= s.bestLen {
		return
	}
	if s.opts.forDisplay && n == 0 && s.bestLen == 1 {
		return
	}
	s.best, s.bestLen = next, n
}

// replaced returns q · def^exp with sym dropped from the unit.
func replaced(q *Quantity, sym string, exp unit.Exp, def *Quantity) (*Quantity, error) {
	factor, err := num.Pow(def.value, num.RatOf(exp.Rat()))
	if err != nil {
		return nil, err
	}
	v, err := num.Mul(q.value, factor)
	if err != nil {
		return nil, err
	}
	expanded, err := unit.Pow(def.unit, exp)
	if err != nil {
		return nil, err
	}
	u, err := unit.Mul(q.unit, expanded)
	if err != nil {
		return nil, err
	}
	delete(u, sym)
	return q.with(v, u), nil
}

// signatureKey renders sig in sorted order. Zero entries are kept: a symbol
// substituted up and back down again is a different path than none.
func signatureKey(sig map[string]unit.Exp) string {
	var b strings.Builder
	for i, sym := range unit.Vector(sig).Symbols() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(sym)
		b.WriteByte(':')
		b.WriteString(sig[sym].String())
	}
	return b.String()
}
