package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dimension/expr"
	"github.com/katalvlaran/dimension/qty"
)

// Options configures a Loader.
type Options struct {
	// Logger receives one debug entry per unit. Default: no-op.
	Logger *zap.Logger

	// SkipExisting leaves symbols that are already registered untouched
	// instead of failing with qty.ErrNameConflict.
	SkipExisting bool

	// Concurrency bounds the number of files LoadFiles reads at once.
	Concurrency int

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the loader defaults.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), Concurrency: 4}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSkipExisting makes re-registration of a known symbol a no-op.
func WithSkipExisting() Option {
	return func(o *Options) { o.SkipExisting = true }
}

// WithConcurrency sets how many files are read in parallel; n must be
// positive.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: concurrency %d", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

// Loader registers catalogs into one registry.
type Loader struct {
	reg  *qty.Registry
	opts Options
}

// NewLoader returns a loader for r (the default registry when r is nil).
func NewLoader(r *qty.Registry, opts ...Option) (*Loader, error) {
	if r == nil {
		r = qty.Default()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Loader{reg: r, opts: o}, nil
}

// Load registers the catalogs into r with default options.
func Load(r *qty.Registry, cats ...Catalog) error {
	l, err := NewLoader(r)
	if err != nil {
		return err
	}
	_, err = l.Load(cats...)
	return err
}

// Load registers every definition of cats and returns how many units were
// added. Definitions may appear in any order, across catalogs too; each is
// registered after the ones it refers to.
//
// Loading stops at the first failing definition. Units registered before
// it stay registered.
func (l *Loader) Load(cats ...Catalog) (int, error) {
	// 1. Flatten, keeping the catalog name for error messages
	var items []item
	for _, c := range cats {
		for _, d := range c.Units {
			items = append(items, item{def: d, catalog: c.Name})
		}
	}
	// 2. Order by references; cycles fail before anything is registered
	g, err := newDepGraph(items)
	if err != nil {
		return 0, err
	}
	ordered, err := g.sorted()
	if err != nil {
		return 0, err
	}

	// 3. Register in order
	added := 0
	for _, it := range ordered {
		ok, err := l.register(it)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	l.opts.Logger.Info("catalogs loaded",
		zap.Int("catalogs", len(cats)),
		zap.Int("added", added),
		zap.Int("registered", l.reg.Len()),
	)
	return added, nil
}

func (l *Loader) register(it item) (bool, error) {
	d := it.def
	fail := func(err error) error {
		return fmt.Errorf("%w: %s/%s: %w", ErrDefinition, it.catalog, d.Symbol, err)
	}

	if !expr.IsSymbol(d.Symbol) {
		return false, fail(fmt.Errorf("%q cannot be used in expressions", d.Symbol))
	}
	if l.opts.SkipExisting && l.reg.Has(d.Symbol) {
		l.opts.Logger.Debug("unit skipped",
			zap.String("catalog", it.catalog),
			zap.String("symbol", d.Symbol),
		)
		return false, nil
	}

	var def any = qty.Base
	if !d.IsBase() {
		q, err := expr.Parse(l.reg, d.Expr)
		if err != nil {
			return false, fail(err)
		}
		def = q
	}
	if _, err := l.reg.NewUnit(d.Symbol, def, d.Name); err != nil {
		return false, fail(err)
	}

	e, _ := l.reg.Lookup(d.Symbol)
	l.opts.Logger.Debug("unit registered",
		zap.String("catalog", it.catalog),
		zap.String("symbol", d.Symbol),
		zap.String("expr", d.Expr),
		zap.Int("level", e.Level),
	)
	return true, nil
}

// LoadFiles reads the catalog files concurrently and then loads them in
// the order given.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) (int, error) {
	cats := make([]Catalog, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.Concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := ReadFile(path)
			if err != nil {
				return err
			}
			cats[i] = c
			l.opts.Logger.Debug("catalog read",
				zap.String("path", path),
				zap.String("catalog", c.Name),
				zap.Int("units", len(c.Units)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return l.Load(cats...)
}
