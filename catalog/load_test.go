package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/dimension/catalog"
	"github.com/katalvlaran/dimension/expr"
	"github.com/katalvlaran/dimension/qty"
)

type LoaderSuite struct {
	suite.Suite
	r    *qty.Registry
	logs *observer.ObservedLogs
	l    *catalog.Loader
}

func (s *LoaderSuite) SetupTest() {
	core, logs := observer.New(zapcore.DebugLevel)
	s.r = qty.NewRegistry()
	s.logs = logs

	l, err := catalog.NewLoader(s.r, catalog.WithLogger(zap.New(core)))
	s.Require().NoError(err)
	s.l = l
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func (s *LoaderSuite) TestBuiltins() {
	total := 0
	for _, c := range catalog.All() {
		total += len(c.Units)
	}

	n, err := s.l.Load(catalog.All()...)
	s.Require().NoError(err)
	s.Equal(total, n)
	s.Equal(total, s.r.Len())
	s.Equal(total, s.logs.FilterMessage("unit registered").Len())
	s.Equal(1, s.logs.FilterMessage("catalogs loaded").Len())

	e, ok := s.r.Lookup("m")
	s.Require().True(ok)
	s.True(e.IsBase())
	e, ok = s.r.Lookup("dB")
	s.Require().True(ok)
	s.True(e.IsBase())
}

func (s *LoaderSuite) TestBuiltinConversions() {
	_, err := s.l.Load(catalog.All()...)
	s.Require().NoError(err)

	cases := []struct {
		value, target, want string
	}{
		{"1 mi", "km", "25146/15625"},
		{"1 lb", "g", "45359237/100000"},
		{"36 km/h", "m/s", "10"},
		{"1 t", "kg", "1000"},
		{"1 kWh", "MJ", "18/5"},
		{"1 gal", "L", "454609/100000"},
		{"1 d", "s", "86400"},
		{"1 knot", "m/s", "463/900"},
		{"1 ft", "inch", "12"},
		{"2 kN", "kg*m/s^2", "2000"},
	}
	for _, tc := range cases {
		q, err := expr.Convert(s.r, tc.value, tc.target)
		s.Require().NoError(err, "%s -> %s", tc.value, tc.target)
		s.Equal(tc.want, q.Value().String(), "%s -> %s", tc.value, tc.target)
	}
}

func (s *LoaderSuite) TestAnyOrder() {
	c, err := catalog.ReadFile("testdata/workshop.yaml")
	s.Require().NoError(err)

	n, err := s.l.Load(c)
	s.Require().NoError(err)
	s.Equal(3, n)

	q, err := expr.Convert(s.r, "1 ft", "m")
	s.Require().NoError(err)
	s.Equal("381/1250", q.Value().String())

	registered := s.logs.FilterMessage("unit registered").All()
	s.Require().Len(registered, 3)
	s.Equal("m", registered[0].ContextMap()["symbol"])
	s.Equal("ft", registered[2].ContextMap()["symbol"])
}

func (s *LoaderSuite) TestCycle() {
	c, err := catalog.ReadFile("testdata/cycle.yaml")
	s.Require().NoError(err)

	_, err = s.l.Load(c)
	s.ErrorIs(err, catalog.ErrCycle)
	s.Contains(err.Error(), "foo -> bar -> baz -> foo")
	s.Zero(s.r.Len())

	_, err = s.l.Load(catalog.Catalog{Name: "self", Units: []catalog.Definition{{Symbol: "x", Expr: "2 x"}}})
	s.ErrorIs(err, catalog.ErrCycle)
	s.Contains(err.Error(), "x -> x")
}

func (s *LoaderSuite) TestBadDefinitions() {
	_, err := s.l.Load(catalog.Catalog{Name: "lost", Units: []catalog.Definition{{Symbol: "km", Expr: "1000 m"}}})
	s.ErrorIs(err, catalog.ErrDefinition)
	s.ErrorIs(err, qty.ErrUnknownUnit)
	s.Contains(err.Error(), "lost/km")

	_, err = s.l.Load(catalog.Catalog{Units: []catalog.Definition{{Symbol: "deg C", Expr: ""}}})
	s.ErrorIs(err, catalog.ErrDefinition)

	_, err = s.l.Load(catalog.Catalog{Units: []catalog.Definition{{Symbol: "x", Expr: "3 $"}}})
	s.ErrorIs(err, catalog.ErrDefinition)
	s.ErrorIs(err, expr.ErrSyntax)
}

func (s *LoaderSuite) TestPartialLoad() {
	n, err := s.l.Load(catalog.Catalog{Name: "partial", Units: []catalog.Definition{
		{Symbol: "m"},
		{Symbol: "km", Expr: "1000 m"},
		{Symbol: "au", Expr: "149597870700 parsec"},
	}})
	s.ErrorIs(err, qty.ErrUnknownUnit)
	s.Equal(2, n)
	s.True(s.r.Has("km"))
}

func (s *LoaderSuite) TestNameConflict() {
	_, err := s.l.Load(catalog.SIBase())
	s.Require().NoError(err)

	_, err = s.l.Load(catalog.SIBase())
	s.ErrorIs(err, qty.ErrNameConflict)
	s.ErrorIs(err, catalog.ErrDefinition)
}

func (s *LoaderSuite) TestSkipExisting() {
	_, err := s.l.Load(catalog.SIBase())
	s.Require().NoError(err)

	core, logs := observer.New(zapcore.DebugLevel)
	l, err := catalog.NewLoader(s.r, catalog.WithSkipExisting(), catalog.WithLogger(zap.New(core)))
	s.Require().NoError(err)

	n, err := l.Load(catalog.SIBase(), catalog.SIDerived())
	s.Require().NoError(err)
	s.Equal(len(catalog.SIDerived().Units), n)
	s.Equal(len(catalog.SIBase().Units), logs.FilterMessage("unit skipped").Len())
}

func (s *LoaderSuite) TestLoadFiles() {
	n, err := s.l.LoadFiles(context.Background(),
		"testdata/kitchen.toml",
		"testdata/workshop.yaml",
		"testdata/time.json",
	)
	s.Require().NoError(err)
	s.Equal(9, n)
	s.Equal(3, s.logs.FilterMessage("catalog read").Len())

	q, err := expr.Convert(s.r, "2 tbsp", "ml")
	s.Require().NoError(err)
	s.Equal("30", q.Value().String())
}

func (s *LoaderSuite) TestLoadFiles_Errors() {
	_, err := s.l.LoadFiles(context.Background(), "testdata/time.json", "testdata/units.txt")
	s.ErrorIs(err, catalog.ErrUnknownFormat)
	s.Zero(s.r.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.l.LoadFiles(ctx, "testdata/time.json")
	s.ErrorIs(err, context.Canceled)
}

func (s *LoaderSuite) TestOptions() {
	_, err := catalog.NewLoader(s.r, catalog.WithConcurrency(0))
	s.ErrorIs(err, catalog.ErrOptionViolation)

	l, err := catalog.NewLoader(nil, catalog.WithLogger(nil), catalog.WithConcurrency(1))
	s.Require().NoError(err)
	s.NotNil(l)
}
