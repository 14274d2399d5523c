// Package dimension is a dimensional-analysis toolkit: numbers tagged with
// units, checked at the point of arithmetic and converted exactly where
// the definitions allow it.
//
// What is inside?
//
//	unit/     - unit vectors: symbol to rational exponent maps (m·s⁻², m^(1/2))
//	num/      - exact rationals and floats behind one Value, with coercion
//	qty/      - Quantity, Registry, unit matching, simplification, Formatter
//	expr/     - text expressions: "9.81 m/s^2", "(1 km + 250 m) / (2 h)"
//	catalog/  - unit catalogs as YAML, TOML or JSON; dependency-ordered loading
//	config/   - environment configuration for formatting and catalogs
//	metrics/  - a Prometheus collector over a registry
//	cmd/unitcalc - the command-line calculator
//
// Quick example:
//
//	r := qty.NewRegistry()
//	_ = catalog.Load(r, catalog.All()...)
//	v, _ := expr.Convert(r, "36 km/h", "m/s")
//	fmt.Println(v) // 10 [m/s]
//
// Integer and rational inputs stay exact all the way through; a decimal
// literal makes the result a float.
//
//	go get github.com/katalvlaran/dimension
package dimension
