package qty_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dimension/qty"
)

// ExampleRegistry_NewUnit defines a small length system and converts
// between its units.
func ExampleRegistry_NewUnit() {
	r := qty.NewRegistry()
	m := r.MustUnit("m", qty.Base, "meter")
	km := r.MustUnit("km", qty.Must(m.Mul(1000)), "kilometer")

	d := qty.Must(km.Mul(3))
	n, _ := d.NumberIn(m)
	fmt.Println(d, "=", n, "m")

	sum, _ := d.Add(qty.Must(m.Mul(250)))
	fmt.Println(sum)
	// Output:
	// 3 [km] = 3000 m
	// 13/4 [km]
}

// ExampleQuantity_Add shows that dimensions are checked at the point of
// arithmetic.
func ExampleQuantity_Add() {
	r := qty.NewRegistry()
	m := r.MustUnit("m", qty.Base, "meter")
	kg := r.MustUnit("kg", qty.Base, "kilogram")

	_, err := qty.Must(m.Mul(5)).Add(qty.Must(kg.Mul(3)))
	fmt.Println(errors.Is(err, qty.ErrIncompatibleUnits))
	// Output:
	// true
}

// ExampleQuantity_CastUnit converts an hour into seconds.
func ExampleQuantity_CastUnit() {
	r := qty.NewRegistry()
	s := r.MustUnit("s", qty.Base, "second")
	minute := r.MustUnit("min", qty.Must(s.Mul(60)), "minute")
	h := r.MustUnit("h", qty.Must(minute.Mul(60)), "hour")

	inSeconds, _ := h.CastUnit(s)
	fmt.Println(inSeconds)
	// Output:
	// 3600 [s]
}

// ExampleFormatter renders a quantity with negative exponents and
// superscripts.
func ExampleFormatter() {
	r := qty.NewRegistry()
	m := r.MustUnit("m", qty.Base, "meter")
	s := r.MustUnit("s", qty.Base, "second")

	g := qty.Must(qty.Must(m.Mul(9.81)).Div(qty.Must(s.Pow(2))))
	f, _ := qty.NewFormatter(qty.WithDivSeparator(""), qty.WithSuperscript(true))
	out, _ := f.Format(g)
	fmt.Println(out)
	// Output:
	// 9.81 [m.s⁻²]
}
