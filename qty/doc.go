// Package qty attaches units to numbers and enforces dimensional
// consistency: 5 m + 3 kg is an error, 1 km + 1 m is 1001 m.
//
// What
//
//   - Quantity: a num.Value tagged with a unit.Vector.
//   - Registry: the conversion table. Each symbol is either a base unit or
//     is defined as a Quantity in previously registered symbols
//     (km = 1000 m, N = kg.m/s2).
//   - Unit matching: before +, -, comparisons and conversions the operands
//     are brought to one common unit; differing dimensions fail with
//     ErrIncompatibleUnits.
//   - Simplification: derived symbols are substituted breadth first by their
//     definitions until the fewest distinct symbols remain.
//   - Formatter: "9.81 [m/s2]", with configurable separators, superscripts,
//     value verbs and display units.
//
// Why
//
//   - Catch unit mistakes at the point of arithmetic instead of in results.
//   - Keep values exact where possible: integer and rational values stay
//     num.Rat, so 1000*m reads back as exactly 1000.
//
// Registries
//
//	Quantities remember the registry that created them; a zero-registry
//	quantity (built with New, or decoded) resolves through Default().
//	Mixing quantities of two distinct registries fails with
//	ErrRegistryMismatch. Registration belongs at start-up; lookups are safe
//	from concurrent goroutines.
//
// Complexity
//
//   - Mul / Div: O(k) in the number of symbols.
//   - MatchUnits / SimplifyUnit: breadth-first over substitution signatures;
//     bounded by the definition depth of the symbols involved, and in
//     practice a few generations.
//
// Usage
//
//	r := qty.NewRegistry()
//	m := r.MustUnit("m", qty.Base, "meter")
//	km := r.MustUnit("km", qty.Must(m.Mul(1000)), "kilometer")
//
//	d, _ := km.Mul(3)
//	sum, _ := d.Add(m)    // 3001/1000 [km]: on a tie the deeper unit is kept
//	n, _ := d.NumberIn(m) // 3000
//
// Errors
//
//   - ErrIncompatibleUnits   units cannot be matched.
//   - ErrShouldBeUnitless    exponent or raw conversion with units left.
//   - ErrNonBasicUnit        conversion target is not a value-one unit.
//   - ErrNameConflict        symbol registered twice.
//   - ErrConversion          Converted on a base or multi-symbol unit.
package qty
