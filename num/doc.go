// Package num provides the numeric capability interface carried by
// quantities: a small, closed set of value kinds with promotion rules.
//
// Kinds, in promotion order:
//
//	Rat   - exact rationals (Go integers, *big.Rat). 1000*m stays exact.
//	Float - float64, IEEE-754 semantics.
//	Vec   - []float64 with element-wise arithmetic (gonum/floats); scalars
//	        broadcast, and a Vec has no intrinsic unit of its own.
//
// Binary operations (Add, Sub, Mul, Div, FloorDiv, Pow) promote both operands
// to the wider kind. Rat ** non-integer and very large integral powers fall
// back to Float. Cmp refuses vectors with ErrNotOrdered; Equal never fails.
//
// Coerce is the single entry point turning raw Go values into a Value.
package num
