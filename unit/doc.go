// Package unit defines the compound-unit representation used throughout
// dimension: a Vector mapping unit symbols to rational exponents.
//
// What
//
//   - Exp: an exponent n/d in lowest terms, comparable with ==.
//   - Vector: symbol → Exp, e.g. {kg:1, m:1, s:-2} for a newton.
//   - Mul / Div / Pow: the exponent algebra behind quantity arithmetic.
//   - Key: a canonical, sorted string form used for hashing and dedup.
//
// Invariants
//
//   - A Vector never stores a zero exponent; Validate reports violations.
//   - Equality is structural (same symbols, same exponents).
//   - Operations never mutate their inputs (copy-on-write).
//
// Complexity
//
//	Mul/Div/Pow are O(|a|+|b|); Key and Symbols are O(k log k) for k symbols.
package unit
