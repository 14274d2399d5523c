// Package expr reads unit expressions such as "9.81 kg*m/s^2" or
// "1 km + 250 m" and evaluates them against a qty.Registry.
//
// Operators are +, -, *, ·, /, ^ (or **) and parentheses; a space between
// two factors multiplies them. Exponents are numbers, optionally negative,
// or parenthesized fractions: "m^(1/2)", "s^-2".
//
// Integer literals evaluate exactly (num.Rat); decimals and exponent
// notation evaluate as num.Float. Identifiers must be registered symbols.
//
// Errors wrap ErrSyntax with the byte offset of the offending token, or the
// error of the arithmetic that failed (qty.ErrIncompatibleUnits for
// "1 m + 1 s").
package expr
