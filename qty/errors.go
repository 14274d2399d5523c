package qty

import "errors"

// Sentinel errors for quantity operations. Every failure is a rejected
// operation: nothing is retried, nothing is logged, and callers match with
// errors.Is. Context (the offending units) is attached with fmt.Errorf("%w").
var (
	// ErrIncompatibleUnits is returned when two quantities' units cannot be
	// reconciled by unit matching (e.g. 5 m + 3 kg).
	ErrIncompatibleUnits = errors.New("qty: incompatible units")

	// ErrShouldBeUnitless is returned when an operation requires a unitless
	// value (the exponent of Pow, a raw-number conversion) but units remain
	// after simplification.
	ErrShouldBeUnitless = errors.New("qty: expected unitless quantity")

	// ErrNonBasicUnit is returned when a conversion target is not a pure unit
	// of ratio 1 (2*cm instead of cm).
	ErrNonBasicUnit = errors.New("qty: not a basic unit")

	// ErrNameConflict is returned when a unit symbol is registered twice.
	ErrNameConflict = errors.New("qty: unit symbol already defined")

	// ErrConversion is returned by Converted for a quantity that has no
	// singular definition (several symbols, or a base unit).
	ErrConversion = errors.New("qty: no conversion")

	// ErrEmptySymbol is returned when registering the empty symbol.
	ErrEmptySymbol = errors.New("qty: empty unit symbol")

	// ErrInvalidDefinition is returned for derived definitions that cannot
	// denote one unit (zero-valued or vector-valued definitions).
	ErrInvalidDefinition = errors.New("qty: invalid unit definition")

	// ErrUnknownUnit is returned when a symbol is not in the registry.
	ErrUnknownUnit = errors.New("qty: unknown unit")

	// ErrRegistryMismatch is returned when two operands belong to different
	// registries.
	ErrRegistryMismatch = errors.New("qty: operands belong to different registries")

	// ErrOptionViolation is returned when an invalid option is supplied to a
	// Formatter.
	ErrOptionViolation = errors.New("qty: invalid option supplied")

	// ErrNilQuantity is returned when a nil *Quantity is used as an operand.
	ErrNilQuantity = errors.New("qty: nil quantity")
)
