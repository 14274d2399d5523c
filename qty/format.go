package qty

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/unit"
)

// FormatOption configures a Formatter via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by
// NewFormatter.
type FormatOption func(*FormatOptions)

// FormatOptions holds the rendering parameters of a Formatter.
type FormatOptions struct {
	// MulSeparator joins symbols: "N.m".
	MulSeparator string

	// DivSeparator separates numerator and denominator: "m/s". When empty,
	// negative exponents are written instead: "m.s-1".
	DivSeparator string

	// UnitFormat wraps the rendered unit; it must contain one %s.
	UnitFormat string

	// Indent separates value and unit.
	Indent string

	// ValueFormat is a printf verb applied to scalar values (per element for
	// vectors). Empty means the shortest exact rendering.
	ValueFormat string

	// Unitless is printed for the empty unit. Empty hides it together with
	// the indent.
	Unitless string

	// Superscript writes exponents with Unicode superscripts: "m²".
	Superscript bool

	// AutoNormalize renders the canonical form of the quantity.
	AutoNormalize bool

	// DisplayUnit, when set, converts every quantity into this unit first.
	DisplayUnit *Quantity

	// SymbolOrder orders symbols inside the numerator and the denominator.
	SymbolOrder func(a, b string) bool

	err error
}

// DefaultFormatOptions returns the stock rendering: "9.81 [m/s2]".
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MulSeparator:  ".",
		DivSeparator:  "/",
		UnitFormat:    "[%s]",
		Indent:        " ",
		ValueFormat:   "",
		Unitless:      "[]",
		Superscript:   false,
		AutoNormalize: true,
		SymbolOrder:   func(a, b string) bool { return a < b },
	}
}

// WithMulSeparator sets the separator between multiplied symbols.
func WithMulSeparator(sep string) FormatOption {
	return func(o *FormatOptions) { o.MulSeparator = sep }
}

// WithDivSeparator sets the numerator/denominator separator; "" switches to
// negative exponents.
func WithDivSeparator(sep string) FormatOption {
	return func(o *FormatOptions) { o.DivSeparator = sep }
}

// WithUnitFormat sets the wrapper of the unit text, e.g. "{%s}".
func WithUnitFormat(format string) FormatOption {
	return func(o *FormatOptions) {
		if strings.Count(format, "%s") != 1 {
			o.err = fmt.Errorf("%w: unit format %q needs exactly one %%s", ErrOptionViolation, format)
			return
		}
		o.UnitFormat = format
	}
}

// WithIndent sets the text between value and unit.
func WithIndent(indent string) FormatOption {
	return func(o *FormatOptions) { o.Indent = indent }
}

// WithValueFormat sets the printf verb for values, e.g. "%.2f".
func WithValueFormat(verb string) FormatOption {
	return func(o *FormatOptions) {
		if verb != "" && !strings.Contains(verb, "%") {
			o.err = fmt.Errorf("%w: value format %q has no verb", ErrOptionViolation, verb)
			return
		}
		o.ValueFormat = verb
	}
}

// WithUnitless sets the text shown for unitless quantities.
func WithUnitless(text string) FormatOption {
	return func(o *FormatOptions) { o.Unitless = text }
}

// WithHideEmpty prints unitless quantities as bare numbers.
func WithHideEmpty() FormatOption { return WithUnitless("") }

// WithSuperscript toggles Unicode superscript exponents.
func WithSuperscript(on bool) FormatOption {
	return func(o *FormatOptions) { o.Superscript = on }
}

// WithAutoNormalize toggles rendering of the canonical form.
func WithAutoNormalize(on bool) FormatOption {
	return func(o *FormatOptions) { o.AutoNormalize = on }
}

// WithDisplayUnit converts quantities into u before rendering. u must be a
// basic unit; nil clears the setting.
func WithDisplayUnit(u *Quantity) FormatOption {
	return func(o *FormatOptions) {
		if u != nil && !u.IsBasic() {
			o.err = fmt.Errorf("%w: display unit: %w", ErrOptionViolation, checkBasic(u))
			return
		}
		o.DisplayUnit = u
	}
}

// WithSymbolOrder replaces the lexical symbol ordering.
func WithSymbolOrder(less func(a, b string) bool) FormatOption {
	return func(o *FormatOptions) {
		if less != nil {
			o.SymbolOrder = less
		}
	}
}

// Formatter renders quantities and unit vectors. It is immutable and safe
// for concurrent use.
type Formatter struct {
	opts FormatOptions
}

// NewFormatter builds a Formatter from the defaults and opts.
func NewFormatter(opts ...FormatOption) (*Formatter, error) {
	o := DefaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Formatter{opts: o}, nil
}

// Options returns the formatter's settings.
func (f *Formatter) Options() FormatOptions { return f.opts }

// Format renders q as "<value><indent><unit>".
func (f *Formatter) Format(q *Quantity) (string, error) {
	if q == nil {
		return "", ErrNilQuantity
	}
	var err error
	switch {
	case f.opts.DisplayUnit != nil:
		q, err = q.CastUnit(f.opts.DisplayUnit)
	case f.opts.AutoNormalize:
		q, err = q.Canonical()
	}
	if err != nil {
		return "", err
	}

	value := num.Format(q.value, f.opts.ValueFormat)
	u := f.FormatUnit(q.unit)
	if u == "" {
		return value, nil
	}
	return value + f.opts.Indent + u, nil
}

// FormatUnit renders a unit vector with the configured separators and
// wrapper. The empty vector renders as the Unitless text.
func (f *Formatter) FormatUnit(v unit.Vector) string {
	if v.IsEmpty() {
		return f.opts.Unitless
	}

	syms := make([]string, 0, len(v))
	for sym := range v {
		syms = append(syms, sym)
	}
	sort.SliceStable(syms, func(i, j int) bool { return f.opts.SymbolOrder(syms[i], syms[j]) })

	var numer, denom []string
	for _, sym := range syms {
		e := v[sym]
		if e.Sign() > 0 || f.opts.DivSeparator == "" {
			numer = append(numer, sym+f.exponent(e))
		} else {
			denom = append(denom, sym+f.exponent(e.Neg()))
		}
	}

	text := strings.Join(numer, f.opts.MulSeparator)
	if len(denom) > 0 {
		if text == "" {
			text = "1"
		}
		text += f.opts.DivSeparator + strings.Join(denom, f.opts.MulSeparator)
	}
	return fmt.Sprintf(f.opts.UnitFormat, text)
}

var superscripts = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
	"-", "⁻", "/", "ᐟ", "(", "⁽", ")", "⁾",
)

func (f *Formatter) exponent(e unit.Exp) string {
	var s string
	switch {
	case e == unit.Int(1):
		return ""
	case e.IsInt():
		s = e.String()
	default:
		s = "(" + e.String() + ")"
	}
	if f.opts.Superscript {
		return superscripts.Replace(s)
	}
	return s
}

var current atomic.Pointer[Formatter]

func init() { ResetFormat() }

// SetFormat replaces the process-wide formatter used by Quantity.String.
// Options start from the defaults, not from the previous setting.
func SetFormat(opts ...FormatOption) error {
	f, err := NewFormatter(opts...)
	if err != nil {
		return err
	}
	current.Store(f)
	return nil
}

// ResetFormat restores the default process-wide formatter.
func ResetFormat() {
	f, _ := NewFormatter()
	current.Store(f)
}

// CurrentFormat returns the process-wide formatter.
func CurrentFormat() *Formatter { return current.Load() }

// String renders q with the process-wide formatter. q itself is not
// modified; use Materialize to cache the canonical form.
func (q *Quantity) String() string {
	if q == nil {
		return "<nil>"
	}
	s, err := CurrentFormat().Format(q)
	if err != nil {
		return "%!v(" + err.Error() + ")"
	}
	return s
}
