package qty

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/dimension/num"
	"github.com/katalvlaran/dimension/unit"
)

// BaseMarker is the type of Base.
type BaseMarker struct{}

// Base marks a unit definition as a base unit: NewUnit("m", qty.Base, "meter").
var Base BaseMarker

// Entry is one registered unit.
//
// A base entry has a nil Definition and Level 0. A derived entry states that
// one unit of Symbol equals Definition; its Level is one more than the
// deepest symbol used by the definition. Level only breaks ties during unit
// matching, it never decides correctness.
type Entry struct {
	// Symbol is the key in the unit vector, e.g. "km".
	Symbol string

	// Definition is nil for base units.
	Definition *Quantity

	// Level is the definition depth from base units.
	Level int

	// Name is the display name, e.g. "kilometer".
	Name string
}

// IsBase reports whether e is a base unit.
func (e Entry) IsBase() bool { return e.Definition == nil }

// detached returns e with a private copy of its definition, so that an
// entry handed out or taken in never shares a Quantity with the registry.
func (e Entry) detached() Entry {
	if e.Definition != nil {
		e.Definition = e.Definition.Copy()
	}
	return e
}

// Registry is the conversion table: symbol → Entry.
//
// Lookups take a read lock, so quantities from one registry can be used from
// several goroutines. Registration and Reset are meant to happen up front,
// before concurrent use begins; the registry does not order a registration
// against arithmetic that is already running.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by quantities that were not
// created through an explicit Registry.
func Default() *Registry { return defaultRegistry }

// NewUnit registers symbol in the default registry.
func NewUnit(symbol string, def any, name string) (*Quantity, error) {
	return defaultRegistry.NewUnit(symbol, def, name)
}

// Table returns a snapshot of the default registry.
func Table() map[string]Entry { return defaultRegistry.Table() }

// Reset clears the default registry, optionally replacing its content.
func Reset(table map[string]Entry) { defaultRegistry.Reset(table) }

// NewUnit defines symbol and returns the quantity "1 symbol".
//
// def selects the kind of unit:
//   - nil, Base or the integer 0: a base unit;
//   - anything else is coerced to a Quantity and becomes the definition,
//     i.e. "1 symbol == def" (NewUnit("km", 1000*m, "kilometer")).
//
// Errors: ErrEmptySymbol, ErrNameConflict, ErrInvalidDefinition,
// ErrRegistryMismatch, or a coercion error from num.
func (r *Registry) NewUnit(symbol string, def any, name string) (*Quantity, error) {
	// 1. Validate the symbol
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	entry := Entry{Symbol: symbol, Name: name}

	// 2. Coerce and check a derived definition outside the lock
	if !isBaseDefinition(def) {
		d, err := Coerce(def)
		if err != nil {
			return nil, fmt.Errorf("qty: definition of %q: %w", symbol, err)
		}
		if d.reg != nil && d.reg != r {
			return nil, fmt.Errorf("%w: definition of %q", ErrRegistryMismatch, symbol)
		}
		if d.value.Kind() == num.KindVec || num.IsZero(d.value) {
			return nil, fmt.Errorf("%w: %q = %s", ErrInvalidDefinition, symbol, d.value)
		}
		// 2a. Store a private copy bound to r
		entry.Definition = &Quantity{value: d.value, unit: d.unit.Clone(), normal: true, reg: r}
	}

	// 3. Insert under the write lock; the level depends on current entries
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[symbol]; exists {
		return nil, fmt.Errorf("%w: %q", ErrNameConflict, symbol)
	}
	if entry.Definition != nil {
		entry.Level = r.maxLevelLocked(entry.Definition.unit) + 1
	}
	r.entries[symbol] = entry

	return &Quantity{value: num.Int(1), unit: unit.Base(symbol), normal: true, reg: r}, nil
}

// MustUnit is like NewUnit but panics on error. It is meant for unit
// catalogs built from static tables.
func (r *Registry) MustUnit(symbol string, def any, name string) *Quantity {
	q, err := r.NewUnit(symbol, def, name)
	if err != nil {
		panic(err)
	}
	return q
}

func isBaseDefinition(def any) bool {
	switch d := def.(type) {
	case nil:
		return true
	case BaseMarker, *BaseMarker:
		return true
	case int:
		return d == 0
	}
	return false
}

// New builds a quantity bound to r.
func (r *Registry) New(value any, u unit.Vector) (*Quantity, error) {
	return newQuantity(r, value, u)
}

// Lookup returns the entry for symbol. The definition is a copy: changing
// it does not change the registry.
func (r *Registry) Lookup(symbol string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[symbol]
	if !ok {
		return Entry{}, false
	}
	return e.detached(), true
}

// Has reports whether symbol is registered.
func (r *Registry) Has(symbol string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[symbol]
	return ok
}

// Unit returns "1 symbol" for a registered symbol.
func (r *Registry) Unit(symbol string) (*Quantity, error) {
	if !r.Has(symbol) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return &Quantity{value: num.Int(1), unit: unit.Base(symbol), normal: true, reg: r}, nil
}

// definition returns the derived definition of symbol; ok is false for base
// and unknown symbols.
func (r *Registry) definition(symbol string) (*Quantity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[symbol]
	if !ok || e.Definition == nil {
		return nil, false
	}
	return e.Definition, true
}

// MaxLevel returns the greatest level among v's symbols; 0 for the empty
// vector. Unknown symbols count as level 0.
func (r *Registry) MaxLevel(v unit.Vector) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxLevelLocked(v)
}

func (r *Registry) maxLevelLocked(v unit.Vector) int {
	level := 0
	for sym := range v {
		if e, ok := r.entries[sym]; ok && e.Level > level {
			level = e.Level
		}
	}
	return level
}

// Len returns the number of registered symbols.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Symbols returns the registered symbols in ascending order.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	syms := make([]string, 0, len(r.entries))
	for sym := range r.entries {
		syms = append(syms, sym)
	}
	r.mu.RUnlock()
	sort.Strings(syms)
	return syms
}

// Entries returns every entry ordered by (Level, Symbol), so each entry comes
// after all the symbols its definition uses.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.detached())
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Table returns a snapshot of the registry content. Definitions are copies.
func (r *Registry) Table() map[string]Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Entry, len(r.entries))
	for k, v := range r.entries {
		out[k] = v.detached()
	}
	return out
}

// Reset clears the registry. When table is non-nil its entries become the
// new content; map and definitions are copied.
func (r *Registry) Reset(table map[string]Entry) {
	fresh := make(map[string]Entry, len(table))
	for k, v := range table {
		fresh[k] = v.detached()
	}
	r.mu.Lock()
	r.entries = fresh
	r.mu.Unlock()
}

// Clone returns an independent registry with the same entries. Definitions
// are rebound to the clone.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for k, e := range r.entries {
		e = e.detached()
		if e.Definition != nil {
			e.Definition.reg = c
		}
		c.entries[k] = e
	}
	return c
}
