package catalog

import (
	"fmt"

	"github.com/katalvlaran/dimension/expr"
	"github.com/katalvlaran/dimension/qty"
)

// Snapshot lists the units of r as a catalog, base units first and then
// by definition level, so that loading it into an empty registry
// recreates r.
func Snapshot(r *qty.Registry, name string) (Catalog, error) {
	if r == nil {
		r = qty.Default()
	}
	entries := r.Entries()
	c := Catalog{Name: name, Units: make([]Definition, 0, len(entries))}
	for _, e := range entries {
		if !expr.IsSymbol(e.Symbol) {
			return Catalog{}, fmt.Errorf("%w: %q cannot be used in expressions", ErrDefinition, e.Symbol)
		}
		d := Definition{Symbol: e.Symbol, Name: e.Name}
		if !e.IsBase() {
			d.Expr = expr.Format(e.Definition)
		}
		c.Units = append(c.Units, d)
	}
	return c, nil
}

// Export encodes the units of r in format f.
func Export(r *qty.Registry, f Format) ([]byte, error) {
	c, err := Snapshot(r, "export")
	if err != nil {
		return nil, err
	}
	return Encode(c, f)
}
