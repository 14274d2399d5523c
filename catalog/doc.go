// Package catalog loads unit definitions into a qty.Registry.
//
// A catalog is a named list of definitions, each a symbol with an
// expression in terms of other symbols:
//
//	name: workshop
//	units:
//	  - symbol: ft
//	    expr: 12 inch
//	  - symbol: inch
//	    expr: 254/10000 m
//	  - symbol: m          # no expr: base unit
//
// Definitions may come in any order; the loader registers each one after
// the definitions it refers to, and reports loops as ErrCycle.
//
// Built-in catalogs cover the SI base and derived units, common decimal
// multiples, units accepted alongside the SI and British imperial units.
// Files are read as YAML, TOML or JSON, chosen by extension. Export writes
// a registry back out in the same forms.
//
//	l, err := catalog.NewLoader(r, catalog.WithLogger(log))
//	n, err := l.Load(catalog.All()...)
//	n, err = l.LoadFiles(ctx, "lab.yaml", "shop.toml")
package catalog
