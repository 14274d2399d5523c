package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrUnknownFormat is returned for file formats other than YAML, TOML
	// and JSON.
	ErrUnknownFormat = errors.New("catalog: unknown format")

	// ErrDefinition wraps the failure of a single definition together with
	// its catalog and symbol.
	ErrDefinition = errors.New("catalog: bad definition")

	// ErrCycle is returned when definitions refer to each other in a loop.
	ErrCycle = errors.New("catalog: definition cycle")

	// ErrOptionViolation is returned by NewLoader for invalid options.
	ErrOptionViolation = errors.New("catalog: invalid option supplied")
)

// Definition is one unit: a symbol, the expression it is defined by and a
// descriptive name. An empty expression, or "0", declares a base unit.
type Definition struct {
	Symbol string `json:"symbol" yaml:"symbol" toml:"symbol"`
	Expr   string `json:"expr,omitempty" yaml:"expr,omitempty" toml:"expr,omitempty"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
}

// IsBase reports whether d declares a base unit.
func (d Definition) IsBase() bool {
	e := strings.TrimSpace(d.Expr)
	return e == "" || e == "0"
}

// Catalog is a named list of definitions.
type Catalog struct {
	Name  string       `json:"name" yaml:"name" toml:"name"`
	Units []Definition `json:"units" yaml:"units" toml:"units"`
}

// Format names a catalog file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// ParseFormat accepts "yaml", "yml", "toml" and "json" in any case, with
// or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf picks the format of path from its extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

var jsonAPI = sonic.Config{
	DisallowUnknownFields: true,
	SortMapKeys:           true,
}.Froze()

// Decode parses a catalog. Unknown keys are rejected so that a misspelled
// "expr" does not silently declare a base unit.
func Decode(data []byte, f Format) (Catalog, error) {
	var c Catalog
	var err error
	switch f {
	case YAML:
		err = yaml.UnmarshalWithOptions(data, &c, yaml.Strict())
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&c)
	case JSON:
		err = jsonAPI.Unmarshal(data, &c)
	default:
		return Catalog{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: decode %s: %w", f, err)
	}
	return c, nil
}

// Encode renders c in format f.
func Encode(c Catalog, f Format) ([]byte, error) {
	switch f {
	case YAML:
		return yaml.Marshal(c)
	case TOML:
		return toml.Marshal(c)
	case JSON:
		return jsonAPI.MarshalIndent(c, "", "  ")
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// ReadFile reads and decodes the catalog at path. A catalog without a
// name is named after the file.
func ReadFile(path string) (Catalog, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Catalog{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	c, err := Decode(data, f)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return c, nil
}
