// Package config reads process configuration for the command line tools
// from DIMENSION_* environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/dimension/expr"
	"github.com/katalvlaran/dimension/qty"
)

// Prefix is prepended to every variable name.
const Prefix = "DIMENSION"

// Config holds all application configuration.
type Config struct {
	Logging LogConfig     `envconfig:"LOG"`
	Format  FormatConfig  `envconfig:"FORMAT"`
	Catalog CatalogConfig `envconfig:"CATALOG"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `split_words:"true" default:"info"`
	Development bool   `split_words:"true" default:"false"`
}

// FormatConfig mirrors the qty formatter options. DisplayUnit is a unit
// expression such as "km/h".
type FormatConfig struct {
	MulSeparator  string `split_words:"true" default:"."`
	DivSeparator  string `split_words:"true" default:"/"`
	UnitFormat    string `split_words:"true" default:"[%s]"`
	Indent        string `split_words:"true" default:" "`
	ValueFormat   string `split_words:"true"`
	Unitless      string `split_words:"true" default:"[]"`
	HideEmpty     bool   `split_words:"true" default:"false"`
	Superscript   bool   `split_words:"true" default:"false"`
	AutoNormalize bool   `split_words:"true" default:"true"`
	DisplayUnit   string `split_words:"true"`
}

// CatalogConfig selects the unit catalogs to load.
type CatalogConfig struct {
	Builtin      bool     `split_words:"true" default:"true"`
	Files        []string `split_words:"true"`
	SkipExisting bool     `split_words:"true" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level: "info",
		},
		Format: FormatConfig{
			MulSeparator:  ".",
			DivSeparator:  "/",
			UnitFormat:    "[%s]",
			Indent:        " ",
			Unitless:      "[]",
			AutoNormalize: true,
		},
		Catalog: CatalogConfig{
			Builtin: true,
		},
	}
}

// Options converts the configuration into formatter options. The display
// unit, if any, is parsed against r.
func (c FormatConfig) Options(r *qty.Registry) ([]qty.FormatOption, error) {
	opts := []qty.FormatOption{
		qty.WithMulSeparator(c.MulSeparator),
		qty.WithDivSeparator(c.DivSeparator),
		qty.WithUnitFormat(c.UnitFormat),
		qty.WithIndent(c.Indent),
		qty.WithValueFormat(c.ValueFormat),
		qty.WithUnitless(c.Unitless),
		qty.WithSuperscript(c.Superscript),
		qty.WithAutoNormalize(c.AutoNormalize),
	}
	if c.HideEmpty {
		opts = append(opts, qty.WithHideEmpty())
	}
	if c.DisplayUnit != "" {
		u, err := expr.ParseUnit(r, c.DisplayUnit)
		if err != nil {
			return nil, fmt.Errorf("config: display unit: %w", err)
		}
		opts = append(opts, qty.WithDisplayUnit(u))
	}
	return opts, nil
}

// Formatter builds a qty.Formatter from the configuration.
func (c FormatConfig) Formatter(r *qty.Registry) (*qty.Formatter, error) {
	opts, err := c.Options(r)
	if err != nil {
		return nil, err
	}
	return qty.NewFormatter(opts...)
}
