package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dimension/config"
)

// cliConfig holds command-line configuration.
type cliConfig struct {
	Catalogs     []string
	NoBuiltin    bool
	SkipExisting bool
	LogLevel     string
	Debug        bool
}

// listFlag collects repeated or comma separated values.
type listFlag struct{ values *[]string }

func (f listFlag) String() string {
	if f.values == nil {
		return ""
	}
	return strings.Join(*f.values, ",")
}

func (f listFlag) Set(s string) error {
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*f.values = append(*f.values, v)
		}
	}
	return nil
}

func parseFlags(args []string, env *config.Config, stderr io.Writer) (*cliConfig, []string, error) {
	cfg := &cliConfig{
		Catalogs: append([]string(nil), env.Catalog.Files...),
	}
	fs := flag.NewFlagSet("unitcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Var(listFlag{&cfg.Catalogs}, "catalog",
		"Extra catalog file, repeatable (env: DIMENSION_CATALOG_FILES)")
	fs.BoolVar(&cfg.NoBuiltin, "no-builtin", !env.Catalog.Builtin,
		"Do not load the built-in catalogs (env: DIMENSION_CATALOG_BUILTIN=false)")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", env.Catalog.SkipExisting,
		"Ignore catalog units that are already defined (env: DIMENSION_CATALOG_SKIP_EXISTING)")
	fs.StringVar(&cfg.LogLevel, "log-level", env.Logging.Level,
		"Log level: debug, info, warn, error (env: DIMENSION_LOG_LEVEL)")
	fs.BoolVar(&cfg.Debug, "debug", env.Logging.Development,
		"Development logging at debug level (env: DIMENSION_LOG_DEVELOPMENT)")

	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, fs.Args(), nil
}

const usage = `usage: unitcalc [flags] <command> [args]

commands:
  eval <expr>             evaluate and print in display form
  simplify <expr>         reduce to the fewest unit symbols
  convert <expr> <unit>   express a quantity in another unit
  number <expr> <unit>    the bare number of a quantity in a unit
  list                    registered units, by definition level
  export [-format f]      write the registry as yaml, toml or json
  stats                   registry metrics in Prometheus text format
  batch                   run one command per line of standard input

flags:
`
