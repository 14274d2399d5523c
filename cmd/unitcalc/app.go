package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/shlex"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/katalvlaran/dimension/catalog"
	"github.com/katalvlaran/dimension/config"
	"github.com/katalvlaran/dimension/expr"
	"github.com/katalvlaran/dimension/internal/logging"
	"github.com/katalvlaran/dimension/metrics"
	"github.com/katalvlaran/dimension/qty"
)

var (
	errUsage   = errors.New("usage")
	errCommand = errors.New("unknown command")
)

// app holds what every command needs: the registry, the formatter and the
// output streams.
type app struct {
	reg    *qty.Registry
	format *qty.Formatter
	log    *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// run is main without the process: it returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "unitcalc:", err)
		return 2
	}
	cli, rest, err := parseFlags(args, env, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(rest) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	logger, err := logging.New(logging.Config{
		Level:       cli.LogLevel,
		Development: cli.Debug,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintln(stderr, "unitcalc:", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	a, err := newApp(ctx, env, cli, logger.Logger)
	if err != nil {
		logger.Error("setup failed", zap.Error(err))
		fmt.Fprintln(stderr, "unitcalc:", err)
		return 1
	}
	a.stdin, a.stdout, a.stderr = stdin, stdout, stderr

	if err := a.dispatch(ctx, rest); err != nil {
		logger.Debug("command failed", zap.Strings("args", rest), zap.Error(err))
		fmt.Fprintln(stderr, "unitcalc:", err)
		if errors.Is(err, errUsage) || errors.Is(err, errCommand) {
			return 2
		}
		return 1
	}
	return 0
}

func newApp(ctx context.Context, env *config.Config, cli *cliConfig, log *zap.Logger) (*app, error) {
	r := qty.NewRegistry()

	opts := []catalog.Option{catalog.WithLogger(log.Named("catalog"))}
	if cli.SkipExisting {
		opts = append(opts, catalog.WithSkipExisting())
	}
	loader, err := catalog.NewLoader(r, opts...)
	if err != nil {
		return nil, err
	}
	if !cli.NoBuiltin {
		if _, err := loader.Load(catalog.All()...); err != nil {
			return nil, err
		}
	}
	if len(cli.Catalogs) > 0 {
		if _, err := loader.LoadFiles(ctx, cli.Catalogs...); err != nil {
			return nil, err
		}
	}

	f, err := env.Format.Formatter(r)
	if err != nil {
		return nil, err
	}
	return &app{reg: r, format: f, log: log}, nil
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "eval":
		return a.eval(rest)
	case "simplify":
		return a.simplify(rest)
	case "convert":
		return a.convert(rest)
	case "number":
		return a.number(rest)
	case "list":
		return a.list()
	case "export":
		return a.export(rest)
	case "stats":
		return a.stats()
	case "batch":
		return a.batch(ctx)
	}
	return fmt.Errorf("%w %q", errCommand, cmd)
}

func (a *app) print(q *qty.Quantity) error {
	s, err := a.format.Format(q)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, s)
	return err
}

// joined treats all arguments as one expression, so that
// "unitcalc eval 3 km" works without quotes.
func joined(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: missing expression", errUsage)
	}
	return strings.Join(args, " "), nil
}

func (a *app) eval(args []string) error {
	s, err := joined(args)
	if err != nil {
		return err
	}
	q, err := expr.Parse(a.reg, s)
	if err != nil {
		return err
	}
	return a.print(q)
}

func (a *app) simplify(args []string) error {
	s, err := joined(args)
	if err != nil {
		return err
	}
	q, err := expr.Parse(a.reg, s)
	if err != nil {
		return err
	}
	q, err = q.Simplified()
	if err != nil {
		return err
	}
	// Print exactly what the simplifier found, without display
	// normalization on top.
	q, err = q.CastUnit(q.Unit())
	if err != nil {
		return err
	}
	return a.print(q)
}

func (a *app) convert(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: convert <expr> <unit>", errUsage)
	}
	q, err := expr.Convert(a.reg, args[0], args[1])
	if err != nil {
		return err
	}
	return a.print(q)
}

func (a *app) number(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: number <expr> <unit>", errUsage)
	}
	q, err := expr.Parse(a.reg, args[0])
	if err != nil {
		return err
	}
	u, err := expr.ParseUnit(a.reg, args[1])
	if err != nil {
		return err
	}
	v, err := q.NumberIn(u)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, v)
	return err
}

func (a *app) list() error {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tSYMBOL\tDEFINITION\tNAME")
	for _, e := range a.reg.Entries() {
		def := "(base)"
		if !e.IsBase() {
			def = expr.Format(e.Definition)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.Level, e.Symbol, def, e.Name)
	}
	return w.Flush()
}

func (a *app) export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	name := fs.String("format", "yaml", "Output format: yaml, toml or json")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	f, err := catalog.ParseFormat(*name)
	if err != nil {
		return err
	}
	data, err := catalog.Export(a.reg, f)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(data)
	return err
}

func (a *app) stats() error {
	pr := prometheus.NewRegistry()
	if err := pr.Register(metrics.NewRegistryCollector(a.reg, "dimension")); err != nil {
		return err
	}
	families, err := pr.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.stdout, mf); err != nil {
			return err
		}
	}
	return nil
}

// batch runs one command per input line. Lines are split like a shell
// would, so quoted expressions stay whole; blank lines and lines starting
// with # are skipped. A failing line is reported and the batch goes on.
func (a *app) batch(ctx context.Context) error {
	sc := bufio.NewScanner(a.stdin)
	failed, ran, line := 0, 0, 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ran++
		args, err := shlex.Split(text)
		if err == nil && len(args) > 0 && args[0] == "batch" {
			err = fmt.Errorf("%w: batch cannot be nested", errUsage)
		}
		if err == nil {
			err = a.dispatch(ctx, args)
		}
		if err != nil {
			failed++
			a.log.Debug("batch line failed", zap.Int("line", line), zap.Error(err))
			fmt.Fprintf(a.stderr, "line %d: %v\n", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d commands failed", failed, ran)
	}
	return nil
}
