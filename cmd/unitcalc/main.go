// Command unitcalc evaluates and converts unit expressions.
//
//	unitcalc eval '9.81 kg*m/s^2'
//	unitcalc convert '36 km/h' m/s
//	unitcalc -catalog lab.yaml list
//	echo "convert '1 mi' km" | unitcalc batch
//
// Formatting follows the DIMENSION_FORMAT_* environment variables, see
// package config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
