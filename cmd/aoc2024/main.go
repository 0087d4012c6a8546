// Command aoc2024 runs the Advent of Code 2024 solutions.
//
// Usage:
//
//	aoc2024 run [day...] [--input file] [--workers n] [--config file] [-v]
//	aoc2024 list
//
// Without days, run solves every registered day in order. Input files are
// resolved from the config file (default aoc2024.yaml, optional) and
// AOC_* environment variables; --input overrides the path for a single day.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		exitf("Error: %v", err)
	}
}

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
