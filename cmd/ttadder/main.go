// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command ttadder runs the accumulating adder test scenarios on the simulated
// circuit and evaluates the behavioral model.
//
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "ttadder",
	Short: "Accumulating 4 bits adder simulator",
	Long: `ttadder simulates a Tiny Tapeout accumulating 4 bits adder.

The test command runs test scenarios against the behavioral and gate-level
versions of the circuit. The step command evaluates a sequence of operations
on the behavioral model.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log scenario steps (repeat for resets)")
}

// logger returns a logger writing to stderr, or a discarding logger when
// not in verbose mode.
func logger() logr.Logger {
	if verbosity == 0 {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(os.Stderr, prefix, args)
		} else {
			fmt.Fprintln(os.Stderr, args)
		}
	}, funcr.Options{Verbosity: verbosity - 1})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
