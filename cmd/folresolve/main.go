// Package main implements the folresolve CLI host: a thin command
// surface over pkg/folresolve that accepts premises and a goal on the
// command line or from a JSON scenario file, runs the resolution
// search under a deadline, and prints its verdict and derivation log.
//
// The derivation log itself (the "[КНФ] ..." / "Унификация: ..."
// lines) is pkg/folresolve's own output, printed verbatim; zap is used
// only for this file's own operational messages (startup, flag
// errors, timeouts) — never for the proof trace, which is the
// program's actual product.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevel string
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folresolve",
	Short: "First-order logic resolution prover",
	Long: `folresolve negates a goal formula, normalizes it and a set of premise
formulas into clausal form, and searches for a contradiction via binary
resolution with unification.

Formulas are written in a Unicode concrete syntax: ∀, ∃, ¬, ∧, ∨, →.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
		}
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "operational log level (debug, info, warn, error)")
	rootCmd.AddCommand(proveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
