// Command lambis evaluates a program written in the language it
// interprets: lex, parse, and evaluate, printing each top-level
// expression's !-print output as it runs.
//
// Usage:
//
//	lambis [-v] file
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eldyj/lambis/pkg/eval"
	"github.com/eldyj/lambis/pkg/fingerprint"
	"github.com/eldyj/lambis/pkg/parser"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "lambis [file]",
		Short:         "Evaluate a program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stage transitions")

	return cmd
}

func run(path string, verbose bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFor(verbose),
	}))

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	logger.Debug("read source", "path", path, "bytes", len(source), "fingerprint", fingerprint.Of(string(source)))

	logger.Debug("parsing")
	program, err := parser.Parse(string(source))
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	logger.Debug("parsed", "expressions", len(program))

	logger.Debug("evaluating")
	if _, err := eval.NewWithWriter(os.Stdout).Run(program); err != nil {
		return fmt.Errorf("evaluation error: %w", err)
	}
	logger.Debug("done")

	return nil
}

func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}
