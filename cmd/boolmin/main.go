// Package main is the command-line entry point: one positional argument
// minimizes and prints a single expression, zero arguments start the
// interactive REPL.
package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"boolmin/internal/lexer"
	"boolmin/internal/minimize"
	"boolmin/internal/parser"
	"boolmin/internal/trace"
	"boolmin/repl"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:           "boolmin [expression]",
	Short:         "Minimize a propositional-logic expression to sum-of-products form",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var sink *trace.Sink
		if debug {
			sink = trace.NewSink(os.Stdout)
		}

		if len(args) == 0 {
			repl.Start(os.Stdin, os.Stdout, repl.Options{Sink: sink})
			return nil
		}

		var opts []minimize.Option
		if sink != nil {
			opts = append(opts, minimize.WithTrace(sink))
		}

		result, err := minimize.Minimize(args[0], opts...)
		if err != nil {
			if !isInvalidInput(err) {
				return err
			}
			color.New(color.FgRed).Fprintln(os.Stdout, "Error: Invalid input")
			return nil
		}

		color.New(color.FgGreen).Fprintln(os.Stdout, result.SOP)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "dump each pipeline stage to stdout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// isInvalidInput reports whether err is a lexical or structural rejection
// of the input expression — a recoverable, expected outcome that exits 0,
// not an unrecoverable condition.
func isInvalidInput(err error) bool {
	var lexErr *lexer.LexError
	var synErr *parser.SyntaxError
	return errors.As(err, &lexErr) || errors.As(err, &synErr)
}
