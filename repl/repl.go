// Package repl implements an interactive Read-Eval-Print loop: one
// expression per line, read from in, minimized, and printed to out until
// EOF.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"boolmin/internal/lexer"
	"boolmin/internal/minimize"
	"boolmin/internal/parser"
	"boolmin/internal/trace"
)

// Prompt is printed before each read.
const Prompt = "Expr: "

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

// Options configures a REPL session.
type Options struct {
	// Sink, if non-nil, receives a per-phase trace dump for every
	// expression entered.
	Sink *trace.Sink
	// NoBanner suppresses the startup banner.
	NoBanner bool
}

// Start runs the loop until in reaches EOF, writing prompts, results, and
// errors to out.
func Start(in io.Reader, out io.Writer, opts Options) {
	if !opts.NoBanner {
		fmt.Fprintln(out, bannerStyle.Render("Boolean Expression Minimizer"))
		fmt.Fprintln(out, "Enter an expression, or Ctrl+D to quit.")
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		var minOpts []minimize.Option
		if opts.Sink != nil {
			minOpts = append(minOpts, minimize.WithTrace(opts.Sink))
		}

		result, err := minimize.Minimize(line, minOpts...)
		if err != nil {
			printError(out, err)
			continue
		}
		fmt.Fprintln(out, result.SOP)
	}
}

func printError(out io.Writer, err error) {
	var lexErr *lexer.LexError
	var synErr *parser.SyntaxError
	switch {
	case errors.As(err, &lexErr), errors.As(err, &synErr):
		color.New(color.FgRed).Fprintln(out, "Error: Invalid input")
	default:
		color.New(color.FgRed).Fprintf(out, "Error: %s\n", err)
	}
}
