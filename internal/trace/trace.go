// Package trace renders per-phase diagnostic dumps (tokens, RPN, minterms,
// prime implicants, the chart grid), each tagged with a short run
// identifier so interleaved REPL output stays attributable to one
// invocation. The core packages (lexer, parser, eval, qm, format) never
// import this package; callers pass a *Sink in explicitly.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"boolmin/internal/qm"
	"boolmin/token"
)

// Sink renders trace output for one pipeline invocation.
type Sink struct {
	out    io.Writer
	runID  string
	header *color.Color
}

// NewSink creates a Sink writing to out, stamped with a fresh run ID.
func NewSink(out io.Writer) *Sink {
	return &Sink{
		out:    out,
		runID:  uuid.NewString()[:8],
		header: color.New(color.FgCyan, color.Bold),
	}
}

func (s *Sink) section(title string) {
	s.header.Fprintf(s.out, "[%s] %s\n", s.runID, title)
}

// Tokens dumps a lexed token stream.
func (s *Sink) Tokens(toks []token.Token) {
	s.section("tokens")
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.String()
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))
}

// Variables dumps the sorted variable list.
func (s *Sink) Variables(vars []string) {
	s.section("variables")
	fmt.Fprintln(s.out, strings.Join(vars, ", "))
}

// RPN dumps the postfix token stream.
func (s *Sink) RPN(rpn []token.Token) {
	s.section("rpn")
	parts := make([]string, len(rpn))
	for i, t := range rpn {
		parts[i] = t.String()
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))
}

// Minterms dumps the satisfying-assignment indices.
func (s *Sink) Minterms(minterms []qm.Minterm) {
	s.section("minterms")
	parts := make([]string, len(minterms))
	for i, m := range minterms {
		parts[i] = fmt.Sprintf("%d", m.Index)
	}
	fmt.Fprintln(s.out, strings.Join(parts, ", "))
}

// PrimeImplicants dumps a prime-implicant set in bit-pattern form.
func (s *Sink) PrimeImplicants(n int, primes []qm.Implicant) {
	s.section("prime implicants")
	for _, p := range primes {
		fmt.Fprintln(s.out, bitsString(p, n))
	}
}

// Chart renders the X/. grid of the prime implicant chart: one row per
// prime, one column per minterm, an X where the (still-residual) prime
// covers the (still-residual) minterm.
func (s *Sink) Chart(minterms []qm.Minterm, primes []qm.Implicant, n int) {
	s.section("chart")
	for _, p := range primes {
		covered := make(map[int]bool, len(p.Covered))
		for _, m := range p.Covered {
			covered[m] = true
		}
		var row strings.Builder
		for _, m := range minterms {
			if covered[m.Index] {
				row.WriteString("X ")
			} else {
				row.WriteString(". ")
			}
		}
		row.WriteString(" | ")
		row.WriteString(bitsString(p, n))
		fmt.Fprintln(s.out, row.String())
	}
}

// Result dumps the formatted SOP string.
func (s *Sink) Result(sop string) {
	s.section("result")
	fmt.Fprintln(s.out, sop)
}

func bitsString(imp qm.Implicant, n int) string {
	var b strings.Builder
	for i := n - 1; i >= 0; i-- {
		bit := uint64(1) << uint(i)
		switch {
		case imp.Mask&bit == 0:
			b.WriteByte('-')
		case imp.Value&bit != 0:
			b.WriteByte('1')
		default:
			b.WriteByte('0')
		}
	}
	return b.String()
}
