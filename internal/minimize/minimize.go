// Package minimize wires the lexer, parser, evaluator, and Quine-McCluskey
// stages into the single public pipeline entry point.
package minimize

import (
	"boolmin/internal/eval"
	"boolmin/internal/format"
	"boolmin/internal/lexer"
	"boolmin/internal/parser"
	"boolmin/internal/qm"
	"boolmin/internal/trace"
	"boolmin/token"
)

// Result is the outcome of minimizing one expression.
type Result struct {
	Variables []string
	SOP       string
}

// Option configures a Minimize call.
type Option func(*options)

type options struct {
	sink *trace.Sink
}

// WithTrace attaches a diagnostic sink that receives a dump of every
// pipeline stage. The core pipeline itself never depends on trace; this
// is the only place it is wired in.
func WithTrace(sink *trace.Sink) Option {
	return func(o *options) { o.sink = sink }
}

// Minimize runs the full pipeline over expr: lex, validate and convert to
// RPN, enumerate minterms, find prime implicants, select a minimum cover,
// and render it as SOP text. Errors are *lexer.LexError or
// *parser.SyntaxError.
func Minimize(expr string, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	toks, err := lexer.Scan(expr)
	if err != nil {
		return Result{}, err
	}
	if o.sink != nil {
		o.sink.Tokens(toks)
	}

	rpn, variables, err := parser.Parse(toks)
	if err != nil {
		return Result{}, err
	}
	if o.sink != nil {
		o.sink.Variables(variables)
		o.sink.RPN(rpn)
	}

	minterms, implicants := qm.GenerateMinterms(rpn, variables)
	if o.sink != nil {
		o.sink.Minterms(minterms)
	}

	primes := qm.FindPrimeImplicants(implicants)
	if o.sink != nil {
		o.sink.PrimeImplicants(len(variables), primes)
	}

	chart := qm.NewChart(minterms, primes)
	if o.sink != nil {
		o.sink.Chart(minterms, primes, len(variables))
	}
	cover := chart.SelectCover(len(variables))

	sop := format.Format(variables, cover)
	if o.sink != nil {
		o.sink.Result(sop)
	}

	return Result{Variables: variables, SOP: sop}, nil
}

// Evaluate re-exports the evaluator for callers (e.g. tests) that need to
// check truth-table equivalence between the original RPN and a minimized
// result's own re-parsed RPN.
func Evaluate(rpn []token.Token, env map[string]bool) bool {
	return eval.Evaluate(rpn, env)
}
