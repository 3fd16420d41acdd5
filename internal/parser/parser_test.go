package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boolmin/internal/lexer"
	"boolmin/token"
)

func rpnKinds(t *testing.T, expr string) []token.Kind {
	t.Helper()
	toks, err := lexer.Scan(expr)
	require.NoError(t, err)
	require.NoError(t, Validate(toks))
	rpn := ToRPN(toks)
	kinds := make([]token.Kind, len(rpn))
	for i, tok := range rpn {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	for _, expr := range []string{
		"A", "!A", "!!A", "A & B", "(A | B) & C", "a => b => c", "0", "1 & A",
	} {
		toks, err := lexer.Scan(expr)
		require.NoError(t, err)
		assert.NoError(t, Validate(toks), "expr %q should validate", expr)
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	for _, expr := range []string{
		"A B", "A &", "& A", "(A", "A)", "A & & B", "()",
	} {
		toks, err := lexer.Scan(expr)
		require.NoError(t, err)
		assert.Error(t, Validate(toks), "expr %q should be rejected", expr)
	}
}

func TestLeftAssociativeChaining(t *testing.T) {
	// a => b => c must parse as (a => b) => c: RPN "a b => c =>"
	assert.Equal(t, []token.Kind{token.VAR, token.VAR, token.IMPL, token.VAR, token.IMPL}, rpnKinds(t, "a => b => c"))
}

func TestLeftAssociativeAnd(t *testing.T) {
	// a & b & c must parse as (a & b) & c: RPN "a b & c &"
	assert.Equal(t, []token.Kind{token.VAR, token.VAR, token.AND, token.VAR, token.AND}, rpnKinds(t, "a & b & c"))
}

func TestDoubleNegationRPN(t *testing.T) {
	assert.Equal(t, []token.Kind{token.VAR, token.NOT, token.NOT}, rpnKinds(t, "!!A"))
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	// (A | B) & C -> A B | C &
	assert.Equal(t, []token.Kind{token.VAR, token.VAR, token.OR, token.VAR, token.AND}, rpnKinds(t, "(A | B) & C"))
}

func TestVariablesSortedAndDeduped(t *testing.T) {
	toks, err := lexer.Scan("c & a | b | a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, Variables(toks))
}

func TestParseReturnsSyntaxError(t *testing.T) {
	toks, err := lexer.Scan("A &")
	require.NoError(t, err)
	_, _, err = Parse(toks)
	require.Error(t, err)
	var synErr *SyntaxError
	assert.ErrorAs(t, err, &synErr)
}
