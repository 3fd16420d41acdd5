package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boolmin/token"
)

func TestScanOperators(t *testing.T) {
	toks, err := Scan("A & B | !C => D == E")
	assert.NoError(t, err)

	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.VAR, token.AND, token.VAR, token.OR, token.NOT, token.VAR,
		token.IMPL, token.VAR, token.EQ, token.VAR,
	}, kinds)
}

func TestScanMultiCharSymbolsBeforeSingleChar(t *testing.T) {
	toks, err := Scan("a=>b==c")
	assert.NoError(t, err)
	assert.Equal(t, token.IMPL, toks[1].Kind)
	assert.Equal(t, token.EQ, toks[3].Kind)
}

func TestScanConstants(t *testing.T) {
	toks, err := Scan("0 & 1")
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{token.FALSE, token.AND, token.TRUE}, []token.Kind{toks[0].Kind, toks[1].Kind, toks[2].Kind})
}

func TestScanVariableNames(t *testing.T) {
	toks, err := Scan("foo & barBaz")
	assert.NoError(t, err)
	assert.Equal(t, "foo", toks[0].Name)
	assert.Equal(t, "barBaz", toks[2].Name)
}

func TestScanIgnoresSpaces(t *testing.T) {
	toks, err := Scan("  A   &    B ")
	assert.NoError(t, err)
	assert.Len(t, toks, 3)
}

func TestScanRejectsIllegalCharacter(t *testing.T) {
	_, err := Scan("A % B")
	assert.Error(t, err)
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, '%', lexErr.Rune)
}

func TestScanEmptyInput(t *testing.T) {
	toks, err := Scan("")
	assert.NoError(t, err)
	assert.Empty(t, toks)
}

func TestScanDoubleNegation(t *testing.T) {
	toks, err := Scan("!!A")
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{token.NOT, token.NOT, token.VAR}, []token.Kind{toks[0].Kind, toks[1].Kind, toks[2].Kind})
}
