// Package lexer turns an expression string into a token sequence, per
// the scan rule: skip spaces, try the longest matching symbol from
// token.Symbols, else consume a maximal run of ASCII letters as a
// variable name, else fail.
package lexer

import (
	"fmt"

	"boolmin/token"
)

// LexError reports an unrecognized character encountered while scanning.
type LexError struct {
	Pos  int
	Rune rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer: unexpected character %q at position %d", e.Rune, e.Pos)
}

// Lexer scans a source string into tokens one at a time.
type Lexer struct {
	src     string
	pos     int
	symbols []token.Symbol
}

// New creates a Lexer over src using the standard token.Symbols table.
func New(src string) *Lexer {
	return &Lexer{src: src, symbols: sortedSymbols()}
}

// sortedSymbols returns token.Symbols ordered so that longer surface forms
// are tried before any shorter symbol that shares a prefix, independent of
// the declaration order in the token package. This keeps a future two-byte
// symbol from being shadowed by a one-byte prefix already in the table.
func sortedSymbols() []token.Symbol {
	out := make([]token.Symbol, len(token.Symbols))
	copy(out, token.Symbols)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j].Text) > len(out[j-1].Text); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Scan lexes the full source and returns its tokens (without a terminating
// EOF marker — the caller's grammar is self-delimiting) or the first
// LexError encountered.
func Scan(src string) ([]token.Token, error) {
	l := New(src)
	var toks []token.Token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// next scans and returns the next token. ok is false at end of input.
func (l *Lexer) next() (tok token.Token, ok bool, err error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token.Token{}, false, nil
	}

	start := l.pos

	if sym, matched := l.matchSymbol(); matched {
		return token.Token{Kind: sym.Kind}, true, nil
	}

	if isLetter(l.src[l.pos]) {
		begin := l.pos
		for l.pos < len(l.src) && isLetter(l.src[l.pos]) {
			l.pos++
		}
		return token.Token{Kind: token.VAR, Name: l.src[begin:l.pos]}, true, nil
	}

	return token.Token{}, false, &LexError{Pos: start, Rune: rune(l.src[start])}
}

// matchSymbol tries every entry of l.symbols (longest-first) against the
// current position and consumes the longest one that matches.
func (l *Lexer) matchSymbol() (token.Symbol, bool) {
	for _, sym := range l.symbols {
		n := len(sym.Text)
		if l.pos+n <= len(l.src) && l.src[l.pos:l.pos+n] == sym.Text {
			l.pos += n
			return sym, true
		}
	}
	return token.Symbol{}, false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
