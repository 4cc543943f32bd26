package lexer

import (
	"soare/internal/diag"
	"soare/internal/token"
)

// scanString reads a literal opened by a double quote, single quote or
// backtick, up to the first identical delimiter. Backslashes have no
// meaning. An unterminated literal runs to the end of input and is still a
// valid token; it is only reported as a warning.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == quote {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.warnLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
}
