package lexer

import (
	"fmt"

	"soare/internal/diag"
	"soare/internal/token"
)

// scanSymbol emits exactly one byte; operators are never coalesced.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	kind, _ := token.LookupSymbol(lx.cursor.Bump())
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanUnknown consumes one whole rune that no rule accepts.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	r, sz := lx.peekRune()
	lx.cursor.Advance(max(sz, 1))
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", r))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
