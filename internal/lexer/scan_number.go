package lexer

import (
	"soare/internal/token"
)

// scanNumber consumes the longest prefix that is still a valid decimal
// literal: digits, then at most one '.', then digits. "7." is valid,
// "12.5.3" stops before the second '.', "1e5" stops before 'e' and
// "0x1F" stops before 'x'. Exponents, radix prefixes and '_' separators
// are not part of the language.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // первая цифра

	seenDot := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.' && !seenDot:
			seenDot = true
			lx.cursor.Bump()
		default:
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}
