package lexer

import (
	"unicode"
	"unicode/utf8"

	"soare/internal/token"
)

// peekRune читает текущую позицию как руну
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
}

// spaceLen returns the byte length of the white space rune at the cursor, or 0.
func (lx *Lexer) spaceLen() int {
	r, sz := lx.peekRune()
	if sz == 0 || !isSpaceRune(r) {
		return 0
	}
	return sz
}

// isSpaceRune matches the ECMAScript white space and line terminator set:
// unicode.IsSpace without U+0085 (NEL), plus the byte order mark.
func isSpaceRune(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return token.IsWordByte(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isQuote(b byte) bool { return b == '"' || b == '\'' || b == '`' }

func isSymbolByte(b byte) bool {
	_, ok := token.LookupSymbol(b)
	return ok
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
