package token

import (
	"soare/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a number or string literal.
func (t Token) IsLiteral() bool {
	return t.Kind == NumberLit || t.Kind == StringLit
}

// IsSymbol reports whether the token is one of the single-byte symbols.
func (t Token) IsSymbol() bool {
	return t.Kind >= Dollar && t.Kind <= Assign
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwBreak && t.Kind <= KwWrite
}

// IsIdent reports whether the token is an identifier, keywords included.
func (t Token) IsIdent() bool {
	return t.Kind == Ident || t.IsKeyword()
}

// IsWordLike reports whether s is one or more letters, digits or underscores
// in its entirety. Two adjacent word-like tokens would fuse when printed
// without a separator.
func IsWordLike(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsWordByte(s[i]) {
			return false
		}
	}
	return true
}

// IsWordByte reports whether b is in [A-Za-z0-9_].
func IsWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
