package lexer

import (
	"errors"
	"fmt"

	"soare/internal/source"
)

// ErrCharacter is the kind of every CharacterError; test with errors.Is.
var ErrCharacter = errors.New("CharacterError")

// CharacterError reports a character that no lexical rule accepts.
// Tokenization stops at the first one and yields no tokens.
type CharacterError struct {
	Span source.Span
	Char rune
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("CharacterError: unexpected character %q at offset %d", e.Char, e.Span.Start)
}

func (e *CharacterError) Is(target error) bool {
	return target == ErrCharacter
}
