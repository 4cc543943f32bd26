// Package testkit holds checks shared by package tests and fuzz harnesses.
package testkit

import (
	"fmt"
	"strings"
	"unicode"

	"fortio.org/safecast"

	"soare/internal/source"
	"soare/internal/token"
)

// CheckTokenInvariants verifies a token list produced from sf:
// 1) every span is non-empty, belongs to sf and lies within its content
// 2) spans are strictly ordered and do not overlap
// 3) Text is exactly the source slice under Span
// 4) the bytes between tokens are only whitespace or '?' comments
func CheckTokenInvariants(sf *source.File, tokens []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span points to file %d, want %d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%s): empty span %v", i, tok.Kind, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, sp, prevEnd)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q, source has %q", i, tok.Text, got)
		}
		if gap := string(sf.Content[prevEnd:sp.Start]); !isTrivia(gap) {
			return fmt.Errorf("token %d: unexpected bytes before token: %q", i, gap)
		}
		prevEnd = sp.End
	}
	if gap := string(sf.Content[prevEnd:]); !isTrivia(gap) {
		return fmt.Errorf("unexpected trailing bytes: %q", gap)
	}
	return nil
}

// isTrivia: пробельные символы и комментарии от '?' до конца строки.
func isTrivia(s string) bool {
	for len(s) > 0 {
		if s[0] == '?' {
			end := strings.IndexAny(s, "\n\r")
			if end < 0 {
				return true
			}
			s = s[end:]
			continue
		}
		trimmed := strings.TrimLeftFunc(s, isSpace)
		if len(trimmed) == len(s) {
			return false
		}
		s = trimmed
	}
	return true
}

// Joined concatenates token texts; whitespace and comments do not survive
// tokenization, so equal Joined values mean equal programs.
func Joined(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func isSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}
