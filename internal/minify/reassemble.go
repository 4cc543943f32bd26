package minify

import (
	"strings"

	"soare/internal/token"
)

// Reassemble joins tokens into minified text. It never fails and has no side effects.
func Reassemble(tokens []token.Token, opts Options) string {
	var out strings.Builder
	size := 0
	for _, tok := range tokens {
		size += len(tok.Text) + 1
	}
	switch {
	case opts.NoWrap:
	case opts.MaxCharPerLine > 0:
		size += size / opts.MaxCharPerLine
	default:
		// бюджет <= 0: перенос перед каждым токеном
		size += len(tokens)
	}
	out.Grow(size)

	length := 0
	line := 1
	for i, tok := range tokens {
		if !opts.NoWrap && length >= opts.MaxCharPerLine*line {
			line++
			out.WriteByte('\n')
			length++
		}

		out.WriteString(tok.Text)
		length += opts.Width.measure(tok.Text)

		// у последнего токена нет соседа справа, пробел не нужен
		if i+1 < len(tokens) && token.IsWordLike(tok.Text) && token.IsWordLike(tokens[i+1].Text) {
			out.WriteByte(' ')
			length++
		}
	}
	return out.String()
}
