package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"soare/internal/source"
	"soare/internal/token"
)

type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
	Line uint32      `json:"line,omitempty"`
	Col  uint32      `json:"col,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		if _, err := fmt.Fprintf(w, "%3d: %-12s %q", i+1, tok.Kind.String(), tok.Text); err != nil {
			return err
		}
		if fs != nil && fs.Get(tok.Span.File) != nil {
			startPos, endPos := fs.Resolve(tok.Span)
			fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if fs != nil && fs.Get(tok.Span.File) != nil {
			pos, _ := fs.Resolve(tok.Span)
			out.Line, out.Col = pos.Line, pos.Col
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
