package lexer

import (
	"soare/internal/source"
	"soare/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. Whitespace and '?' comments are
// skipped. After the end of input it always returns EOF. A character that no
// rule accepts yields an Invalid token covering that character, reported as
// diag.LexUnknownChar; scanning resumes right after it.
func (lx *Lexer) Next() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isSymbolByte(ch):
		return lx.scanSymbol()
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case isQuote(ch):
		return lx.scanString()
	default:
		return lx.scanUnknown()
	}
}

// Tokenize scans the whole file and returns its tokens without the trailing EOF.
// Every call starts from offset 0 and builds a fresh slice. The first
// unrecognised character aborts the scan with a *CharacterError and no tokens.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			return tokens, nil
		case token.Invalid:
			return nil, &CharacterError{Span: tok.Span, Char: firstRune(tok.Text)}
		}
		tokens = append(tokens, tok)
	}
}

// TokenizeString is Tokenize over an in-memory buffer.
func TokenizeString(src string) ([]token.Token, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(src))
	return Tokenize(fs.Get(id), Options{})
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
