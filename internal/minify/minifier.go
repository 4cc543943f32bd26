package minify

import (
	"slices"

	"soare/internal/diag"
	"soare/internal/lexer"
	"soare/internal/source"
	"soare/internal/token"
)

// Minifier holds one raw Soare source and the token list of its last
// successful tokenization.
type Minifier struct {
	// MaxCharPerLine is read by Apply; change it freely between calls.
	MaxCharPerLine int
	Width          WidthMode
	NoWrap         bool
	// Reporter, when set, receives lexer diagnostics such as unterminated
	// strings and unknown characters.
	Reporter diag.Reporter

	file   *source.File
	tokens []token.Token
}

// New returns a Minifier for raw with the default line budget.
func New(raw string) *Minifier {
	return NewFromFile(virtualFile(raw))
}

// NewFromFile returns a Minifier over an already loaded source file, so that
// token spans resolve against the caller's FileSet.
func NewFromFile(file *source.File) *Minifier {
	return &Minifier{
		MaxCharPerLine: DefaultMaxCharPerLine,
		Width:          WidthChars,
		file:           file,
	}
}

// Tokenizer scans the source from the start and replaces the stored token
// list. It returns a copy the caller may keep. On *lexer.CharacterError the
// stored list is cleared, so a following Apply yields "".
func (m *Minifier) Tokenizer() ([]token.Token, error) {
	m.tokens = nil
	tokens, err := lexer.Tokenize(m.file, lexer.Options{Reporter: m.Reporter})
	if err != nil {
		return nil, err
	}
	m.tokens = tokens
	return slices.Clone(tokens), nil
}

// Apply reassembles the current token list using the current settings.
// It does not re-tokenize.
func (m *Minifier) Apply() string {
	return Reassemble(m.tokens, Options{MaxCharPerLine: m.MaxCharPerLine, Width: m.Width, NoWrap: m.NoWrap})
}

// Tokens returns a copy of the current token list.
func (m *Minifier) Tokens() []token.Token {
	return slices.Clone(m.tokens)
}

// String tokenizes raw and reassembles it in one step.
func String(raw string, opts Options) (string, error) {
	tokens, err := lexer.Tokenize(virtualFile(raw), lexer.Options{})
	if err != nil {
		return "", err
	}
	return Reassemble(tokens, opts), nil
}

func virtualFile(raw string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("<input>", []byte(raw)))
}
