package driver

import (
	"soare/internal/diag"
	"soare/internal/lexer"
	"soare/internal/source"
	"soare/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and streams it through the lexer. Unlike
// lexer.Tokenize it does not stop at unknown characters: they show up as
// Invalid tokens with a diagnostic each, which is what `soare tokenize`
// wants to display. The trailing EOF token is included.
func Tokenize(path string, maxDiagnostics int, nfc bool) (*TokenizeResult, error) {
	content, flags, err := loadSource(path, nfc)
	if err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.Add(path, content, flags))

	bag := diag.NewBag(maxDiagnostics)
	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporterAdapter.Reporter()})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
