package fuzztests

import (
	"errors"
	"testing"

	"soare/internal/diag"
	"soare/internal/lexer"
	"soare/internal/source"
	"soare/internal/testkit"
	"soare/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func fuzzFile(input []byte) *source.File {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("fuzz.soare", append([]byte(nil), input...)))
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		file := fuzzFile(input)
		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}

func FuzzTokenize(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := fuzzFile(input)
		tokens, err := lexer.Tokenize(file, lexer.Options{})
		if err != nil {
			if !errors.Is(err, lexer.ErrCharacter) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			if tokens != nil {
				t.Fatalf("partial tokens returned with error: %d", len(tokens))
			}
			return
		}
		if err := testkit.CheckTokenInvariants(file, tokens); err != nil {
			t.Fatalf("invariants: %v", err)
		}

		again, err := lexer.Tokenize(file, lexer.Options{})
		if err != nil {
			t.Fatalf("second tokenize failed: %v", err)
		}
		if len(again) != len(tokens) {
			t.Fatalf("tokenize not idempotent: %d vs %d tokens", len(tokens), len(again))
		}
		for i := range tokens {
			if tokens[i] != again[i] {
				t.Fatalf("token %d differs: %+v vs %+v", i, tokens[i], again[i])
			}
		}
	})
}
