package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"soare/internal/diag"
	"soare/internal/lexer"
	"soare/internal/source"
	"soare/internal/token"
)

func makeFile(input string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.soare", []byte(input)))
}

func texts(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// expectTexts проверяет последовательность текстов токенов
func expectTexts(t *testing.T, input string, expected ...string) []token.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(makeFile(input), lexer.Options{})
	if err != nil {
		t.Fatalf("Tokenize(%q): unexpected error %v", input, err)
	}
	got := texts(tokens)
	if strings.Join(got, "\x00") != strings.Join(expected, "\x00") || len(got) != len(expected) {
		t.Fatalf("Tokenize(%q)\n got: %q\nwant: %q", input, got, expected)
	}
	return tokens
}

func expectCharacterError(t *testing.T, input string, offset uint32, char rune) {
	t.Helper()
	tokens, err := lexer.Tokenize(makeFile(input), lexer.Options{})
	if tokens != nil {
		t.Fatalf("Tokenize(%q): expected no tokens, got %q", input, texts(tokens))
	}
	if !errors.Is(err, lexer.ErrCharacter) {
		t.Fatalf("Tokenize(%q): err = %v, want CharacterError", input, err)
	}
	var cerr *lexer.CharacterError
	if !errors.As(err, &cerr) {
		t.Fatalf("Tokenize(%q): err %T is not *CharacterError", input, err)
	}
	if cerr.Span.Start != offset || cerr.Char != char {
		t.Fatalf("Tokenize(%q): error at %d %q, want %d %q", input, cerr.Span.Start, cerr.Char, offset, char)
	}
}

func TestWhitespaceAndEmpty(t *testing.T) {
	expectTexts(t, "")
	expectTexts(t, " \t\r\n\v\f")
	expectTexts(t, "\u00a0a\u2028b\uFEFF", "a", "b")
	expectTexts(t, "\u1680a\u200a\u202fb\u3000", "a", "b")
}

func TestSymbolsAreSingleCharacters(t *testing.T) {
	expectTexts(t, "==", "=", "=")
	expectTexts(t, "a<=b", "a", "<", "=", "b")
	expectTexts(t, "$@,;:[]()<+-^*/%>&|!=",
		"$", "@", ",", ";", ":", "[", "]", "(", ")", "<", "+", "-", "^", "*", "/", "%", ">", "&", "|", "!", "=")
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tokens := expectTexts(t, "let _x1 = fn_call(while)", "let", "_x1", "=", "fn_call", "(", "while", ")")
	wantKinds := []token.Kind{token.KwLet, token.Ident, token.Assign, token.Ident, token.LParen, token.KwWhile, token.RParen}
	for i, tok := range tokens {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d (%q): kind %v, want %v", i, tok.Text, tok.Kind, wantKinds[i])
		}
	}
}

func TestNumbers(t *testing.T) {
	expectTexts(t, "12", "12")
	expectTexts(t, "12.5", "12.5")
	expectTexts(t, "7.", "7.")
	expectTexts(t, "3.x", "3.", "x")
	expectTexts(t, "1e5", "1", "e5")
	expectTexts(t, "0x1F", "0", "x1F")
	expectTexts(t, "42abc", "42", "abc")
	expectTexts(t, "1 2", "1", "2")
	expectTexts(t, "10+2.5", "10", "+", "2.5")
}

func TestNumberStopsAtSecondDot(t *testing.T) {
	// "12.5" is the longest valid prefix; '.' is not a symbol.
	expectCharacterError(t, "12.5.3", 4, '.')
}

func TestStrings(t *testing.T) {
	expectTexts(t, `"abc"`, `"abc"`)
	expectTexts(t, `'it''s'`, `'it'`, `'s'`)
	expectTexts(t, "`a \"b\" c`", "`a \"b\" c`")
	expectTexts(t, `"a\"b"`, `"a\"`, "b", `"`)
	expectTexts(t, "write \"? not a comment\";", "write", `"? not a comment"`, ";")
}

func TestUnterminatedStringRunsToEnd(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("u.soare", []byte(`x = "abc`)))
	bag := diag.NewBag(4)

	tokens, err := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := texts(tokens); len(got) != 3 || got[2] != `"abc` {
		t.Fatalf("tokens = %q", got)
	}
	if tokens[2].Kind != token.StringLit {
		t.Fatalf("kind = %v, want StringLit", tokens[2].Kind)
	}
	if bag.HasErrors() || !bag.HasWarnings() || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected a single unterminated-string warning, got %+v", bag.Items())
	}
	expectTexts(t, `"`, `"`)
}

func TestCommentsAreDiscarded(t *testing.T) {
	expectTexts(t, "? header # ~ . {}\nlet a", "let", "a")
	expectTexts(t, "a ? trailing # text", "a")
	expectTexts(t, "a?x\rb", "a", "b")
	expectTexts(t, "?only")
}

func TestUnknownCharacter(t *testing.T) {
	expectCharacterError(t, "let a = 1 # x", 10, '#')
	expectCharacterError(t, "{", 0, '{')
	expectCharacterError(t, "a é", 2, 'é')
	// NEL не входит в пробельные символы ECMAScript
	expectCharacterError(t, "a\u0085b", 1, '\u0085')
}

func TestSpansMatchText(t *testing.T) {
	src := "fn add(a, b)\n  return a+b ? sum\nend"
	file := makeFile(src)
	tokens, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var joined strings.Builder
	for _, tok := range tokens {
		if got := string(file.Content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			t.Errorf("span %v covers %q, token text %q", tok.Span, got, tok.Text)
		}
		joined.WriteString(tok.Text)
	}
	if joined.String() != "fnadd(a,b)returna+bend" {
		t.Errorf("concatenated tokens = %q", joined.String())
	}
}

func TestTokenizeIsIdempotent(t *testing.T) {
	file := makeFile("let x = 'y' ? c\nwrite x")
	first, err1 := lexer.Tokenize(file, lexer.Options{})
	second, err2 := lexer.Tokenize(file, lexer.Options{})
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("token %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
	first[0].Text = "mutated"
	if second[0].Text != "let" {
		t.Fatal("each call must return its own slice")
	}
}

func TestNextKeepsGoingAfterUnknown(t *testing.T) {
	bag := diag.NewBag(4)
	lx := lexer.New(makeFile("a#b"), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var kinds []token.Kind
	for {
		tok := lx.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	want := []token.Kind{token.Ident, token.Invalid, token.Ident, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected LexUnknownChar, got %+v", bag.Items())
	}
	if lx.Next().Kind != token.EOF {
		t.Fatal("after EOF Next must keep returning EOF")
	}
}

func TestTokenizeString(t *testing.T) {
	tokens, err := lexer.TokenizeString("write 1")
	if err != nil || len(tokens) != 2 {
		t.Fatalf("TokenizeString = %q, %v", texts(tokens), err)
	}
}
