package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"soare/internal/diag"
	"soare/internal/diagfmt"
	"soare/internal/lexer"
	"soare/internal/source"
)

func setup(t *testing.T, src string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	return fs, fs.AddVirtual("main.soare", []byte(src))
}

func TestPrettyCaret(t *testing.T) {
	fs, id := setup(t, "let a = 1\nlet b = #x\n")
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 18, End: 19}, "unknown character '#'"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})

	want := "main.soare:2:9: ERROR LEX1001: unknown character '#'\n" +
		" 2 | let b = #x\n" +
		"   |         ^\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyUnderlineWidth(t *testing.T) {
	fs, id := setup(t, `write "日本`)
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.LexUnterminatedString, source.Span{File: id, Start: 6, End: 13}, "unterminated string"))

	var runes, cells bytes.Buffer
	diagfmt.Pretty(&runes, bag, fs, diagfmt.PrettyOpts{})
	diagfmt.Pretty(&cells, bag, fs, diagfmt.PrettyOpts{Cells: true})

	if !strings.Contains(runes.String(), "      ^~~\n") {
		t.Errorf("rune underline:\n%s", runes.String())
	}
	if !strings.Contains(cells.String(), "      ^~~~~\n") {
		t.Errorf("cell underline:\n%s", cells.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs, id := setup(t, "a\n")
	sp := source.Span{File: id, Start: 0, End: 1}
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, sp, "timings").WithNote(sp, "tokenize 0.10 ms"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	if !strings.Contains(buf.String(), "note: tokenize 0.10 ms") {
		t.Fatalf("timings notes must always render:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	fs, id := setup(t, "x\n#")
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 2, End: 3}, "unknown character '#'"))
	bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: id}, "disk full"))

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true, Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 {
		t.Fatalf("Max not applied, count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1001" || d.Severity != "ERROR" || d.Location.File != "main.soare" {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 {
		t.Errorf("location = %+v", d.Location)
	}
}

func TestJSONNilBag(t *testing.T) {
	out := diagfmt.BuildDiagnosticsOutput(nil, nil, diagfmt.JSONOpts{})
	if out.Count != 0 || out.Diagnostics == nil {
		t.Fatalf("nil bag output = %+v", out)
	}
}

func TestFormatTokens(t *testing.T) {
	fs, id := setup(t, "let x=1 ?c\nwrite x")
	toks, err := lexer.Tokenize(fs.Get(id), lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var pretty bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(pretty.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("want 6 token lines, got:\n%s", pretty.String())
	}
	if !strings.Contains(lines[4], `"write" at 2:1-2:6`) {
		t.Errorf("line 5 = %q", lines[4])
	}

	var js bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&js, toks, fs); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 6 || out[2].Kind != "Assign" || out[5].Line != 2 {
		t.Fatalf("json tokens = %+v", out)
	}
}

func TestPrettyFileLevelDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("missing.soare", nil, source.FileVirtual)
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: id}, "failed to load file: no such file"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	want := "missing.soare: ERROR IO4001: failed to load file: no such file\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
