package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"soare/internal/diag"
	"soare/internal/driver"
	"soare/internal/lexer"
	"soare/internal/minify"
	"soare/internal/pipeline"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func defaultOpts() driver.MinifyOptions {
	return driver.MinifyOptions{Minify: minify.DefaultOptions(), Jobs: 2}
}

func TestMinifyPathsWritesNextToInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.soare"), "let x = 1\nwrite x\n")
	writeFile(t, filepath.Join(dir, "sub", "b.soare"), "? only a comment\nfn f(a) return a end\n")

	report, err := driver.MinifyPaths(context.Background(), []string{dir}, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Results) != 2 || report.Failed() != 0 || report.Changed() != 2 {
		t.Fatalf("results = %+v", report.Results)
	}
	if got := readFile(t, filepath.Join(dir, "a.min.soare")); got != "let x=1 write x" {
		t.Errorf("a.min.soare = %q", got)
	}
	if got := readFile(t, filepath.Join(dir, "sub", "b.min.soare")); got != "fn f(a)return a end" {
		t.Errorf("b.min.soare = %q", got)
	}

	// the outputs must not be picked up as inputs, and nothing changes
	again, err := driver.MinifyPaths(context.Background(), []string{dir}, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Results) != 2 || again.Changed() != 0 {
		t.Fatalf("second run results = %+v", again.Results)
	}
}

func TestMinifyPathsCheckAndStdout(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.soare")
	writeFile(t, src, "let  y = 2")

	opts := defaultOpts()
	opts.Check = true
	report, err := driver.MinifyPaths(context.Background(), []string{src}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Results[0].Changed {
		t.Fatal("missing output should be reported as changed")
	}
	if _, err := os.Stat(filepath.Join(dir, "a.min.soare")); !os.IsNotExist(err) {
		t.Fatalf("check mode wrote output: %v", err)
	}

	opts = defaultOpts()
	opts.Stdout = true
	report, err = driver.MinifyPaths(context.Background(), []string{src}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(report.Results[0].Output); got != "let y=2" {
		t.Fatalf("stdout output = %q", got)
	}
	if report.Results[0].OutPath != "" {
		t.Fatalf("stdout mode set OutPath %q", report.Results[0].OutPath)
	}
}

func TestMinifyPathsOutDirMirrorsTree(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib", "m.soare"), "write 1")

	opts := defaultOpts()
	opts.OutDir = out
	if _, err := driver.MinifyPaths(context.Background(), []string{dir}, opts); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, filepath.Join(out, "lib", "m.min.soare")); got != "write 1" {
		t.Fatalf("mirrored output = %q", got)
	}
}

func TestMinifyPathsOutDirConflict(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	x := filepath.Join(dir, "x", "m.soare")
	y := filepath.Join(dir, "y", "m.soare")
	z := filepath.Join(dir, "z.soare")
	writeFile(t, x, "let a = 1")
	writeFile(t, y, "let b = 2")
	writeFile(t, z, "let c = 3")

	opts := defaultOpts()
	opts.OutDir = out
	report, err := driver.MinifyPaths(context.Background(), []string{x, y, z}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() != 2 {
		t.Fatalf("failed = %d, want 2: %+v", report.Failed(), report.Results)
	}
	for _, r := range report.Results {
		if r.Path == z {
			if r.Err != nil {
				t.Fatalf("z.soare err = %v", r.Err)
			}
			continue
		}
		if !errors.Is(r.Err, driver.ErrOutputConflict) {
			t.Errorf("%s err = %v, want ErrOutputConflict", r.Path, r.Err)
		}
		if r.OutPath != filepath.Join(out, "m.min.soare") {
			t.Errorf("%s OutPath = %q", r.Path, r.OutPath)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "m.min.soare")); !os.IsNotExist(err) {
		t.Fatalf("conflicting output was written: %v", err)
	}
	if got := readFile(t, filepath.Join(out, "z.min.soare")); got != "let c=3" {
		t.Fatalf("z output = %q", got)
	}

	conflicts := 0
	for _, d := range report.Bag.Items() {
		if d.Code == diag.IOOutputConflict {
			conflicts++
		}
	}
	if conflicts != 2 {
		t.Fatalf("conflict diagnostics = %d, want 2", conflicts)
	}

	// без --out выходы лежат рядом с входами и не пересекаются
	report, err = driver.MinifyPaths(context.Background(), []string{x, y}, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() != 0 {
		t.Fatalf("without out dir: %+v", report.Results)
	}
}

func TestMinifyPathsNamedFileAnyExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.txt")
	writeFile(t, src, "write  1")

	report, err := driver.MinifyPaths(context.Background(), []string{src}, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Results) != 1 || report.Failed() != 0 {
		t.Fatalf("results = %+v", report.Results)
	}
	if got := readFile(t, src+driver.MinSuffix); got != "write 1" {
		t.Fatalf("output = %q", got)
	}
}

func TestMinifyPathsCharacterError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.soare"), "let a = #\n")
	writeFile(t, filepath.Join(dir, "good.soare"), "let a = 1\n")

	report, err := driver.MinifyPaths(context.Background(), []string{dir}, defaultOpts())
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed() != 1 {
		t.Fatalf("failed = %d", report.Failed())
	}
	bad := report.Results[0]
	if !errors.Is(bad.Err, lexer.ErrCharacter) {
		t.Fatalf("bad.soare err = %v", bad.Err)
	}
	var ce *lexer.CharacterError
	if !errors.As(bad.Err, &ce) || ce.Char != '#' {
		t.Fatalf("CharacterError = %+v", ce)
	}
	if !report.Bag.HasErrors() || report.Bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("bag = %+v", report.Bag.Items())
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.min.soare")); !os.IsNotExist(err) {
		t.Fatal("output written for failed file")
	}
	if got := readFile(t, filepath.Join(dir, "good.min.soare")); got != "let a=1" {
		t.Fatalf("good output = %q", got)
	}
}

func TestMinifyPathsCache(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "s.soare")
	writeFile(t, src, "write \"open")

	cache, err := driver.OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := defaultOpts()
	opts.Stdout = true
	opts.Cache = cache

	first, err := driver.MinifyPaths(context.Background(), []string{src}, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := driver.MinifyPaths(context.Background(), []string{src}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Results[0].Cached || !second.Results[0].Cached {
		t.Fatalf("cached flags: first=%v second=%v", first.Results[0].Cached, second.Results[0].Cached)
	}
	if string(second.Results[0].Output) != `write"open` {
		t.Fatalf("cached output = %q", second.Results[0].Output)
	}
	if !second.Bag.HasWarnings() || second.Bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("warning not restored from cache: %+v", second.Bag.Items())
	}

	// another line budget is another key
	opts.Minify.MaxCharPerLine = 3
	third, err := driver.MinifyPaths(context.Background(), []string{src}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Results[0].Cached {
		t.Fatal("options change must miss the cache")
	}
}

func TestMinifyPathsNFC(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "n.soare")
	writeFile(t, src, "write \"cafe\u0301\"")

	opts := defaultOpts()
	opts.Stdout = true
	opts.NFC = true
	report, err := driver.MinifyPaths(context.Background(), []string{src}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(report.Results[0].Output); got != "write\"caf\u00e9\"" {
		t.Fatalf("nfc output = %q", got)
	}
}

func TestMinifyPathsProgressAndTimings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.soare"), "a")
	writeFile(t, filepath.Join(dir, "b.soare"), "b $")

	var rec pipeline.Recorder
	opts := defaultOpts()
	opts.Stdout = true
	opts.Timings = true
	opts.Progress = &rec
	report, err := driver.MinifyPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range report.Results {
		last, ok := rec.Last(r.Path)
		if !ok || last.Status != pipeline.StatusDone {
			t.Errorf("last event for %s = %+v", r.Path, last)
		}
	}

	found := false
	for _, d := range report.Bag.Items() {
		if d.Code == diag.ObsTimings {
			found = len(d.Notes) == 1
		}
	}
	if !found {
		t.Fatalf("no timings diagnostic in %+v", report.Bag.Items())
	}
}

func TestMinifyPathsNoSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.min.soare"), "a")
	writeFile(t, filepath.Join(dir, "readme.txt"), "a")

	_, err := driver.MinifyPaths(context.Background(), []string{dir}, defaultOpts())
	if !errors.Is(err, driver.ErrNoSources) {
		t.Fatalf("err = %v, want ErrNoSources", err)
	}
	if _, err := driver.MinifyPaths(context.Background(), []string{filepath.Join(dir, "nope")}, defaultOpts()); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestMinifyPathsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.MinifyPaths(ctx, []string{"."}, defaultOpts()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
