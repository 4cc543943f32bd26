package project_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soare/internal/project"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[minify]\njobs = 2\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := project.FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Fatalf("root = %q, want %q", got, want)
	}
}

func TestFindManifestMissing(t *testing.T) {
	// t.TempDir может лежать под каталогом с soare.toml только в очень странной среде
	_, ok, err := project.FindManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Skip("soare.toml found above temp dir")
	}
}

func TestLoadFileDefinedKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[minify]\nmax_chars_per_line = 0\n[cache]\ndir = \"cache\"\n")

	m, err := project.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsDefined("minify", "max_chars_per_line") {
		t.Error("max_chars_per_line should be defined even when zero")
	}
	if m.IsDefined("minify", "jobs") {
		t.Error("jobs is not in the file")
	}
	if got := m.ResolvePath(m.Config.Cache.Dir); got != filepath.Join(m.Root, "cache") {
		t.Errorf("ResolvePath = %q", got)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[minify]\nwidht = \"cells\"\n")
	_, err := project.LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "minify.widht") {
		t.Fatalf("err = %v, want unknown key minify.widht", err)
	}
}
