package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
)

// languageSeeds cover every lexer rule at least once.
var languageSeeds = []string{
	"",
	"let x = 10\nwrite x\n",
	"fn add(a, b) do\n  return a + b\nend\n",
	"? comment only",
	"write \"hi\" ? trailing # comment\r\nwrite 'x'",
	"while i < 10 do i = i + 1 end",
	"12.5 1. 0x1F 1e5",
	"if a == b do write `tpl` else raise \"no\" end",
	"try do loadimport \"lib\" end iferror do write 0 end",
	"$@,;:[]()<+-^*/%>&|!=",
	"\uFEFFlet bom = 1",
	"\"unterminated",
	"write \"café\" write 'café'",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.soare файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".soare" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
