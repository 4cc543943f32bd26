package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// SourceExt is the extension of Soare sources.
	SourceExt = ".soare"
	// MinSuffix is appended to minified outputs in place of SourceExt.
	MinSuffix = ".min.soare"
)

// SourceFile is an input found by CollectSourceFiles.
type SourceFile struct {
	Path string
	// Root is the directory argument the file was found under, or "" when
	// the file was named directly.
	Root string
}

func isSource(path string) bool {
	return filepath.Ext(path) == SourceExt && !strings.HasSuffix(path, MinSuffix)
}

// CollectSourceFiles expands paths into Soare sources. Files named directly
// are taken whatever their extension; directories are walked recursively for
// *.soare, skipping earlier outputs (*.min.soare) and hidden directories.
// The result is sorted and free of duplicates.
func CollectSourceFiles(ctx context.Context, paths []string) ([]SourceFile, error) {
	var files []SourceFile
	seen := make(map[string]struct{})
	addFile := func(path, root string) {
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, SourceFile{Path: clean, Root: root})
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p, "")
			continue
		}

		root := filepath.Clean(p)
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if isSource(path) {
				addFile(path, root)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// OutputPath returns where the minified form of src is written. Without
// outDir the output sits next to the input; with it the layout below the
// walked root is mirrored under outDir, and directly named files land in
// outDir itself. A name without the .soare extension keeps it whole:
// notes.txt becomes notes.txt.min.soare.
func OutputPath(src SourceFile, outDir string) string {
	name := strings.TrimSuffix(src.Path, SourceExt) + MinSuffix
	if outDir == "" {
		return name
	}
	rel := filepath.Base(name)
	if src.Root != "" {
		if r, err := filepath.Rel(src.Root, name); err == nil {
			rel = r
		}
	}
	return filepath.Join(outDir, rel)
}
