package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a decoded soare.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	meta   toml.MetaData
}

type Config struct {
	Minify MinifyConfig `toml:"minify"`
	Cache  CacheConfig  `toml:"cache"`
}

type MinifyConfig struct {
	MaxCharsPerLine int    `toml:"max_chars_per_line"`
	Width           string `toml:"width"`
	NoWrap          bool   `toml:"no_wrap"`
	Jobs            int    `toml:"jobs"`
	NFC             bool   `toml:"nfc"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// IsDefined reports whether the manifest sets key (e.g. "minify", "jobs"),
// so zero values can be told apart from missing keys.
func (m *Manifest) IsDefined(key ...string) bool {
	if m == nil {
		return false
	}
	return m.meta.IsDefined(key...)
}

// Load finds the nearest soare.toml from startDir and decodes it.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadFile(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile decodes the manifest at path. Unknown keys are an error.
func LoadFile(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
		meta:   meta,
	}, nil
}

// ResolvePath makes a manifest-relative path absolute against Root.
func (m *Manifest) ResolvePath(p string) string {
	p = filepath.FromSlash(strings.TrimSpace(p))
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}
