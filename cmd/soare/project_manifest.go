package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"soare/internal/driver"
	"soare/internal/minify"
	"soare/internal/project"
)

// minifySettings is the effective configuration: defaults, then
// soare.toml, then command-line flags.
type minifySettings struct {
	MaxCharsPerLine int
	Width           minify.WidthMode
	NoWrap          bool
	Jobs            int
	NFC             bool
	CacheEnabled    bool
	CacheDir        string
	ManifestPath    string
}

func defaultSettings() minifySettings {
	return minifySettings{
		MaxCharsPerLine: minify.DefaultMaxCharPerLine,
		Width:           minify.WidthChars,
		CacheEnabled:    true,
	}
}

// apply overlays the keys actually present in the manifest.
func (s *minifySettings) apply(m *project.Manifest) error {
	if m == nil {
		return nil
	}
	s.ManifestPath = m.Path
	cfg := m.Config
	if m.IsDefined("minify", "max_chars_per_line") {
		if cfg.Minify.MaxCharsPerLine < 0 {
			return fmt.Errorf("%s: [minify].max_chars_per_line must be >= 0", m.Path)
		}
		s.MaxCharsPerLine = cfg.Minify.MaxCharsPerLine
	}
	if m.IsDefined("minify", "width") {
		w, err := minify.ParseWidthMode(cfg.Minify.Width)
		if err != nil {
			return fmt.Errorf("%s: [minify].width: %w", m.Path, err)
		}
		s.Width = w
	}
	if m.IsDefined("minify", "no_wrap") {
		s.NoWrap = cfg.Minify.NoWrap
	}
	if m.IsDefined("minify", "jobs") {
		if cfg.Minify.Jobs < 0 {
			return fmt.Errorf("%s: [minify].jobs must be >= 0", m.Path)
		}
		s.Jobs = cfg.Minify.Jobs
	}
	if m.IsDefined("minify", "nfc") {
		s.NFC = cfg.Minify.NFC
	}
	if m.IsDefined("cache", "enabled") {
		s.CacheEnabled = cfg.Cache.Enabled
	}
	if m.IsDefined("cache", "dir") {
		if dir := m.ResolvePath(cfg.Cache.Dir); dir != "" {
			s.CacheDir = dir
		}
	}
	return nil
}

// resolveSettings loads --config (or the nearest soare.toml) and overlays
// the flags the user set explicitly on cmd.
func resolveSettings(cmd *cobra.Command) (minifySettings, error) {
	s := defaultSettings()

	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	var manifest *project.Manifest
	if configPath != "" {
		manifest, err = project.LoadFile(configPath)
	} else {
		manifest, _, err = project.Load(".")
	}
	if err != nil {
		return s, err
	}
	if err := s.apply(manifest); err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if flags.Lookup("width") != nil && flags.Changed("width") {
		v, _ := flags.GetInt("width")
		if v < 0 {
			return s, fmt.Errorf("--width must be >= 0, got %d", v)
		}
		s.MaxCharsPerLine = v
	}
	if flags.Lookup("cells") != nil && flags.Changed("cells") {
		if cells, _ := flags.GetBool("cells"); cells {
			s.Width = minify.WidthCells
		} else {
			s.Width = minify.WidthChars
		}
	}
	if flags.Lookup("no-wrap") != nil && flags.Changed("no-wrap") {
		s.NoWrap, _ = flags.GetBool("no-wrap")
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		s.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Lookup("nfc") != nil && flags.Changed("nfc") {
		s.NFC, _ = flags.GetBool("nfc")
	}
	if flags.Lookup("no-cache") != nil && flags.Changed("no-cache") {
		if noCache, _ := flags.GetBool("no-cache"); noCache {
			s.CacheEnabled = false
		}
	}

	if s.CacheDir == "" {
		dir, err := driver.DefaultCacheDir("soare")
		if err != nil {
			// без домашнего каталога просто работаем без кэша
			s.CacheEnabled = false
		}
		s.CacheDir = dir
	}
	return s, nil
}
