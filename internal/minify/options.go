package minify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DefaultMaxCharPerLine is the line budget used when none is configured.
const DefaultMaxCharPerLine = 100

// WidthMode selects how emitted text is measured against the line budget.
type WidthMode uint8

const (
	// WidthChars counts characters (runes).
	WidthChars WidthMode = iota
	// WidthCells counts terminal display cells, so wide glyphs count twice.
	WidthCells
)

func (m WidthMode) String() string {
	switch m {
	case WidthChars:
		return "chars"
	case WidthCells:
		return "cells"
	default:
		return "unknown"
	}
}

// ParseWidthMode converts a config or flag value to a WidthMode.
func ParseWidthMode(s string) (WidthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chars":
		return WidthChars, nil
	case "cells":
		return WidthCells, nil
	default:
		return WidthChars, fmt.Errorf("invalid width mode %q (expected chars|cells)", s)
	}
}

func (m WidthMode) measure(s string) int {
	if m == WidthCells {
		return runewidth.StringWidth(s)
	}
	return utf8.RuneCountInString(s)
}

// Options configures a reassembly pass.
type Options struct {
	// MaxCharPerLine is the soft line budget. A line break goes before a
	// token once the output length reaches MaxCharPerLine*line, so zero or
	// a negative budget breaks before every token.
	MaxCharPerLine int
	Width          WidthMode
	// NoWrap emits a single line regardless of MaxCharPerLine.
	NoWrap bool
}

// DefaultOptions returns the options of a freshly constructed Minifier.
func DefaultOptions() Options {
	return Options{MaxCharPerLine: DefaultMaxCharPerLine, Width: WidthChars}
}
