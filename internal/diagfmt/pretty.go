package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"soare/internal/diag"
	"soare/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Faint),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.bold.Sprint(location(d.Primary, fs, opts)),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message)
		writeSnippet(w, d.Primary, fs, p, opts.Cells)

		if !opts.ShowNotes && d.Code != diag.ObsTimings {
			continue
		}
		for _, n := range d.Notes {
			if n.Span == d.Primary || fs == nil || fs.Get(n.Span.File) == nil {
				fmt.Fprintf(w, "  %s %s\n", p.info.Sprint("note:"), n.Msg)
				continue
			}
			fmt.Fprintf(w, "  %s %s: %s\n", p.info.Sprint("note:"), location(n.Span, fs, opts), n.Msg)
		}
	}
}

func location(sp source.Span, fs *source.FileSet, opts PrettyOpts) string {
	if fs == nil {
		return "<unknown>"
	}
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	path := formatPath(f, opts.PathMode, opts.BaseDir)
	if f.Flags&source.FileVirtual != 0 && len(f.Content) == 0 {
		// файл не загрузился или это сводка по запуску: позиции нет
		return path
	}
	start, _ := fs.Resolve(sp)
	return path + ":" +
		strconv.FormatUint(uint64(start.Line), 10) + ":" +
		strconv.FormatUint(uint64(start.Col), 10)
}

// writeSnippet печатает строку с началом span и каретки под ним.
// Многострочные span подчёркиваются до конца первой строки.
func writeSnippet(w io.Writer, sp source.Span, fs *source.FileSet, p palette, cells bool) {
	if fs == nil {
		return
	}
	f := fs.Get(sp.File)
	if f == nil || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if strings.TrimSpace(line) == "" {
		return
	}

	from := clampCol(start.Col, line)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(end.Col, line)
	}
	to = max(to, from)

	measure := utf8.RuneCountInString
	if cells {
		measure = runewidth.StringWidth
	}
	pad := measure(expandTabs(line[:from]))
	width := max(measure(line[from:to]), 1)

	num := strconv.FormatUint(uint64(start.Line), 10)
	gutter := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), expandTabs(line))
	fmt.Fprintf(w, " %s %s %s%s\n", gutter, p.gutter.Sprint("|"),
		strings.Repeat(" ", pad),
		p.caret.Sprint("^"+strings.Repeat("~", width-1)))
}

// clampCol переводит 1-based колонку в байтовый offset внутри строки.
func clampCol(col uint32, line string) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(line))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
