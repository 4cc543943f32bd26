package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"soare/internal/diagfmt"
	"soare/internal/driver"
	"soare/internal/minify"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] <path>...",
	Short: "Minify Soare sources",
	Long: `Minify rewrites each .soare file (directories are walked recursively)
into a compact form next to the input as <name>.min.soare.

Use --check to list inputs whose output is missing or stale without writing,
or --stdout to print the result instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMinify,
}

func init() {
	minifyCmd.Flags().Int("width", minify.DefaultMaxCharPerLine, "soft line budget in characters (0 breaks before every token)")
	minifyCmd.Flags().Bool("no-wrap", false, "emit each file on a single line")
	minifyCmd.Flags().Bool("cells", false, "measure line width in terminal cells instead of characters")
	minifyCmd.Flags().Bool("check", false, "report files whose minified output is missing or stale; write nothing")
	minifyCmd.Flags().Bool("stdout", false, "print minified output instead of writing files")
	minifyCmd.Flags().String("out", "", "write outputs under this directory, mirroring the input tree")
	minifyCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	minifyCmd.Flags().Bool("nfc", false, "normalize sources to Unicode NFC before tokenizing")
	minifyCmd.Flags().Bool("no-cache", false, "do not read or write the minify cache")
	minifyCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	minifyCmd.Flags().String("format", "text", "report format (text|json)")
}

type minifyFileJSON struct {
	Path    string `json:"path"`
	Output  string `json:"output,omitempty"`
	OutPath string `json:"out_path,omitempty"`
	Changed bool   `json:"changed"`
	Cached  bool   `json:"cached,omitempty"`
	Error   string `json:"error,omitempty"`
}

type minifyReportJSON struct {
	Files       []minifyFileJSON          `json:"files"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

func runMinify(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	check, _ := flags.GetBool("check")
	stdout, _ := flags.GetBool("stdout")
	outDir, _ := flags.GetString("out")
	format, _ := flags.GetString("format")
	uiFlag, _ := flags.GetString("ui")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	if check && stdout {
		return errors.New("--check and --stdout are mutually exclusive")
	}
	format = strings.ToLower(format)
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	opts := driver.MinifyOptions{
		Minify: minify.Options{
			MaxCharPerLine: settings.MaxCharsPerLine,
			Width:          settings.Width,
			NoWrap:         settings.NoWrap,
		},
		Check:          check,
		Stdout:         stdout,
		OutDir:         outDir,
		Jobs:           settings.Jobs,
		NFC:            settings.NFC,
		MaxDiagnostics: maxDiagnostics,
		Timings:        showTimings,
	}
	if settings.CacheEnabled {
		cache, err := driver.OpenDiskCache(settings.CacheDir)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: minify cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}

	var report *driver.MinifyReport
	if format == "text" && !stdout && !quiet(cmd) && shouldUseTUI(mode) {
		report, err = runMinifyWithUI(cmd.Context(), "minify", args, opts)
	} else {
		report, err = driver.MinifyPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	if format == "json" {
		if err := writeMinifyJSON(cmd.OutOrStdout(), report, maxDiagnostics); err != nil {
			return err
		}
	} else {
		if report.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, report.Bag, report.FileSet, diagfmt.PrettyOpts{
				Color:    useColor(cmd, os.Stderr),
				PathMode: diagfmt.PathModeAuto,
				Cells:    settings.Width == minify.WidthCells,
			})
		}
		if err := writeMinifyText(cmd.OutOrStdout(), report, opts, quiet(cmd)); err != nil {
			return err
		}
		if showTimings {
			printStageTimings(cmd.ErrOrStderr(), report.Timer.Report())
		}
	}

	if n := report.Failed(); n > 0 {
		return fmt.Errorf("minify: %d of %d file(s) failed", n, len(report.Results))
	}
	if check {
		if n := report.Changed(); n > 0 {
			return fmt.Errorf("minify: %d file(s) need minifying", n)
		}
	}
	return nil
}

func writeMinifyText(out io.Writer, report *driver.MinifyReport, opts driver.MinifyOptions, quiet bool) error {
	multi := len(report.Results) > 1
	for _, r := range report.Results {
		if r.Err != nil {
			continue
		}
		switch {
		case opts.Stdout:
			if multi {
				// '?' открывает комментарий в Soare: склейка остаётся валидной
				if _, err := fmt.Fprintf(out, "? %s\n", r.Path); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(out, "%s\n", r.Output); err != nil {
				return err
			}
		case opts.Check:
			if r.Changed {
				if _, err := fmt.Fprintf(out, "stale: %s\n", r.Path); err != nil {
					return err
				}
			}
		case r.Changed && !quiet:
			if _, err := fmt.Fprintf(out, "minified %s -> %s\n", r.Path, r.OutPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMinifyJSON(out io.Writer, report *driver.MinifyReport, maxDiagnostics int) error {
	payload := minifyReportJSON{
		Files: make([]minifyFileJSON, 0, len(report.Results)),
		Diagnostics: diagfmt.BuildDiagnosticsOutput(report.Bag, report.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			Max:              maxDiagnostics,
			IncludeNotes:     true,
		}),
	}
	for _, r := range report.Results {
		f := minifyFileJSON{
			Path:    r.Path,
			OutPath: r.OutPath,
			Changed: r.Changed,
			Cached:  r.Cached,
		}
		if r.OutPath == "" {
			f.Output = string(r.Output)
		}
		if r.Err != nil {
			f.Error = r.Err.Error()
		}
		payload.Files = append(payload.Files, f)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
