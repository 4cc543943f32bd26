package main

import (
	"fmt"
	"io"

	"soare/internal/observ"
)

// printStageTimings prints one line per pipeline phase, summed over files.
func printStageTimings(out io.Writer, report observ.Report) {
	if out == nil || len(report.Phases) == 0 {
		return
	}
	for _, p := range report.Phases {
		fmt.Fprintf(out, "%-10s %8.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(out, "  (%d files)", p.Count)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "%-10s %8.2f ms\n", "total", report.TotalMS)
}
