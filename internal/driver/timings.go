package driver

import (
	"encoding/json"
	"fmt"

	"soare/internal/diag"
	"soare/internal/observ"
	"soare/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Files   int                  `json:"files"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

func appendTimingDiagnostic(bag *diag.Bag, primary source.Span, files int, report observ.Report) {
	if bag == nil {
		return
	}
	payload := timingPayload{
		Kind:    "minify",
		Files:   files,
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	entry := diag.New(diag.SevInfo, diag.ObsTimings, primary,
		fmt.Sprintf("timings (%s): total %.2f ms over %d files", payload.Kind, payload.TotalMS, files))
	entry = entry.WithNote(primary, string(data))

	if bag.Add(entry) {
		return
	}
	// bag full: timings are still worth showing
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	bag.Merge(overflow)
}
