package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"soare/internal/driver"
	"soare/internal/pipeline"
	"soare/internal/ui"
)

type minifyOutcome struct {
	report *driver.MinifyReport
	err    error
}

// runMinifyWithUI runs the driver in the background and renders its
// progress events until the run finishes.
func runMinifyWithUI(ctx context.Context, title string, paths []string, opts driver.MinifyOptions) (*driver.MinifyReport, error) {
	files, err := driver.CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Path
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan minifyOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		report, err := driver.MinifyPaths(ctx, paths, optsCopy)
		outcomeCh <- minifyOutcome{report: report, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ctrl+c, ошибка): дочитываем события, чтобы
	// воркеры не застряли на полном канале
	go func() {
		for range events { //nolint:revive
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
