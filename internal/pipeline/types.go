// Package pipeline describes the stages of a minify run and the progress
// events the driver emits while walking them.
package pipeline

import "time"

// Stage describes a per-file phase of the minify pipeline.
type Stage string

const (
	// StageLoad reads and normalizes the source file.
	StageLoad Stage = "load"
	// StageTokenize runs the tokenizer.
	StageTokenize Stage = "tokenize"
	// StageReassemble joins tokens into minified text.
	StageReassemble Stage = "reassemble"
	// StageWrite stores or compares the result.
	StageWrite Stage = "write"
)

// Stages lists the stages in execution order.
var Stages = []Stage{StageLoad, StageTokenize, StageReassemble, StageWrite}

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is inside a stage.
	StatusWorking Status = "working"
	// StatusCached indicates the result came from the minify cache.
	StatusCached Status = "cached"
	// StatusDone indicates the file is done.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Terminal reports whether the event closes the file's progress.
func (e Event) Terminal() bool {
	return e.Status == StatusDone || e.Status == StatusError || e.Status == StatusCached
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; the driver reports from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// Emit forwards evt to sink when sink is non-nil.
func Emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
