package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"soare/internal/diag"
	"soare/internal/minify"
	"soare/internal/observ"
	"soare/internal/pipeline"
	"soare/internal/source"
	"soare/internal/trace"
)

var (
	// ErrNoSources is returned when the given paths hold no Soare files.
	ErrNoSources = errors.New("minify: no source files found")
	// ErrOutputConflict marks files whose outputs would overwrite each other.
	ErrOutputConflict = errors.New("output path conflict")
)

// runFileName names the virtual file run-level diagnostics point at.
const runFileName = "<soare>"

// MinifyOptions configures MinifyPaths.
type MinifyOptions struct {
	Minify minify.Options
	// Check compares against existing outputs without writing anything.
	Check bool
	// Stdout keeps outputs in memory; nothing is written.
	Stdout bool
	// OutDir mirrors outputs under this directory instead of next to inputs.
	OutDir         string
	Jobs           int
	NFC            bool
	MaxDiagnostics int
	// Timings appends an ObsTimings diagnostic to the report.
	Timings bool
	// Cache is optional; nil disables caching.
	Cache    *DiskCache
	Progress pipeline.ProgressSink
}

// MinifyResult captures the result of minifying a single file.
type MinifyResult struct {
	Path    string
	OutPath string
	FileID  source.FileID
	Output  []byte
	// Changed reports that the output file is missing or differs from
	// Output. In write mode such files have been (re)written.
	Changed bool
	Cached  bool
	Err     error
	Bag     *diag.Bag
	Timer   *observ.Timer
}

// MinifyReport aggregates a whole run.
type MinifyReport struct {
	FileSet *source.FileSet
	Results []MinifyResult
	// Bag holds every file's diagnostics, sorted.
	Bag   *diag.Bag
	Timer *observ.Timer
}

// Failed returns how many files could not be minified.
func (r *MinifyReport) Failed() int {
	n := 0
	for i := range r.Results {
		if r.Results[i].Err != nil {
			n++
		}
	}
	return n
}

// Changed returns how many outputs were (or in check mode would be) updated.
func (r *MinifyReport) Changed() int {
	n := 0
	for i := range r.Results {
		if r.Results[i].Err == nil && r.Results[i].Changed {
			n++
		}
	}
	return n
}

// MinifyPaths minifies provided files or directories (recursively collecting
// .soare files). Files are loaded sequentially into one FileSet and then
// minified in parallel; per-file failures are recorded in the results and
// do not stop the run. The returned error is reserved for problems with
// the run itself (bad paths, cancellation).
func MinifyPaths(ctx context.Context, paths []string, opts MinifyOptions) (*MinifyReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "minify")
	defer span.End("")

	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		trace.Fail(trace.FromContext(ctx), trace.ScopeDriver, "collect", err, span.ID())
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSources
	}
	span.WithExtra("files", strconv.Itoa(len(files)))

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}

	report := &MinifyReport{
		FileSet: source.NewFileSet(),
		Results: make([]MinifyResult, len(files)),
		Bag:     diag.NewBag(maxDiag),
		Timer:   observ.NewTimer(),
	}
	runFile := report.FileSet.AddVirtual(runFileName, nil)

	for _, f := range files {
		pipeline.Emit(opts.Progress, pipeline.Event{File: f.Path, Status: pipeline.StatusQueued})
	}

	// FileSet не потокобезопасен: грузим всё до запуска воркеров
	loadCtx, loadSpan := trace.StartSpan(ctx, trace.ScopePass, "load")
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	timers := make([]*observ.Timer, len(files))
	for i, f := range files {
		if err := loadCtx.Err(); err != nil {
			loadSpan.End("cancelled")
			return nil, err
		}
		pipeline.Emit(opts.Progress, pipeline.Event{File: f.Path, Stage: pipeline.StageLoad, Status: pipeline.StatusWorking})
		timers[i] = observ.NewTimer()
		idx := timers[i].Begin("load")
		content, flags, err := loadSource(f.Path, opts.NFC)
		if err != nil {
			ids[i] = report.FileSet.Add(f.Path, nil, source.FileVirtual)
			loadErrs[i] = err
			timers[i].End(idx, "failed")
			continue
		}
		ids[i] = report.FileSet.Add(f.Path, content, flags)
		timers[i].End(idx, "")
	}
	loadSpan.End("")

	var conflicts [][]string
	if !opts.Stdout {
		conflicts = outputConflicts(files, opts.OutDir)
	}

	passCtx, passSpan := trace.StartSpan(ctx, trace.ScopePass, "minify-files")
	err = runParallel(passCtx, len(files), opts.Jobs, func(ctx context.Context, i int) error {
		file := report.FileSet.Get(ids[i])
		var others []string
		if conflicts != nil {
			others = conflicts[i]
		}
		report.Results[i] = minifyFile(ctx, file, files[i], loadErrs[i], others, timers[i], maxDiag, opts)
		return nil
	})
	passSpan.End("")
	if err != nil {
		return report, err
	}

	for i := range report.Results {
		report.Bag.Merge(report.Results[i].Bag)
		report.Timer.Merge(report.Results[i].Timer)
	}
	if opts.Timings {
		appendTimingDiagnostic(report.Bag, source.Span{File: runFile}, len(files), report.Timer.Report())
	}
	report.Bag.Sort()

	span.WithExtra("failed", strconv.Itoa(report.Failed())).
		WithExtra("changed", strconv.Itoa(report.Changed()))
	return report, nil
}

// outputConflicts returns, per file, the other inputs that map to the same
// output path. Such files are not minified at all.
func outputConflicts(files []SourceFile, outDir string) [][]string {
	byOut := make(map[string][]int, len(files))
	for i, f := range files {
		out := filepath.Clean(OutputPath(f, outDir))
		byOut[out] = append(byOut[out], i)
	}
	conflicts := make([][]string, len(files))
	for _, idx := range byOut {
		if len(idx) < 2 {
			continue
		}
		for _, i := range idx {
			for _, j := range idx {
				if i != j {
					conflicts[i] = append(conflicts[i], files[j].Path)
				}
			}
		}
	}
	return conflicts
}

func minifyFile(ctx context.Context, file *source.File, src SourceFile, loadErr error, conflictsWith []string, timer *observ.Timer, maxDiag int, opts MinifyOptions) (res MinifyResult) {
	res = MinifyResult{
		Path:   src.Path,
		FileID: file.ID,
		Bag:    diag.NewBag(maxDiag),
		Timer:  timer,
	}
	tracer := trace.FromContext(ctx)
	_, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+src.Path)
	progress := func(stage pipeline.Stage, status pipeline.Status) {
		pipeline.Emit(opts.Progress, pipeline.Event{File: src.Path, Stage: stage, Status: status, Err: res.Err})
	}
	defer func() {
		if res.Err != nil {
			trace.Fail(tracer, trace.ScopeFile, "file:"+src.Path, res.Err, span.ID())
			progress("", pipeline.StatusError)
			span.End("error")
			return
		}
		if res.Cached {
			progress("", pipeline.StatusCached)
		} else {
			progress("", pipeline.StatusDone)
		}
		span.End("")
	}()

	fileSpan := source.Span{File: file.ID}
	if loadErr != nil {
		res.Err = fmt.Errorf("load %s: %w", src.Path, loadErr)
		res.Bag.Add(diag.NewError(diag.IOLoadFileError, fileSpan, "failed to load file: "+loadErr.Error()))
		return res
	}
	if len(conflictsWith) > 0 {
		res.OutPath = OutputPath(src, opts.OutDir)
		others := strings.Join(conflictsWith, ", ")
		res.Err = fmt.Errorf("%w: %s is also the output of %s", ErrOutputConflict, res.OutPath, others)
		res.Bag.Add(diag.NewError(diag.IOOutputConflict, fileSpan,
			fmt.Sprintf("output %s is also the output of %s; nothing written", res.OutPath, others)))
		return res
	}

	key := cacheKey(file.Content, opts.Minify)
	var payload DiskPayload
	hit, err := opts.Cache.Get(key, &payload)
	if err != nil {
		res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, fileSpan, "minify cache: "+err.Error()))
	}

	var output string
	if hit {
		output = payload.Output
		restoreDiags(res.Bag, file.ID, payload.Diags)
		res.Cached = true
		trace.Point(tracer, trace.ScopeFile, "cache", "hit", span.ID())
	} else {
		m := minify.NewFromFile(file)
		m.MaxCharPerLine = opts.Minify.MaxCharPerLine
		m.Width = opts.Minify.Width
		m.NoWrap = opts.Minify.NoWrap
		m.Reporter = diag.BagReporter{Bag: res.Bag}

		progress(pipeline.StageTokenize, pipeline.StatusWorking)
		idx := timer.Begin("tokenize")
		tokens, err := m.Tokenizer()
		timer.End(idx, "")
		if err != nil {
			// лексер уже положил LexUnknownChar в bag через Reporter
			res.Err = fmt.Errorf("tokenize %s: %w", src.Path, err)
			return res
		}
		span.WithExtra("tokens", strconv.Itoa(len(tokens)))

		progress(pipeline.StageReassemble, pipeline.StatusWorking)
		idx = timer.Begin("reassemble")
		output = m.Apply()
		timer.End(idx, "")

		if opts.Cache != nil {
			err := opts.Cache.Put(key, &DiskPayload{
				Output: output,
				Tokens: len(tokens),
				Diags:  snapshotDiags(res.Bag),
			})
			if err != nil {
				res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, fileSpan, "minify cache: "+err.Error()))
			}
		}
	}
	res.Output = []byte(output)

	if opts.Stdout {
		return res
	}

	progress(pipeline.StageWrite, pipeline.StatusWorking)
	idx := timer.Begin("write")
	err = writeOutput(&res, src, opts)
	timer.End(idx, "")
	if err != nil {
		res.Err = fmt.Errorf("write %s: %w", res.OutPath, err)
		res.Bag.Add(diag.NewError(diag.IOWriteFileError, fileSpan, "failed to write output: "+err.Error()))
	}
	return res
}

// writeOutput compares res.Output with the existing output file and, unless
// checking, replaces it when they differ.
func writeOutput(res *MinifyResult, src SourceFile, opts MinifyOptions) error {
	res.OutPath = OutputPath(src, opts.OutDir)

	existing, err := os.ReadFile(res.OutPath)
	switch {
	case err == nil:
		res.Changed = !bytes.Equal(existing, res.Output)
	case errors.Is(err, fs.ErrNotExist):
		res.Changed = true
	default:
		return err
	}
	if opts.Check || !res.Changed {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(res.OutPath), 0o755); err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(src.Path); statErr == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(res.OutPath, res.Output, mode)
}
