// Package trace provides lightweight tracing for the minify pipeline.
//
// Enable it from the CLI:
//
//	soare minify --trace=- --trace-level=detail src/
//
// Events are grouped by scope: ScopeDriver for a whole CLI run, ScopePass
// for pipeline stages (load, tokenize, reassemble, write) and ScopeFile for
// per-file work. The level decides which scopes are emitted.
//
// Tracers are propagated via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "tokenize", 0)
//	defer span.End("")
package trace
