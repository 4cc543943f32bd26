// Package diag defines the diagnostic model shared by the minify pipeline.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string ID (LEX1001, IO4001, ...), a short Message, the Primary
// source.Span and optional Notes.
//
// Producers emit through a Reporter so that the lexer and driver stay
// decoupled from storage; BagReporter collects into a Bag, which supports
// capping, sorting and deduplication.
//
// Package diag does not format anything. Rendering lives in internal/diagfmt.
package diag
