package lexer

import (
	"soare/internal/diag"
	"soare/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда диагностики не собираются
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg)
}
