package token

var keywords = map[string]Kind{
	"break":      KwBreak,
	"do":         KwDo,
	"else":       KwElse,
	"end":        KwEnd,
	"fn":         KwFn,
	"if":         KwIf,
	"iferror":    KwIfError,
	"input":      KwInput,
	"let":        KwLet,
	"loadimport": KwLoadImport,
	"or":         KwOr,
	"raise":      KwRaise,
	"return":     KwReturn,
	"try":        KwTry,
	"while":      KwWhile,
	"write":      KwWrite,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
