package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwDo represents the 'do' keyword.
	KwDo
	// KwElse represents the 'else' keyword.
	KwElse
	// KwEnd represents the 'end' keyword.
	KwEnd
	// KwFn represents the 'fn' keyword.
	KwFn
	// KwIf represents the 'if' keyword.
	KwIf
	// KwIfError represents the 'iferror' keyword.
	KwIfError
	// KwInput represents the 'input' keyword.
	KwInput
	// KwLet represents the 'let' keyword.
	KwLet
	// KwLoadImport represents the 'loadimport' keyword.
	KwLoadImport
	// KwOr represents the 'or' keyword.
	KwOr
	// KwRaise represents the 'raise' keyword.
	KwRaise
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwTry represents the 'try' keyword.
	KwTry
	// KwWhile represents the 'while' keyword.
	KwWhile
	// KwWrite represents the 'write' keyword.
	KwWrite

	// NumberLit represents a decimal number literal (123, 1.5, 7.).
	NumberLit
	// StringLit represents a quoted string literal, delimiter included.
	StringLit

	Dollar    // $
	At        // @
	Comma     // ,
	Semicolon // ;
	Colon     // :
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	Lt        // <
	Gt        // >
	Plus      // +
	Minus     // -
	Caret     // ^
	Star      // *
	Slash     // /
	Percent   // %
	Amp       // &
	Pipe      // |
	Bang      // !
	Assign    // =
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	KwBreak:      "KwBreak",
	KwDo:         "KwDo",
	KwElse:       "KwElse",
	KwEnd:        "KwEnd",
	KwFn:         "KwFn",
	KwIf:         "KwIf",
	KwIfError:    "KwIfError",
	KwInput:      "KwInput",
	KwLet:        "KwLet",
	KwLoadImport: "KwLoadImport",
	KwOr:         "KwOr",
	KwRaise:      "KwRaise",
	KwReturn:     "KwReturn",
	KwTry:        "KwTry",
	KwWhile:      "KwWhile",
	KwWrite:      "KwWrite",
	NumberLit:    "NumberLit",
	StringLit:    "StringLit",
	Dollar:       "Dollar",
	At:           "At",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Colon:        "Colon",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	LParen:       "LParen",
	RParen:       "RParen",
	Lt:           "Lt",
	Gt:           "Gt",
	Plus:         "Plus",
	Minus:        "Minus",
	Caret:        "Caret",
	Star:         "Star",
	Slash:        "Slash",
	Percent:      "Percent",
	Amp:          "Amp",
	Pipe:         "Pipe",
	Bang:         "Bang",
	Assign:       "Assign",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// symbols maps each single-byte symbol to its kind.
var symbols = map[byte]Kind{
	'$': Dollar,
	'@': At,
	',': Comma,
	';': Semicolon,
	':': Colon,
	'[': LBracket,
	']': RBracket,
	'(': LParen,
	')': RParen,
	'<': Lt,
	'>': Gt,
	'+': Plus,
	'-': Minus,
	'^': Caret,
	'*': Star,
	'/': Slash,
	'%': Percent,
	'&': Amp,
	'|': Pipe,
	'!': Bang,
	'=': Assign,
}

// LookupSymbol returns the kind of a single-byte symbol.
func LookupSymbol(b byte) (Kind, bool) {
	k, ok := symbols[b]
	return k, ok
}
