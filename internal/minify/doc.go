// Package minify rebuilds Soare source from its token stream with minimal
// whitespace.
//
// Tokens are concatenated directly. A single space is inserted only between
// two adjacent word-like tokens (see token.IsWordLike), which would
// otherwise fuse into one token. Before a token is emitted, a line break is
// inserted whenever the output has already reached MaxCharPerLine times the
// current line number, so lines are soft-wrapped at token boundaries and a
// long token may overrun the budget.
//
// The Minifier type keeps the tokenize-then-apply lifecycle: Tokenizer
// replaces the stored token list on every call and Apply always reassembles
// the current list without re-tokenizing.
package minify
