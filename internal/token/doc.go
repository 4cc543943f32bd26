// Package token defines lexical token kinds for Soare source.
// Invariants:
//   - Token.Text is the exact slice of the source covered by Token.Span.
//   - Every symbol is a single byte; the lexer never coalesces operators,
//     so "==" is two Assign tokens.
//   - Keywords are identifiers with a dedicated Kind; IsWordLike treats
//     them exactly like any other identifier.
//   - Comments and whitespace never reach the token stream.
package token
