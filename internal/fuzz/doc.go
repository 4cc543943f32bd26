// Package fuzztests houses Go fuzz harnesses for the minifier pipeline
// (source -> lexer -> reassembler). They guard against panics and check
// that tokens and minified output stay faithful to the input on arbitrary
// bytes.
//
// Назначение: прогонять байты через FileSet, лексер и Reassemble, проверяя
// инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/minify,
// internal/diag, internal/testkit.

package fuzztests
