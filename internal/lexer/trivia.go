package lexer

// skipTrivia пропускает пробельные символы и комментарии '?'.
// A comment runs from '?' up to, but not including, the next '\n' or '\r'
// (or end of input). Anything may appear inside it.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		if n := lx.spaceLen(); n > 0 {
			lx.cursor.Advance(n)
			continue
		}
		if lx.cursor.Eat('?') {
			for !lx.cursor.EOF() {
				b := lx.cursor.Peek()
				if b == '\n' || b == '\r' {
					break
				}
				lx.cursor.Bump()
			}
			continue
		}
		return
	}
}
