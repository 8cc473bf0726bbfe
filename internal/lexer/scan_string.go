package lexer

import (
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// scanString consumes a double-quoted, single-line string literal with
// backslash escapes. Escapes are not validated deeply here.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.tokenFrom(token.String, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return lx.tokenFrom(token.Invalid, start)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return lx.tokenFrom(token.Invalid, start)
}
