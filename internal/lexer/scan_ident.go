package lexer

import (
	"wbprotofmt/internal/token"
)

// scanIdentOrKeyword consumes an identifier and classifies reserved words.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	tok := lx.tokenFrom(token.Ident, start)
	tok.Kind = token.LookupKeyword(tok.Text)
	return tok
}
