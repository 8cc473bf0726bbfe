package lexer

import (
	"wbprotofmt/internal/token"
)

// scanComment consumes '#' to end of line, excluding the newline.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.Comment, start)
}
