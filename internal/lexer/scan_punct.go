package lexer

import (
	"fmt"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// scanPunct consumes single-byte punctuation.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	var kind token.Kind
	switch b {
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ',':
		kind = token.Comma
	default:
		tok := lx.tokenFrom(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unknown character %q", rune(b)))
		return tok
	}

	return lx.tokenFrom(kind, start)
}
