package lexer

import (
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// scanJSOpen consumes '%<' or '%<=' and switches the lexer into raw mode:
// the following bytes form one Code token up to the matching '>%'.
func (lx *Lexer) scanJSOpen() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '%'
	if !lx.cursor.Eat('<') {
		tok := lx.tokenFrom(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected '%'")
		return tok
	}
	kind := token.JSOpen
	if lx.cursor.Eat('=') {
		kind = token.JSOpenExpr
	}
	lx.js = jsInCode
	return lx.tokenFrom(kind, start)
}

// scanCode consumes raw bytes up to (not including) the '>%' closer.
func (lx *Lexer) scanCode() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '>' && b1 == '%' {
			lx.js = jsNone
			return lx.tokenFrom(token.Code, start)
		}
		lx.cursor.Bump()
	}
	lx.js = jsNone
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedCode, sp, "embedded code block is never closed with '>%'")
	return lx.tokenFrom(token.Invalid, start)
}

// scanJSClose consumes '>%'.
func (lx *Lexer) scanJSClose() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '>'
	if !lx.cursor.Eat('%') {
		tok := lx.tokenFrom(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected '>'")
		return tok
	}
	return lx.tokenFrom(token.JSClose, start)
}
