package lexer

import (
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// scanNumber consumes decimal, float, scientific, and hex literals with an
// optional leading sign.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	b := lx.cursor.Peek()
	if b == '-' || b == '+' {
		lx.cursor.Bump()
	}

	// hex: 0x... / 0X...
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		tok := lx.tokenFrom(token.Number, start)
		if digits == 0 {
			lx.errLex(diag.LexBadNumber, tok.Span, "hex literal without digits")
			tok.Kind = token.Invalid
		}
		return tok
	}

	intDigits := lx.eatDigits()

	sawDot := false
	fracDigits := 0
	if lx.cursor.Peek() == '.' {
		sawDot = true
		lx.cursor.Bump()
		fracDigits = lx.eatDigits()
	}

	if intDigits == 0 && fracDigits == 0 {
		if !sawDot {
			lx.cursor.Bump() // make progress past the offending byte
		}
		tok := lx.tokenFrom(token.Invalid, start)
		lx.errLex(diag.LexBadNumber, tok.Span, "malformed number")
		return tok
	}

	// exponent
	if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '-' || s == '+' {
			lx.cursor.Bump()
		}
		if lx.eatDigits() == 0 {
			// not an exponent after all; leave 'e' for the next token
			lx.cursor.Reset(mark)
		}
	}

	return lx.tokenFrom(token.Number, start)
}

func (lx *Lexer) eatDigits() int {
	n := 0
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	return n
}
