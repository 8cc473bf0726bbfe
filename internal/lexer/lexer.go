package lexer

import (
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/token"
)

// jsState tracks the raw-scanning mode inside embedded code blocks.
type jsState uint8

const (
	jsNone   jsState = iota
	jsInCode         // opener consumed, raw code body pending
)

// Lexer produces PROTO tokens from a source file. Comments are emitted as
// regular tokens; whitespace is skipped.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
	js     jsState
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// Inside %< ... >% the body is one raw Code token; no whitespace
	// skipping, no keyword recognition.
	if lx.js == jsInCode {
		return lx.scanCode()
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '#':
		return lx.scanComment()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch) || ch == '.':
		return lx.scanNumber()

	case (ch == '-' || ch == '+') && lx.isNumberAfterSign():
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	case ch == '%':
		return lx.scanJSOpen()

	case ch == '>':
		return lx.scanJSClose()

	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}
		break
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenFrom(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
