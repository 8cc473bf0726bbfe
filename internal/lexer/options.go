package lexer

import (
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics; may be nil, in which case
	// errors are ignored but lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
