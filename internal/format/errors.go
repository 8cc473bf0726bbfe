package format

import (
	"fmt"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/source"
)

// Error is a fatal formatting error. Formatting is all-or-nothing:
// any Error unwinds the whole run and no partial output is produced.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}

func errAt(code diag.Code, span source.Span, format string, args ...any) *Error {
	return &Error{Code: code, Span: span, Msg: fmt.Sprintf(format, args...)}
}
