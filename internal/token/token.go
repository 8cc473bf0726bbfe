package token

import (
	"wbprotofmt/internal/source"
)

// Token represents a single source token with its location.
// Comments are regular tokens here: the grammar owns their placement.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsEOF reports whether the token terminates the stream.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}
