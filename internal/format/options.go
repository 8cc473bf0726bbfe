package format

import "context"

// CodeFilter reformats the body of an embedded code block. The driver
// injects a subprocess-backed implementation; tests substitute a fake.
type CodeFilter interface {
	FormatCode(ctx context.Context, code string) (string, error)
}

// Options configures one formatting run.
type Options struct {
	// IndentWidth is the number of spaces per indentation level.
	IndentWidth int
	// CodeFilter formats embedded code bodies. Nil leaves the body
	// as-is after trimming surrounding whitespace.
	CodeFilter CodeFilter
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}
