package parser

import "wbprotofmt/internal/diag"

// Options configures parsing behavior.
type Options struct {
	// Reporter receives syntax diagnostics. Nil means discard.
	Reporter diag.Reporter
	// MaxErrors stops error reporting after this many syntax errors.
	// Zero means no limit.
	MaxErrors uint
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}
