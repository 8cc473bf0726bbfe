package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic (bag.Sort() is expected beforehand):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline, then notes in
// the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		switch d.Severity {
		case diag.SevError:
			sev = color.RedString(sev)
		case diag.SevWarning:
			sev = color.YellowString(sev)
		default:
			sev = color.CyanString(sev)
		}
		code = color.New(color.Bold).Sprint(code)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", location(d.Primary, fs, opts.PathMode), sev, code, d.Message)
	underlineSpan(w, d.Primary, fs, opts)
	if opts.ShowNotes {
		for _, note := range d.Notes {
			fmt.Fprintf(w, "%s: note: %s\n", location(note.Span, fs, opts.PathMode), note.Msg)
			underlineSpan(w, note.Span, fs, opts)
		}
	}
}

// underlineSpan prints the first line the span covers with a caret
// marker under the spanned columns.
func underlineSpan(w io.Writer, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	if opts.Context < 0 {
		return
	}
	file := fs.Get(span.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.GreenString(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), marker)
}

func location(span source.Span, fs *source.FileSet, mode PathMode) string {
	file := fs.Get(span.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(file, fs, mode), start.Line, start.Col)
}

func formatPath(file *source.File, fs *source.FileSet, mode PathMode) string {
	if file == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return file.FormatPath("absolute", "")
	case PathModeRelative:
		return file.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return file.FormatPath("basename", "")
	default:
		return file.FormatPath("auto", "")
	}
}
