package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// printer accumulates output and tracks the cursor position. Column
// is measured in display cells so alignment survives wide runes.
type printer struct {
	buf   strings.Builder
	col   int
	row   int
	level int
	width int
}

func newPrinter(width int) *printer {
	return &printer{width: width}
}

func (p *printer) print(s string) {
	p.buf.WriteString(s)
	p.col += runewidth.StringWidth(s)
}

func (p *printer) println(s string) {
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
	p.col = 0
	p.row++
}

func (p *printer) indent() {
	p.print(strings.Repeat(" ", p.level*p.width))
}

// padTo prints spaces until the cursor reaches the target column.
// Never negative, never truncating.
func (p *printer) padTo(col int) {
	if col > p.col {
		p.print(strings.Repeat(" ", col-p.col))
	}
}

func (p *printer) String() string { return p.buf.String() }
