package format

import (
	"strings"

	"wbprotofmt/internal/cst"
)

// formatDocument sequences the top-level children. Comments and
// externs keep their original blank-line grouping; the proto
// declaration always gets exactly one blank line before it.
func (e *engine) formatDocument(id cst.NodeID) error {
	var prev cst.NodeID
	first := true
	for _, child := range e.tree.Get(id).Children {
		kind := e.tree.Get(child).Kind
		switch kind {
		case cst.KindComment:
			if !first && e.endRow(prev) == e.startRow(child) && e.p.col != 0 {
				e.p.print(" ")
			} else if !first {
				e.breakLine()
				if e.startRow(child)-e.endRow(prev) > 1 {
					e.p.println("")
				}
			}
			if err := e.formatComment(child); err != nil {
				return err
			}
			e.p.println("")
		case cst.KindExtern:
			if !first {
				e.breakLine()
				if e.tree.Get(prev).Kind == cst.KindComment ||
					e.startRow(child)-e.endRow(prev) > 1 {
					e.p.println("")
				}
			}
			if err := e.formatExtern(child); err != nil {
				return err
			}
			e.p.println("")
		default:
			e.breakLine()
			e.p.println("")
			if err := e.formatAny(child); err != nil {
				return err
			}
		}
		prev = child
		first = false
	}
	return nil
}

// breakLine terminates the current line if anything is on it.
func (e *engine) breakLine() {
	if e.p.col != 0 {
		e.p.println("")
	}
}

func (e *engine) formatExtern(id cst.NodeID) error {
	for i, child := range e.tree.Get(id).Children {
		if i != 0 {
			e.p.print(" ")
		}
		e.p.print(e.tree.Text(child))
	}
	return nil
}

// formatComment normalizes comment markup. Section markers (##...)
// pass through verbatim; a normal comment gets exactly one space
// after '#', except the simulation header keyword which stays glued
// so the machine-readable first line survives.
func (e *engine) formatComment(id cst.NodeID) error {
	text := e.tree.Text(id)
	if strings.HasPrefix(strings.TrimSpace(text), "##") {
		e.p.print(strings.TrimSpace(text))
		return nil
	}
	line := strings.TrimSpace(strings.TrimPrefix(text, "#"))
	e.p.print("#")
	if !strings.HasPrefix(line, "VRML") {
		e.p.print(" ")
	}
	e.p.print(line)
	return nil
}
