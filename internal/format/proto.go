package format

import (
	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// columnWidths holds the four per-column padding widths of one
// parameter list: storage kind, value type, name, default value.
type columnWidths struct {
	kind, typ, name, value int
}

func (w columnWidths) total() int { return w.kind + w.typ + w.name + w.value }

// formatProto lays out `PROTO Name [ fields ] { body }`. The
// interface block is emitted one field per line with the four parts
// vertically aligned via a prior measurement pass.
func (e *engine) formatProto(id cst.NodeID) error {
	node := e.tree.Get(id)
	nameID, ok := e.tree.ChildByTag(id, cst.FieldName)
	if !ok {
		return errAt(diag.FmtMissingName, node.Span, "prototype has no name")
	}
	fields := e.tree.ChildrenOfKind(id, cst.KindField)
	sizes, err := e.fieldSizes(fields)
	if err != nil {
		return err
	}

	e.p.print("PROTO ")
	e.p.print(e.tree.Text(nameID))
	e.p.print(" [")
	e.p.level = 1

	lastLine := 0
	inside := false
	for _, child := range node.Children {
		c := e.tree.Get(child)
		switch {
		case c.Token == token.LBracket && !inside:
			inside = true
		case c.Token == token.RBracket && inside:
			inside = false
		case c.Kind == cst.KindField && inside:
			e.p.println("")
			e.p.indent()
			lastLine = e.endRow(child)
			if err := e.formatField(child, sizes); err != nil {
				return err
			}
		case c.Kind == cst.KindComment && inside:
			if e.startRow(child) != lastLine {
				e.p.println("")
				e.p.indent()
			} else {
				e.p.padTo(e.p.level*e.opts.IndentWidth + sizes.total())
			}
			if err := e.formatComment(child); err != nil {
				return err
			}
			lastLine = e.p.row
		}
	}
	e.p.println("")
	e.p.println("]")
	e.p.println("{")
	e.p.level = 0

	inside = false
	for _, child := range node.Children {
		c := e.tree.Get(child)
		if !inside {
			inside = c.Token == token.LBrace
			continue
		}
		switch c.Kind {
		case cst.KindNode, cst.KindComment, cst.KindJSBlock, cst.KindJSExpr:
			if err := e.formatAny(child); err != nil {
				return err
			}
			e.p.println("")
		}
	}
	e.p.print("}")
	return nil
}

// formatField emits one aligned parameter declaration. Each part is
// padded to its column before the next one starts.
func (e *engine) formatField(id cst.NodeID, sizes columnWidths) error {
	parts := e.tree.Get(id).Children
	if len(parts) < 4 {
		return errAt(diag.FmtMalformedField, e.tree.Get(id).Span,
			"field declaration is missing its kind, type, name or value")
	}
	at := e.p.level*e.opts.IndentWidth + sizes.kind
	if err := e.formatAny(parts[0]); err != nil {
		return err
	}
	e.p.padTo(at)
	if err := e.formatAny(parts[1]); err != nil {
		return err
	}
	at += sizes.typ
	e.p.padTo(at)
	if err := e.formatAny(parts[2]); err != nil {
		return err
	}
	at += sizes.name
	e.p.padTo(at)
	return e.formatAny(parts[3])
}

// fieldSizes measures the four parts of every field in isolation and
// takes per-column maxima, so each column starts at or after the
// widest sibling part.
func (e *engine) fieldSizes(fields []cst.NodeID) (columnWidths, error) {
	var sizes columnWidths
	for _, field := range fields {
		parts := e.tree.Get(field).Children
		if len(parts) < 4 {
			return sizes, errAt(diag.FmtMalformedField, e.tree.Get(field).Span,
				"field declaration is missing its kind, type, name or value")
		}
		for i, dst := range []*int{&sizes.kind, &sizes.typ, &sizes.name, &sizes.value} {
			w, err := e.measure(parts[i])
			if err != nil {
				return sizes, err
			}
			if w+e.opts.IndentWidth > *dst {
				*dst = w + e.opts.IndentWidth
			}
		}
	}
	return sizes, nil
}
