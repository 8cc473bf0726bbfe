package format

import (
	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/token"
)

// formatNodeDef lays out a node instance: `DEF Name Type { ... }`,
// `USE Name` or `Type { ... }`. The body renders inline when the
// original source kept the whole instance on one line; this follows
// the author's shape, not the resulting line length.
func (e *engine) formatNodeDef(id cst.NodeID) error {
	node := e.tree.Get(id)
	oneliner := e.oneliner(id) && !e.containsVectorWithNode(id)

	if len(node.Children) == 0 {
		return errAt(diag.FmtMissingName, node.Span, "node instance is empty")
	}
	first := e.tree.Get(node.Children[0])
	switch first.Token {
	case token.KwDef:
		nameID, ok := e.tree.ChildByTag(id, cst.FieldName)
		if !ok {
			return errAt(diag.FmtMissingName, node.Span, "DEF binding has no name")
		}
		typeID, ok := e.tree.ChildByTag(id, cst.FieldType)
		if !ok {
			return errAt(diag.FmtMissingName, node.Span, "DEF binding has no node type")
		}
		e.p.print("DEF ")
		e.p.print(e.tree.Text(nameID))
		e.p.print(" ")
		e.p.print(e.tree.Text(typeID))
	case token.KwUse:
		nameID, ok := e.tree.ChildByTag(id, cst.FieldName)
		if !ok {
			return errAt(diag.FmtMissingName, node.Span, "USE reference has no name")
		}
		e.p.print("USE ")
		e.p.print(e.tree.Text(nameID))
		return nil
	default:
		typeID, ok := e.tree.ChildByTag(id, cst.FieldType)
		if !ok {
			return errAt(diag.FmtMissingName, node.Span, "node instance has no type")
		}
		e.p.print(e.tree.Text(typeID))
	}

	e.p.print(" {")
	e.p.level++
	inside := false
	lastRow := 0
	for _, child := range node.Children {
		c := e.tree.Get(child)
		switch {
		case c.Token == token.LBrace && !inside:
			inside = true
		case c.Token == token.RBrace && inside:
			inside = false
		case c.Kind == cst.KindComment && inside:
			if !oneliner && lastRow != e.startRow(child) {
				e.p.println("")
				e.p.indent()
			} else if lastRow == e.startRow(child) {
				e.p.print(" ")
			}
			if err := e.formatComment(child); err != nil {
				e.p.level--
				return err
			}
		case inside:
			if !oneliner {
				e.p.println("")
				e.p.indent()
			} else {
				e.p.print(" ")
			}
			if err := e.formatAny(child); err != nil {
				e.p.level--
				return err
			}
		default:
			continue
		}
		lastRow = e.endRow(child)
	}
	e.p.level--

	if oneliner {
		e.p.print(" ")
	} else {
		e.p.println("")
		e.p.indent()
	}
	e.p.print("}")
	return nil
}

// formatProperty emits `name value ...` with single spaces between
// the parts.
func (e *engine) formatProperty(id cst.NodeID) error {
	for i, child := range e.tree.Get(id).Children {
		if i != 0 {
			e.p.print(" ")
		}
		if err := e.formatAny(child); err != nil {
			return err
		}
	}
	return nil
}
