package format

import (
	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/token"
)

// formatVector lays out `[ a, b, c ]`. Single-line source stays on
// one line unless an element is a node instance, which always forces
// one element per line. Commas stick to the preceding element.
func (e *engine) formatVector(id cst.NodeID) error {
	node := e.tree.Get(id)
	oneliner := e.oneliner(id) && !e.containsVectorWithNode(id)

	brackets := false
	havePrev := false
	prevEnd := 0
	for _, child := range node.Children {
		c := e.tree.Get(child)
		switch {
		case c.Token == token.LBracket:
			e.p.print("[")
			if !oneliner {
				e.p.level++
			}
			brackets = true
			havePrev = false
			continue
		case c.Token == token.RBracket:
			if oneliner {
				e.p.print(" ]")
			} else {
				e.p.level--
				e.p.println("")
				e.p.indent()
				e.p.print("]")
			}
		case c.Token == token.Comma:
			e.p.print(",")
		case c.Kind == cst.KindComment:
			sameLine := havePrev && prevEnd == e.startRow(child)
			if !sameLine {
				e.p.println("")
				e.p.indent()
			} else {
				e.p.print(" ")
			}
			if err := e.formatComment(child); err != nil {
				return err
			}
		default:
			if oneliner && (brackets || havePrev) {
				e.p.print(" ")
			} else if !oneliner {
				e.p.println("")
				e.p.indent()
			}
			if err := e.formatAny(child); err != nil {
				return err
			}
		}
		havePrev = true
		prevEnd = e.endRow(child)
	}
	return nil
}
