package format

import (
	"context"
	"strings"

	"github.com/mattn/go-runewidth"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
)

type engine struct {
	ctx  context.Context
	tree *cst.Tree
	p    *printer
	opts Options

	// codeCache memoizes CodeFilter results so the alignment
	// measurement pass does not re-run the external formatter.
	codeCache map[string]string
}

// Format renders the tree into canonical text. A tree containing an
// ERROR node is rejected outright; the error names the first error
// location, deepest-first.
func Format(ctx context.Context, tree *cst.Tree, opts Options) ([]byte, error) {
	if errID, ok := tree.FirstError(); ok {
		pos := tree.StartPos(errID)
		return nil, errAt(diag.FmtSyntaxErrors, tree.Get(errID).Span,
			"file contains syntax errors (at line %d)", pos.Line)
	}
	e := &engine{
		ctx:       ctx,
		tree:      tree,
		p:         newPrinter(opts.withDefaults().IndentWidth),
		opts:      opts.withDefaults(),
		codeCache: make(map[string]string),
	}
	if err := e.formatDocument(tree.Root()); err != nil {
		return nil, err
	}
	e.p.println("")
	return []byte(e.p.String()), nil
}

// formatAny dispatches one node to its layout rule. Unknown kinds and
// plain tokens are emitted verbatim.
func (e *engine) formatAny(id cst.NodeID) error {
	switch e.tree.Get(id).Kind {
	case cst.KindNode:
		return e.formatNodeDef(id)
	case cst.KindComment:
		return e.formatComment(id)
	case cst.KindExtern:
		return e.formatExtern(id)
	case cst.KindProperty:
		return e.formatProperty(id)
	case cst.KindProto:
		return e.formatProto(id)
	case cst.KindVector:
		return e.formatVector(id)
	case cst.KindJSBlock, cst.KindJSExpr:
		return e.formatJavascript(id)
	default:
		e.p.print(e.tree.Text(id))
		return nil
	}
}

// measure renders a node in isolation and returns the display width
// of the result. Runs against a scratch printer so it has no effect
// on the real emission.
func (e *engine) measure(id cst.NodeID) (int, error) {
	sub := &engine{
		ctx:       e.ctx,
		tree:      e.tree,
		p:         newPrinter(e.opts.IndentWidth),
		opts:      e.opts,
		codeCache: e.codeCache,
	}
	if err := sub.formatAny(id); err != nil {
		return 0, err
	}
	widest := 0
	for _, line := range strings.Split(sub.p.String(), "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest, nil
}

func (e *engine) startRow(id cst.NodeID) int { return int(e.tree.StartPos(id).Line) }
func (e *engine) endRow(id cst.NodeID) int   { return int(e.tree.EndPos(id).Line) }

// oneliner reports whether the node occupies a single source line.
func (e *engine) oneliner(id cst.NodeID) bool {
	return e.startRow(id) == e.endRow(id)
}

// containsVectorWithNode reports whether the subtree holds a vector
// with a node instance element. Such vectors always render one
// element per line, so every construct around them must break too or
// the output would not reach a fixed point under reformatting.
func (e *engine) containsVectorWithNode(id cst.NodeID) bool {
	node := e.tree.Get(id)
	if node.Kind == cst.KindVector {
		if len(e.tree.ChildrenOfKind(id, cst.KindNode)) > 0 {
			return true
		}
	}
	for _, child := range node.Children {
		if e.containsVectorWithNode(child) {
			return true
		}
	}
	return false
}
