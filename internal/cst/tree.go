package cst

import (
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/token"
)

// Node is one concrete-syntax node. Children are ordered by source
// position and their spans do not overlap.
type Node struct {
	Kind     Kind
	Tag      Field      // structural role inside the parent
	Token    token.Kind // set for KindToken leaves
	Span     source.Span
	Children []NodeID
}

// Tree owns the node arena for one parsed file. The tree is read-only
// after parsing; the formatter never mutates it.
type Tree struct {
	file  *source.File
	nodes []Node
	root  NodeID
}

// NewTree creates an empty tree over the given file.
func NewTree(file *source.File) *Tree {
	return &Tree{
		file:  file,
		nodes: make([]Node, 0, len(file.Content)/8),
	}
}

// File returns the underlying source file.
func (t *Tree) File() *source.File {
	return t.file
}

// Root returns the document node id.
func (t *Tree) Root() NodeID {
	return t.root
}

// SetRoot records the document node. Called once by the parser.
func (t *Tree) SetRoot(id NodeID) {
	t.root = id
}

// Add allocates a node and returns its id (1-based).
func (t *Tree) Add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes))
}

// Get returns the node for the given id, or nil for NoNodeID.
func (t *Tree) Get(id NodeID) *Node {
	if id == NoNodeID {
		return nil
	}
	return &t.nodes[id-1]
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Text returns the verbatim source slice covered by the node.
func (t *Tree) Text(id NodeID) string {
	n := t.Get(id)
	if n == nil {
		return ""
	}
	return string(t.file.Content[n.Span.Start:n.Span.End])
}

// StartPos resolves the node's start offset to a 1-based line/column.
func (t *Tree) StartPos(id NodeID) source.LineCol {
	return t.file.LineColAt(t.Get(id).Span.Start)
}

// EndPos resolves the node's last byte to a 1-based line/column.
// For empty spans this equals StartPos.
func (t *Tree) EndPos(id NodeID) source.LineCol {
	n := t.Get(id)
	if n.Span.End <= n.Span.Start {
		return t.file.LineColAt(n.Span.Start)
	}
	return t.file.LineColAt(n.Span.End - 1)
}

// ChildByTag returns the first child carrying the given field tag.
func (t *Tree) ChildByTag(id NodeID, tag Field) (NodeID, bool) {
	for _, child := range t.Get(id).Children {
		if t.Get(child).Tag == tag {
			return child, true
		}
	}
	return NoNodeID, false
}

// ChildrenOfKind returns all direct children of the given kind, in order.
func (t *Tree) ChildrenOfKind(id NodeID, kind Kind) []NodeID {
	var out []NodeID
	for _, child := range t.Get(id).Children {
		if t.Get(child).Kind == kind {
			out = append(out, child)
		}
	}
	return out
}

// FirstError returns the first error node in depth-first, left-to-right
// order, searching deepest-first so the most specific location wins.
func (t *Tree) FirstError() (NodeID, bool) {
	if !t.root.IsValid() {
		return NoNodeID, false
	}
	return t.firstError(t.root)
}

func (t *Tree) firstError(id NodeID) (NodeID, bool) {
	n := t.Get(id)
	for _, child := range n.Children {
		if found, ok := t.firstError(child); ok {
			return found, true
		}
	}
	if n.Kind == KindError {
		return id, true
	}
	return NoNodeID, false
}

// HasErrors reports whether the tree contains any error node.
func (t *Tree) HasErrors() bool {
	for i := range t.nodes {
		if t.nodes[i].Kind == KindError {
			return true
		}
	}
	return false
}
