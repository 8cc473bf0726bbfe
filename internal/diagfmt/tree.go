package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"wbprotofmt/internal/cst"
)

// TreeNodeJSON is one syntax node in JSON output.
type TreeNodeJSON struct {
	Kind     string         `json:"kind"`
	Tag      string         `json:"tag,omitempty"`
	Token    string         `json:"token,omitempty"`
	Text     string         `json:"text,omitempty"`
	Span     [2]uint32      `json:"span"`
	Children []TreeNodeJSON `json:"children,omitempty"`
}

// FormatTreePretty writes an indented dump of the syntax tree. Leaf
// tokens and comments include their text; composite nodes only the
// kind, tag and position range.
func FormatTreePretty(w io.Writer, tree *cst.Tree) error {
	return prettyTreeNode(w, tree, tree.Root(), 0)
}

func prettyTreeNode(w io.Writer, tree *cst.Tree, id cst.NodeID, depth int) error {
	node := tree.Get(id)
	start := tree.StartPos(id)
	end := tree.EndPos(id)
	fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), node.Kind)
	if node.Tag != cst.FieldNone {
		fmt.Fprintf(w, " (%s)", node.Tag)
	}
	if len(node.Children) == 0 && !node.Span.Empty() {
		fmt.Fprintf(w, " %q", tree.Text(id))
	}
	fmt.Fprintf(w, " [%d:%d-%d:%d]\n", start.Line, start.Col, end.Line, end.Col)
	for _, child := range node.Children {
		if err := prettyTreeNode(w, tree, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// FormatTreeJSON writes the syntax tree as nested JSON objects.
func FormatTreeJSON(w io.Writer, tree *cst.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(treeNodeJSON(tree, tree.Root()))
}

func treeNodeJSON(tree *cst.Tree, id cst.NodeID) TreeNodeJSON {
	node := tree.Get(id)
	out := TreeNodeJSON{
		Kind: node.Kind.String(),
		Span: [2]uint32{node.Span.Start, node.Span.End},
	}
	if node.Tag != cst.FieldNone {
		out.Tag = node.Tag.String()
	}
	if node.Kind == cst.KindToken {
		out.Token = node.Token.String()
	}
	if len(node.Children) == 0 && !node.Span.Empty() {
		out.Text = tree.Text(id)
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, treeNodeJSON(tree, child))
	}
	return out
}
