package cst_test

import (
	"testing"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/token"
)

func TestTreeQueries(t *testing.T) {
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("t.proto", []byte("PROTO X [\n]{}\n"))
	if err != nil {
		t.Fatal(err)
	}
	tree := cst.NewTree(fs.Get(id))

	kw := tree.Add(cst.Node{Kind: cst.KindToken, Token: token.KwProto, Span: source.Span{File: id, Start: 0, End: 5}})
	name := tree.Add(cst.Node{Kind: cst.KindToken, Tag: cst.FieldName, Token: token.Ident, Span: source.Span{File: id, Start: 6, End: 7}})
	proto := tree.Add(cst.Node{Kind: cst.KindProto, Span: source.Span{File: id, Start: 0, End: 13}, Children: []cst.NodeID{kw, name}})
	root := tree.Add(cst.Node{Kind: cst.KindDocument, Span: source.Span{File: id, Start: 0, End: 13}, Children: []cst.NodeID{proto}})
	tree.SetRoot(root)

	if got := tree.Text(name); got != "X" {
		t.Errorf("Text(name) = %q, want %q", got, "X")
	}

	got, ok := tree.ChildByTag(proto, cst.FieldName)
	if !ok || got != name {
		t.Errorf("ChildByTag(FieldName) = %v, %v", got, ok)
	}

	if tree.HasErrors() {
		t.Error("tree should have no errors")
	}
	if _, ok := tree.FirstError(); ok {
		t.Error("FirstError should report nothing")
	}

	start := tree.StartPos(proto)
	if start.Line != 1 || start.Col != 1 {
		t.Errorf("StartPos = %d:%d, want 1:1", start.Line, start.Col)
	}
	end := tree.EndPos(proto)
	if end.Line != 2 {
		t.Errorf("EndPos line = %d, want 2", end.Line)
	}
}

func TestFirstErrorDeepest(t *testing.T) {
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("t.proto", []byte("??\n"))
	if err != nil {
		t.Fatal(err)
	}
	tree := cst.NewTree(fs.Get(id))

	inner := tree.Add(cst.Node{Kind: cst.KindError, Span: source.Span{File: id, Start: 1, End: 2}})
	outer := tree.Add(cst.Node{Kind: cst.KindError, Span: source.Span{File: id, Start: 0, End: 2}, Children: []cst.NodeID{inner}})
	root := tree.Add(cst.Node{Kind: cst.KindDocument, Span: source.Span{File: id, Start: 0, End: 2}, Children: []cst.NodeID{outer}})
	tree.SetRoot(root)

	got, ok := tree.FirstError()
	if !ok || got != inner {
		t.Fatalf("FirstError = %v, want inner node %v", got, inner)
	}
}
