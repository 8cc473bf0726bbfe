package parser

import (
	"testing"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/source"
)

func parseSource(t *testing.T, src string) (*cst.Tree, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.proto", []byte(src))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	bag := diag.NewBag(64)
	tree := ParseFile(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})
	return tree, bag
}

func kindsOf(tree *cst.Tree, id cst.NodeID) []cst.Kind {
	var kinds []cst.Kind
	for _, child := range tree.Get(id).Children {
		kinds = append(kinds, tree.Get(child).Kind)
	}
	return kinds
}

func TestParseProto(t *testing.T) {
	src := "#VRML_SIM R2023b utf8\n" +
		"PROTO Solid [\n" +
		"  field SFVec3f translation 0 0 0\n" +
		"  field SFString name \"solid\"\n" +
		"]\n" +
		"{\n" +
		"  Transform {\n" +
		"  }\n" +
		"}\n"
	tree, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	root := tree.Get(tree.Root())
	if root.Kind != cst.KindDocument {
		t.Fatalf("root kind = %s, want document", root.Kind)
	}
	protos := tree.ChildrenOfKind(tree.Root(), cst.KindProto)
	if len(protos) != 1 {
		t.Fatalf("got %d proto nodes, want 1", len(protos))
	}
	name, ok := tree.ChildByTag(protos[0], cst.FieldName)
	if !ok {
		t.Fatal("proto has no name child")
	}
	if got := tree.Text(name); got != "Solid" {
		t.Errorf("proto name = %q, want Solid", got)
	}
	fields := tree.ChildrenOfKind(protos[0], cst.KindField)
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	for _, wantTag := range []cst.Field{cst.FieldKind, cst.FieldType, cst.FieldName, cst.FieldValue} {
		if _, ok := tree.ChildByTag(fields[0], wantTag); !ok {
			t.Errorf("field is missing %s child", wantTag)
		}
	}
	nodes := tree.ChildrenOfKind(protos[0], cst.KindNode)
	if len(nodes) != 1 {
		t.Fatalf("got %d body nodes, want 1", len(nodes))
	}
}

func TestParseNodeForms(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		hasBody bool
	}{
		{"plain", "Transform { }", true},
		{"def", "DEF BODY Transform { }", true},
		{"use", "USE BODY", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, bag := parseSource(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %v", bag.Items())
			}
			nodes := tree.ChildrenOfKind(tree.Root(), cst.KindNode)
			if len(nodes) != 1 {
				t.Fatalf("got %d nodes, want 1", len(nodes))
			}
			typeChild, hasType := tree.ChildByTag(nodes[0], cst.FieldType)
			if tt.hasBody {
				if !hasType {
					t.Fatal("node has no type child")
				}
				if got := tree.Text(typeChild); got != "Transform" {
					t.Errorf("node type = %q, want Transform", got)
				}
			} else if hasType {
				t.Error("USE node should not carry a type child")
			}
		})
	}
}

func TestParsePropertyRuns(t *testing.T) {
	src := "Transform {\n" +
		"  translation 0 1 2\n" +
		"  rotation 0 0 1 1.5708\n" +
		"  name \"base\" # label\n" +
		"}\n"
	tree, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	node := tree.ChildrenOfKind(tree.Root(), cst.KindNode)[0]
	props := tree.ChildrenOfKind(node, cst.KindProperty)
	if len(props) != 3 {
		t.Fatalf("got %d properties, want 3", len(props))
	}
	// name leaf plus one leaf per scalar
	if got := len(tree.Get(props[0]).Children); got != 4 {
		t.Errorf("translation has %d children, want 4", got)
	}
	if got := len(tree.Get(props[1]).Children); got != 5 {
		t.Errorf("rotation has %d children, want 5", got)
	}
	comments := tree.ChildrenOfKind(node, cst.KindComment)
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
}

func TestParseFieldValues(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want cst.Kind
	}{
		{"scalar", "PROTO P [ field SFFloat mass 1.5 ] { Solid { } }", cst.KindToken},
		{"run", "PROTO P [ field SFVec3f axis 0 0 1 ] { Solid { } }", cst.KindProperty},
		{"string", "PROTO P [ field SFString name \"x\" ] { Solid { } }", cst.KindToken},
		{"bool", "PROTO P [ field SFBool locked TRUE ] { Solid { } }", cst.KindToken},
		{"vector", "PROTO P [ field MFNode children [ ] ] { Solid { } }", cst.KindVector},
		{"node", "PROTO P [ field SFNode shape Shape { } ] { Solid { } }", cst.KindNode},
		{"null", "PROTO P [ field SFNode shape NULL ] { Solid { } }", cst.KindToken},
		{"use", "PROTO P [ field SFNode shape USE S ] { Solid { } }", cst.KindNode},
		{"expr", "PROTO P [ field SFFloat mass %<= 2 * 3 >% ] { Solid { } }", cst.KindJSExpr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, bag := parseSource(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %v", bag.Items())
			}
			proto := tree.ChildrenOfKind(tree.Root(), cst.KindProto)[0]
			field := tree.ChildrenOfKind(proto, cst.KindField)[0]
			value, ok := tree.ChildByTag(field, cst.FieldValue)
			if !ok {
				t.Fatal("field has no value child")
			}
			if got := tree.Get(value).Kind; got != tt.want {
				t.Errorf("value kind = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseVector(t *testing.T) {
	src := "Group {\n" +
		"  children [\n" +
		"    Shape { }, # first\n" +
		"    USE OTHER\n" +
		"  ]\n" +
		"}\n"
	tree, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	node := tree.ChildrenOfKind(tree.Root(), cst.KindNode)[0]
	prop := tree.ChildrenOfKind(node, cst.KindProperty)[0]
	vectors := tree.ChildrenOfKind(prop, cst.KindVector)
	if len(vectors) != 1 {
		t.Fatalf("got %d vectors, want 1", len(vectors))
	}
	if got := len(tree.ChildrenOfKind(vectors[0], cst.KindNode)); got != 2 {
		t.Errorf("vector holds %d nodes, want 2", got)
	}
	if got := len(tree.ChildrenOfKind(vectors[0], cst.KindComment)); got != 1 {
		t.Errorf("vector holds %d comments, want 1", got)
	}
}

func TestParseJSBlock(t *testing.T) {
	src := "%<\n  let x = fields.size.value.x;\n>%\nSolid {\n}\n"
	tree, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	blocks := tree.ChildrenOfKind(tree.Root(), cst.KindJSBlock)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	code, ok := tree.ChildByTag(blocks[0], cst.FieldCode)
	if !ok {
		t.Fatal("block has no code child")
	}
	if got := tree.Text(code); got != "\n  let x = fields.size.value.x;\n" {
		t.Errorf("code text = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"missing name", "PROTO [ ] { Solid { } }", diag.SynExpectIdentifier},
		{"missing value", "PROTO P [ field SFFloat mass ] { Solid { } }", diag.SynExpectValue},
		{"unclosed brace", "Transform {", diag.SynUnclosedBrace},
		{"unclosed vector", "Group { children [ }", diag.SynUnexpectedToken},
		{"stray token", "]", diag.SynUnexpectedTopLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, bag := parseSource(t, tt.src)
			if !bag.HasErrors() {
				t.Fatal("expected errors, got none")
			}
			if !tree.HasErrors() {
				t.Fatal("tree carries no ERROR node")
			}
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("no %s diagnostic; got %v", tt.code.ID(), bag.Items())
			}
		})
	}
}

func TestMaxErrors(t *testing.T) {
	src := "] ] ] ] ] ] ] ]"
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.proto", []byte(src))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	bag := diag.NewBag(64)
	ParseFile(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 3})
	if got := bag.Len(); got != 3 {
		t.Errorf("reported %d diagnostics, want 3", got)
	}
}
