package cst

// Kind is the closed set of concrete-syntax node kinds. The formatter
// switches exhaustively over this set; unknown branches fall back to
// verbatim token emission.
type Kind uint8

const (
	// KindInvalid is the zero value; it never appears in a built tree.
	KindInvalid Kind = iota
	// KindDocument is the tree root.
	KindDocument
	// KindExtern is an EXTERNPROTO declaration.
	KindExtern
	// KindProto is a PROTO declaration: header parameter list and body.
	KindProto
	// KindField is one parameter declaration inside a PROTO header.
	KindField
	// KindNode is a node instantiation, optionally DEF-bound or a USE
	// reference.
	KindNode
	// KindProperty is a 'name value...' pair inside a node body.
	KindProperty
	// KindVector is a bracketed literal.
	KindVector
	// KindJSBlock is an embedded '%< ... >%' statement block.
	KindJSBlock
	// KindJSExpr is an embedded '%<= ... >%' expression block.
	KindJSExpr
	// KindComment is a '#' comment.
	KindComment
	// KindToken is a leaf wrapping a single token (identifier, number,
	// string, keyword, punctuation, raw code).
	KindToken
	// KindError marks a syntax error; its presence poisons the tree for
	// formatting.
	KindError
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindDocument: "document",
	KindExtern:   "extern",
	KindProto:    "proto",
	KindField:    "field",
	KindNode:     "node",
	KindProperty: "property",
	KindVector:   "vector",
	KindJSBlock:  "javascript_block",
	KindJSExpr:   "javascript_expression",
	KindComment:  "comment",
	KindToken:    "token",
	KindError:    "ERROR",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Field tags a child with its structural role inside the parent.
type Field uint8

const (
	// FieldNone marks an untagged child.
	FieldNone Field = iota
	// FieldName tags a proto's or node's name identifier.
	FieldName
	// FieldKind tags a field declaration's storage-kind token.
	FieldKind
	// FieldType tags a field declaration's value-type token.
	FieldType
	// FieldValue tags a field declaration's default value.
	FieldValue
	// FieldCode tags the raw code child of an embedded block.
	FieldCode
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldKind:
		return "kind"
	case FieldType:
		return "type"
	case FieldValue:
		return "value"
	case FieldCode:
		return "code"
	default:
		return ""
	}
}
