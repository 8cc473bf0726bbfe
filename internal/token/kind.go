package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal (decimal, float, scientific, hex).
	Number
	// String represents a double-quoted string literal.
	String
	// Comment represents a '#' comment running to end of line.
	Comment
	// Code represents the raw body of an embedded JavaScript block.
	Code

	// KwProto represents the 'PROTO' keyword.
	KwProto // PROTO
	// KwExternproto represents the 'EXTERNPROTO' keyword.
	KwExternproto // EXTERNPROTO
	// KwDef represents the 'DEF' keyword.
	KwDef // DEF
	// KwUse represents the 'USE' keyword.
	KwUse // USE
	// KwIs represents the 'IS' keyword.
	KwIs // IS
	// KwTrue represents the 'TRUE' keyword.
	KwTrue // TRUE
	// KwFalse represents the 'FALSE' keyword.
	KwFalse // FALSE
	// KwNull represents the 'NULL' keyword (empty SFNode value).
	KwNull // NULL
	// KwField represents the 'field' parameter kind.
	KwField // field
	// KwVrmlField represents the 'vrmlField' parameter kind.
	KwVrmlField // vrmlField
	// KwHiddenField represents the 'hiddenField' parameter kind.
	KwHiddenField // hiddenField
	// KwDeprecatedField represents the 'deprecatedField' parameter kind.
	KwDeprecatedField // deprecatedField
	// KwUnconnectedField represents the 'unconnectedField' parameter kind.
	KwUnconnectedField // unconnectedField
	// KwW3dField represents the 'w3dField' parameter kind.
	KwW3dField // w3dField

	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Comma represents ','.
	Comma // ,

	// JSOpen represents the embedded-code opener '%<'.
	JSOpen // %<
	// JSOpenExpr represents the embedded-expression opener '%<='.
	JSOpenExpr // %<=
	// JSClose represents the embedded-code closer '>%'.
	JSClose // >%
)

var kindNames = [...]string{
	Invalid:            "Invalid",
	EOF:                "EOF",
	Ident:              "Ident",
	Number:             "Number",
	String:             "String",
	Comment:            "Comment",
	Code:               "Code",
	KwProto:            "KwProto",
	KwExternproto:      "KwExternproto",
	KwDef:              "KwDef",
	KwUse:              "KwUse",
	KwIs:               "KwIs",
	KwTrue:             "KwTrue",
	KwFalse:            "KwFalse",
	KwNull:             "KwNull",
	KwField:            "KwField",
	KwVrmlField:        "KwVrmlField",
	KwHiddenField:      "KwHiddenField",
	KwDeprecatedField:  "KwDeprecatedField",
	KwUnconnectedField: "KwUnconnectedField",
	KwW3dField:         "KwW3dField",
	LBracket:           "LBracket",
	RBracket:           "RBracket",
	LBrace:             "LBrace",
	RBrace:             "RBrace",
	Comma:              "Comma",
	JSOpen:             "JSOpen",
	JSOpenExpr:         "JSOpenExpr",
	JSClose:            "JSClose",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsKeyword reports whether the token kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwProto && k <= KwW3dField
}

// IsFieldKind reports whether the kind is one of the parameter storage kinds
// that may open a PROTO field declaration.
func (k Kind) IsFieldKind() bool {
	switch k {
	case KwField, KwVrmlField, KwHiddenField, KwDeprecatedField, KwUnconnectedField, KwW3dField:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token kind is bracket/brace/comma punctuation.
func (k Kind) IsPunct() bool {
	switch k {
	case LBracket, RBracket, LBrace, RBrace, Comma:
		return true
	default:
		return false
	}
}

// IsScalar reports whether the token kind can appear on its own as a value:
// numbers, strings, booleans, and identifiers (enum-like SFString defaults).
func (k Kind) IsScalar() bool {
	switch k {
	case Number, String, KwTrue, KwFalse, KwNull, Ident:
		return true
	default:
		return false
	}
}
