package token

// keywords maps reserved words to their token kinds. PROTO keywords are
// case-sensitive: 'proto' is a plain identifier.
var keywords = map[string]Kind{
	"PROTO":            KwProto,
	"EXTERNPROTO":      KwExternproto,
	"DEF":              KwDef,
	"USE":              KwUse,
	"IS":               KwIs,
	"TRUE":             KwTrue,
	"FALSE":            KwFalse,
	"NULL":             KwNull,
	"field":            KwField,
	"vrmlField":        KwVrmlField,
	"hiddenField":      KwHiddenField,
	"deprecatedField":  KwDeprecatedField,
	"unconnectedField": KwUnconnectedField,
	"w3dField":         KwW3dField,
}

// LookupKeyword returns the keyword kind for text, or Ident when the text is
// not reserved.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
