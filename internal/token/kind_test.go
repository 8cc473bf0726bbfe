package token_test

import (
	"testing"

	"wbprotofmt/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want token.Kind
	}{
		{"PROTO", token.KwProto},
		{"EXTERNPROTO", token.KwExternproto},
		{"DEF", token.KwDef},
		{"USE", token.KwUse},
		{"IS", token.KwIs},
		{"TRUE", token.KwTrue},
		{"FALSE", token.KwFalse},
		{"field", token.KwField},
		{"vrmlField", token.KwVrmlField},
		{"hiddenField", token.KwHiddenField},
		{"deprecatedField", token.KwDeprecatedField},
		{"unconnectedField", token.KwUnconnectedField},
		{"w3dField", token.KwW3dField},
		{"proto", token.Ident}, // keywords are case-sensitive
		{"Field", token.Ident},
		{"Robot", token.Ident},
	}

	for _, tt := range tests {
		if got := token.LookupKeyword(tt.text); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !token.KwVrmlField.IsFieldKind() {
		t.Error("KwVrmlField should be a field kind")
	}
	if token.KwProto.IsFieldKind() {
		t.Error("KwProto is not a field kind")
	}
	if !token.KwProto.IsKeyword() {
		t.Error("KwProto should be a keyword")
	}
	if !token.Comma.IsPunct() {
		t.Error("Comma should be punctuation")
	}
	if !token.KwTrue.IsScalar() {
		t.Error("KwTrue should be scalar")
	}
	if token.LBrace.IsScalar() {
		t.Error("LBrace is not scalar")
	}
}
