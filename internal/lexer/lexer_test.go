package lexer_test

import (
	"testing"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/lexer"
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/token"
)

func makeTestLexer(t *testing.T, input string) (*lexer.Lexer, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.proto", []byte(input))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func collect(t *testing.T, lx *lexer.Lexer) []token.Token {
	t.Helper()
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "proto header",
			input: "PROTO Robot [\n]\n{\n}",
			want:  []token.Kind{token.KwProto, token.Ident, token.LBracket, token.RBracket, token.LBrace, token.RBrace},
		},
		{
			name:  "field declaration",
			input: "field SFFloat mass 1.5",
			want:  []token.Kind{token.KwField, token.Ident, token.Ident, token.Number},
		},
		{
			name:  "numbers",
			input: "0 -1 +2.5 .5 1e-3 0xFF",
			want:  []token.Kind{token.Number, token.Number, token.Number, token.Number, token.Number, token.Number},
		},
		{
			name:  "string and bool",
			input: `name "a \"b\" c" TRUE FALSE`,
			want:  []token.Kind{token.Ident, token.String, token.KwTrue, token.KwFalse},
		},
		{
			name:  "null value",
			input: "appearance NULL",
			want:  []token.Kind{token.Ident, token.KwNull},
		},
		{
			name:  "comment token",
			input: "# a comment\nDEF X Solid { }",
			want:  []token.Kind{token.Comment, token.KwDef, token.Ident, token.Ident, token.LBrace, token.RBrace},
		},
		{
			name:  "vector with commas",
			input: "[ 1, 2, 3 ]",
			want:  []token.Kind{token.LBracket, token.Number, token.Comma, token.Number, token.Comma, token.Number, token.RBracket},
		},
		{
			name:  "embedded code block",
			input: "%< var x = 1; >%",
			want:  []token.Kind{token.JSOpen, token.Code, token.JSClose},
		},
		{
			name:  "embedded expression",
			input: "%<= fields.mass >%",
			want:  []token.Kind{token.JSOpenExpr, token.Code, token.JSClose},
		},
		{
			name:  "is binding",
			input: "mass IS mass",
			want:  []token.Kind{token.Ident, token.KwIs, token.Ident},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := makeTestLexer(t, tt.input)
			got := kinds(collect(t, lx))
			if bag.HasErrors() {
				t.Fatalf("unexpected lex errors: %v", bag.Items())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("kinds = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("kind[%d] = %v, want %v (all: %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestLexCodeBody(t *testing.T) {
	lx, bag := makeTestLexer(t, "%<\nfunction f() { return 1; }\n>%")
	toks := collect(t, lx)
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", bag.Items())
	}
	if len(toks) != 3 {
		t.Fatalf("token count = %d, want 3", len(toks))
	}
	if toks[1].Kind != token.Code {
		t.Fatalf("middle token = %v, want Code", toks[1].Kind)
	}
	if want := "\nfunction f() { return 1; }\n"; toks[1].Text != want {
		t.Fatalf("code body = %q, want %q", toks[1].Text, want)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated string", `"abc`},
		{"newline in string", "\"abc\ndef\""},
		{"unterminated code", "%< var x = 1;"},
		{"unknown char", "@"},
		{"bad hex", "0x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := makeTestLexer(t, tt.input)
			collect(t, lx)
			if !bag.HasErrors() {
				t.Fatalf("expected lex error for %q", tt.input)
			}
		})
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer(t, "PROTO X")
	if got := lx.Peek().Kind; got != token.KwProto {
		t.Fatalf("Peek = %v, want KwProto", got)
	}
	if got := lx.Next().Kind; got != token.KwProto {
		t.Fatalf("Next after Peek = %v, want KwProto", got)
	}
	if got := lx.Next().Kind; got != token.Ident {
		t.Fatalf("second Next = %v, want Ident", got)
	}
}
