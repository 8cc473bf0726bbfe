package diagfmt

import (
	"strings"
	"testing"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("broken.proto", []byte("PROTO [\n]\n{\n}\n"))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynExpectIdentifier,
		source.Span{File: id, Start: 6, End: 7},
		"expected prototype name after PROTO"))
	return bag, fs, id
}

func TestPretty(t *testing.T) {
	bag, fs, _ := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	out := sb.String()

	if !strings.Contains(out, "broken.proto:1:7: ERROR SYN2004: expected prototype name after PROTO") {
		t.Errorf("missing header line in:\n%s", out)
	}
	if !strings.Contains(out, "PROTO [") {
		t.Errorf("missing context line in:\n%s", out)
	}
	if !strings.Contains(out, "      ^") {
		t.Errorf("missing caret in:\n%s", out)
	}
}

func TestPrettyNoContext(t *testing.T) {
	bag, fs, _ := testBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: -1})
	if strings.Contains(sb.String(), "^") {
		t.Errorf("context suppressed but caret present:\n%s", sb.String())
	}
}

func TestJSON(t *testing.T) {
	bag, fs, _ := testBag(t)
	var sb strings.Builder
	err := JSON(&sb, bag, fs, JSONOpts{PathMode: PathModeBasename, IncludePositions: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := sb.String()
	for _, want := range []string{
		`"code": "SYN2004"`,
		`"severity": "ERROR"`,
		`"file": "broken.proto"`,
		`"start_line": 1`,
		`"count": 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %s:\n%s", want, out)
		}
	}
}

func TestJSONMax(t *testing.T) {
	bag, fs, id := testBag(t)
	bag.Add(diag.NewError(diag.SynUnclosedBracket,
		source.Span{File: id, Start: 6, End: 7}, "prototype interface is never closed"))
	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `"count": 2`) {
		t.Errorf("count should reflect the whole bag:\n%s", out)
	}
	if strings.Contains(out, "SYN2002") {
		t.Errorf("second diagnostic should be truncated:\n%s", out)
	}
}
