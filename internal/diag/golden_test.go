package diag_test

import (
	"strings"
	"testing"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/source"
)

func TestBagLimitsAndSort(t *testing.T) {
	bag := diag.NewBag(2)
	sp := func(start uint32) source.Span { return source.Span{File: 0, Start: start, End: start + 1} }

	if !bag.Add(diag.NewError(diag.SynUnexpectedToken, sp(10), "second")) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(diag.NewError(diag.LexUnknownChar, sp(2), "first")) {
		t.Fatal("second add rejected")
	}
	if bag.Add(diag.NewError(diag.SynUnexpectedToken, sp(20), "dropped")) {
		t.Fatal("third add should hit the capacity limit")
	}

	bag.Sort()
	items := bag.Items()
	if items[0].Message != "first" || items[1].Message != "second" {
		t.Fatalf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}

	first, ok := bag.FirstError()
	if !ok || first.Message != "first" {
		t.Fatalf("FirstError = %q, %v", first.Message, ok)
	}
}

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase(".")
	id, err := fs.AddVirtual("broken.proto", []byte("PROTO X [\n  bogus\n]{}\n"))
	if err != nil {
		t.Fatal(err)
	}

	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 12, End: 17}, "unexpected identifier")
	if got := diag.FormatGoldenDiagnostics(nil, fs, false); got != "" {
		t.Fatalf("empty input should render empty, got %q", got)
	}

	got := diag.FormatGoldenDiagnostics([]diag.Diagnostic{d}, fs, false)
	want := "error SYN2001 broken.proto:2:3 unexpected identifier"
	if !strings.Contains(got, want) {
		t.Fatalf("golden line = %q, want substring %q", got, want)
	}
}
