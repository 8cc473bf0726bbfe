package fuzztests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/format"
	"wbprotofmt/internal/parser"
	"wbprotofmt/internal/source"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		tree := parseFuzzInput(input)
		if tree == nil {
			return
		}
		if _, err := format.Format(context.Background(), tree, format.Options{}); err != nil {
			// syntax errors are expected on arbitrary input
			return
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
// Error recovery must always make progress.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("PROTO P [ field\n"))
	f.Add([]byte("[ [ [ [ ] ] ]\n"))
	f.Add([]byte("DEF DEF DEF {\n"))
	f.Add([]byte("%< unterminated"))
	f.Add([]byte("Transform { a { b { c {\n"))

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			parseFuzzInput(input)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzFormatIdempotent checks that formatting its own output changes
// nothing, for any input the parser accepts.
func FuzzFormatIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			return
		}
		tree := parseFuzzInput(input)
		if tree == nil || tree.HasErrors() {
			return
		}
		first, err := format.Format(context.Background(), tree, format.Options{})
		if err != nil {
			return
		}
		second := parseFuzzInput(first)
		if second == nil || second.HasErrors() {
			t.Fatalf("formatted output does not reparse:\n%q -> %q", input, first)
		}
		again, err := format.Format(context.Background(), second, format.Options{})
		if err != nil {
			t.Fatalf("formatted output does not reformat: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", input, first, again)
		}
	})
}

func parseFuzzInput(input []byte) *cst.Tree {
	fs := source.NewFileSet()
	fileID, err := fs.AddVirtual("fuzz.proto", input)
	if err != nil {
		return nil
	}
	bag := diag.NewBag(128)
	return parser.ParseFile(fs.Get(fileID), parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: 128,
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
