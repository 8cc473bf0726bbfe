package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"wbprotofmt/internal/source"
)

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.proto", []byte("PROTO X [\n  field SFFloat a 1\n]\n{\n}\n"))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}

	tests := []struct {
		name string
		off  uint32
		line uint32
		col  uint32
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 6, 1, 7},
		{"newline of first line", 9, 1, 10},
		{"start of second line", 10, 2, 1},
		{"field keyword", 12, 2, 3},
		{"closing bracket", 30, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
			if start.Line != tt.line || start.Col != tt.col {
				t.Fatalf("offset %d: got %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
			}
		})
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.proto")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFPROTO X [\r\n]{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if got, want := string(f.Content), "PROTO X [\n]{}\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("FileHadBOM not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF not set")
	}
	if f.Flags&source.FileAppendedNewline == 0 {
		t.Error("FileAppendedNewline not set")
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("lines.proto", []byte("first\nsecond\nthird\n"))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	f := fs.Get(id)

	if got := f.GetLine(2); got != "second" {
		t.Errorf("GetLine(2) = %q, want %q", got, "second")
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
	if got := f.GetLine(10); got != "" {
		t.Errorf("GetLine(10) = %q, want empty", got)
	}
}
