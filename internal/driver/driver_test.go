package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wbprotofmt/internal/trace"
)

const messy = "Transform {\ntranslation 0 1 2\n}\n"
const tidy = "\nTransform {\n  translation 0 1 2\n}\n"

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestFormatPathsWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "solid.proto", messy)

	_, results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Write: true})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("result error: %v", results[0].Err)
	}
	if !results[0].Changed {
		t.Error("expected the file to change")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != tidy {
		t.Errorf("written content = %q, want %q", got, tidy)
	}

	// A second run over formatted content is a no-op.
	_, results, err = FormatPaths(context.Background(), []string{dir}, FormatOptions{Write: true})
	if err != nil {
		t.Fatalf("second FormatPaths: %v", err)
	}
	if results[0].Changed {
		t.Error("second run should not change the file")
	}
}

func TestFormatPathsCheck(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "solid.proto", messy)

	_, results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Check: true})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if !results[0].Changed {
		t.Error("check should report a pending change")
	}
	got, _ := os.ReadFile(path)
	if string(got) != messy {
		t.Error("check must not modify the file")
	}
}

func TestFormatPathsSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "broken.proto", "Transform {\n")

	_, results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Write: true})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Err == nil {
		t.Fatal("expected a per-file error")
	}
	if !results[0].Bag.HasErrors() {
		t.Error("expected diagnostics in the bag")
	}
	got, _ := os.ReadFile(path)
	if string(got) != "Transform {\n" {
		t.Error("broken file must stay untouched")
	}
}

func TestFormatCache(t *testing.T) {
	cache, err := OpenFormatCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenFormatCacheAt: %v", err)
	}
	dir := t.TempDir()
	writeFixture(t, dir, "solid.proto", messy)

	opts := FormatOptions{Cache: cache}
	_, results, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Cached {
		t.Error("first run should not hit the cache")
	}

	_, results, err = FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("second FormatPaths: %v", err)
	}
	if !results[0].Cached {
		t.Error("second run should hit the cache")
	}
	if string(results[0].Formatted) != tidy {
		t.Errorf("cached output = %q, want %q", results[0].Formatted, tidy)
	}

	// A different indent width is a different fingerprint.
	opts.Format.IndentWidth = 4
	_, results, err = FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("third FormatPaths: %v", err)
	}
	if results[0].Cached {
		t.Error("changed options must miss the cache")
	}
}

func TestFormatStdin(t *testing.T) {
	var out bytes.Buffer
	err := FormatStdin(context.Background(), strings.NewReader(messy), &out, FormatOptions{})
	if err != nil {
		t.Fatalf("FormatStdin: %v", err)
	}
	if out.String() != tidy {
		t.Errorf("stdout = %q, want %q", out.String(), tidy)
	}
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.proto", messy)
	b := writeFixture(t, dir, filepath.Join("nested", "b.proto"), messy)
	writeFixture(t, dir, "ignored.txt", "x")
	other := writeFixture(t, dir, "explicit.wbproto", messy)

	files, err := CollectSourceFiles(context.Background(), []string{dir, a, other})
	if err != nil {
		t.Fatalf("CollectSourceFiles: %v", err)
	}
	want := []string{a, other, b}
	if len(files) != 3 {
		t.Fatalf("got %d files %v, want 3", len(files), files)
	}
	for _, w := range want {
		found := false
		for _, f := range files {
			if f == w {
				found = true
			}
		}
		if !found {
			t.Errorf("missing %s in %v", w, files)
		}
	}
}

func TestTokenizeAndParsePaths(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "solid.proto", messy)

	_, tokRes, err := TokenizePaths(context.Background(), []string{dir}, 0, 0)
	if err != nil {
		t.Fatalf("TokenizePaths: %v", err)
	}
	if len(tokRes) != 1 || len(tokRes[0].Tokens) == 0 {
		t.Fatalf("unexpected tokenize results: %+v", tokRes)
	}

	_, parseRes, err := ParsePaths(context.Background(), []string{dir}, 0, 0)
	if err != nil {
		t.Fatalf("ParsePaths: %v", err)
	}
	if len(parseRes) != 1 || parseRes[0].Tree == nil {
		t.Fatalf("unexpected parse results: %+v", parseRes)
	}
	if parseRes[0].Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", parseRes[0].Bag.Items())
	}
}

func TestFormatPathsTracing(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "solid.proto", messy)

	var buf bytes.Buffer
	tracer := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tracer)

	_, _, err := FormatPaths(ctx, []string{dir}, FormatOptions{Write: true})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}

	out := buf.String()
	for _, name := range []string{"file:", "parse", "format", "write"} {
		if !strings.Contains(out, name) {
			t.Errorf("trace output missing %q:\n%s", name, out)
		}
	}
}

func TestFormatPathsTracingOffByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "solid.proto", messy)

	// No tracer in the context must not panic or emit anything.
	_, results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("result error: %v", results[0].Err)
	}
}
