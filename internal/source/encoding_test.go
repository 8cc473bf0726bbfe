package source_test

import (
	"testing"

	"wbprotofmt/internal/source"
)

func encodeUTF16LE(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		// test inputs are ASCII only
		out = append(out, byte(r), 0)
	}
	return out
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		want  string
		flags source.FileFlags
	}{
		{
			name:  "plain utf-8",
			raw:   []byte("PROTO X []{}\n"),
			want:  "PROTO X []{}\n",
			flags: 0,
		},
		{
			name:  "missing final newline",
			raw:   []byte("PROTO X []{}"),
			want:  "PROTO X []{}\n",
			flags: source.FileAppendedNewline,
		},
		{
			name:  "utf-8 bom",
			raw:   []byte("\xEF\xBB\xBF# header\n"),
			want:  "# header\n",
			flags: source.FileHadBOM,
		},
		{
			name:  "utf-16le bom",
			raw:   encodeUTF16LE("PROTO X []{}\n"),
			want:  "PROTO X []{}\n",
			flags: source.FileHadBOM | source.FileReencoded,
		},
		{
			name:  "latin-1 fallback",
			raw:   []byte("# caf\xe9\n"),
			want:  "# café\n",
			flags: source.FileReencoded,
		},
		{
			name:  "crlf",
			raw:   []byte("PROTO X [\r\n]{}\r\n"),
			want:  "PROTO X [\n]{}\n",
			flags: source.FileNormalizedCRLF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags, err := source.Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("content = %q, want %q", got, tt.want)
			}
			if flags != tt.flags {
				t.Fatalf("flags = %b, want %b", flags, tt.flags)
			}
		})
	}
}
