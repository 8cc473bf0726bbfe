package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a source file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (stdin, test, generated).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a byte order mark was stripped during loading.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
	// FileReencoded indicates the content was transcoded from a non-UTF-8 encoding.
	FileReencoded
	// FileAppendedNewline indicates a final newline was added during loading.
	FileAppendedNewline
)

// File captures metadata and content for a single source file.
// Content is always LF-normalized UTF-8 without a BOM.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
