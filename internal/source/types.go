package source

type (
	// FileID uniquely identifies a source document within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source document.
	FileFlags uint8
)

const (
	// FileVirtual indicates the document was added from memory (test, stdin, attribute fragment).
	FileVirtual FileFlags = 1 << iota
	// FileHadUTF16 indicates the document was transcoded from UTF-16 on load.
	FileHadUTF16
)

// File captures metadata and content for a single source document.
// Content is owned by the FileSet for the whole parse; every Span and
// every token borrows from it and must not outlive it.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source document.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
