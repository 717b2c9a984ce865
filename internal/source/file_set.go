package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet manages the documents loaded for one tokenization session and
// resolves spans to human-readable positions.
type FileSet struct {
	files []File
	index map[string]FileID // path -> id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores a document and returns a new FileID. It always creates a
// new FileID even if a document with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a document from disk and calls Add. UTF-16 input (detected
// by its byte order mark) is transcoded to UTF-8 so the tokenizers only
// ever see UTF-8 bytes. A UTF-8 BOM is left in place: stripping it is
// the structural tokenizer's job.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadUTF16, err := decodeUTF16(content)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	flags := FileFlags(0)
	if hadUTF16 {
		flags |= FileHadUTF16
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds a virtual document (stdin, test, or attribute fragment).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the document metadata for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// GetByPath returns the document for a path, if it was loaded into this FileSet.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fileSet.index[normalizePath(path)]; ok {
		return &fileSet.files[id], true
	}
	return nil, false
}

// Len returns the number of documents in the set.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Resolve converts a span into line and column positions.
// Resolution rescans the document from offset 0 and is O(len(content));
// positions are only computed for diagnostics, so the scanning hot path
// carries no line bookkeeping at all.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fileSet.files[span.File]
	return f.LineColAt(span.Start), f.LineColAt(span.End)
}

// LineColAt converts an absolute byte offset into a 1-based line/column
// pair by counting newlines from the start of the document.
func (f *File) LineColAt(off uint32) LineCol {
	if off > uint32(len(f.Content)) {
		off = uint32(len(f.Content))
	}
	pos := LineCol{Line: 1, Col: 1}
	for _, b := range f.Content[:off] {
		if b == '\n' {
			pos.Line++
			pos.Col = 1
		} else {
			pos.Col++
		}
	}
	return pos
}

// GetLine returns the 1-based line with the given number, without its
// terminating newline. Missing lines come back empty.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	start := 0
	for cur := uint32(1); cur < lineNum; cur++ {
		nl := bytes.IndexByte(f.Content[start:], '\n')
		if nl < 0 {
			return ""
		}
		start += nl + 1
	}
	end := bytes.IndexByte(f.Content[start:], '\n')
	if end < 0 {
		return string(f.Content[start:])
	}
	return string(f.Content[start : start+end])
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
