package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"svgtok/internal/source"
)

func TestLineColAt(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.svg", []byte("<svg>\n  <rect/>\n</svg>\n"))
	file := fs.Get(id)

	tests := []struct {
		off  uint32
		want source.LineCol
	}{
		{0, source.LineCol{Line: 1, Col: 1}},
		{4, source.LineCol{Line: 1, Col: 5}},
		{5, source.LineCol{Line: 1, Col: 6}}, // the newline itself
		{6, source.LineCol{Line: 2, Col: 1}},
		{8, source.LineCol{Line: 2, Col: 3}},
		{16, source.LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		if got := file.LineColAt(tt.off); got != tt.want {
			t.Errorf("LineColAt(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestLineColAtNoNewlines(t *testing.T) {
	// One huge line: resolution stays linear in the offset but must
	// still terminate and report column = offset+1.
	content := make([]byte, 4096)
	for i := range content {
		content[i] = 'x'
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("long.svg", content))

	got := file.LineColAt(4000)
	want := source.LineCol{Line: 1, Col: 4001}
	if got != want {
		t.Errorf("LineColAt(4000) = %v, want %v", got, want)
	}
}

func TestLineColAtClampsPastEnd(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.svg", []byte("ab")))
	if got := file.LineColAt(99); got != (source.LineCol{Line: 1, Col: 3}) {
		t.Errorf("LineColAt(99) = %v", got)
	}
}

func TestResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.svg", []byte("<a>\n<b>\n"))
	start, end := fs.Resolve(source.Span{File: id, Start: 4, End: 7})
	if start != (source.LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %v", start)
	}
	if end != (source.LineCol{Line: 2, Col: 4}) {
		t.Errorf("end = %v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.svg", []byte("first\nsecond\nthird")))

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadUTF16(t *testing.T) {
	// "<svg/>" as UTF-16LE with BOM.
	raw := []byte{0xFF, 0xFE}
	for _, b := range []byte("<svg/>") {
		raw = append(raw, b, 0x00)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "utf16.svg")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "<svg/>" {
		t.Errorf("Content = %q, want %q", file.Content, "<svg/>")
	}
	if file.Flags&source.FileHadUTF16 == 0 {
		t.Error("FileHadUTF16 flag not set")
	}
}

func TestGetByPath(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a/b.svg", []byte("<x/>"))
	if _, ok := fs.GetByPath("a/b.svg"); !ok {
		t.Error("GetByPath did not find added file")
	}
	if _, ok := fs.GetByPath("missing.svg"); ok {
		t.Error("GetByPath found missing file")
	}
}
