package scan

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"svgtok/internal/source"
)

// Stream is a scanning cursor over a window of a document.
// Each tokenizer owns exactly one Stream; sub-tokenizers get their own
// Stream over an attribute's value span and never share cursor state
// with the structural tokenizer.
type Stream struct {
	file *source.File
	off  uint32
	end  uint32 // exclusive upper bound, defaults to len(file.Content)
}

// New creates a stream over the whole document.
func New(f *source.File) Stream {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Stream{file: f, off: 0, end: end}
}

// NewSpan creates a stream over the given window of the document.
func NewSpan(f *source.File, sp source.Span) Stream {
	return Stream{file: f, off: sp.Start, end: sp.End}
}

// File returns the backing document.
func (s *Stream) File() *source.File { return s.file }

// Offset returns the current absolute byte offset.
func (s *Stream) Offset() uint32 { return s.off }

// EOF reports whether the cursor reached the end of its window.
func (s *Stream) EOF() bool {
	return s.off >= s.end
}

// Peek reads the current byte if any, 0 otherwise.
func (s *Stream) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.file.Content[s.off]
}

// Peek2 reads the current and next byte.
func (s *Stream) Peek2() (b0, b1 byte, ok bool) {
	if s.off+1 >= s.end {
		return 0, 0, false
	}
	return s.file.Content[s.off], s.file.Content[s.off+1], true
}

// PeekAt reads the byte n positions ahead of the cursor.
func (s *Stream) PeekAt(n uint32) (byte, bool) {
	if s.off+n >= s.end {
		return 0, false
	}
	return s.file.Content[s.off+n], true
}

// CurrByte returns the current byte or ErrUnexpectedEndOfStream.
func (s *Stream) CurrByte() (byte, error) {
	if s.EOF() {
		return 0, s.errAt(ErrUnexpectedEndOfStream, s.off)
	}
	return s.file.Content[s.off], nil
}

// Bump moves the cursor one byte forward and returns the byte read.
func (s *Stream) Bump() byte {
	if s.EOF() {
		return 0
	}
	b := s.file.Content[s.off]
	s.off++
	return b
}

// Eat consumes the next byte if it matches b.
func (s *Stream) Eat(b byte) bool {
	if !s.EOF() && s.file.Content[s.off] == b {
		s.off++
		return true
	}
	return false
}

// Consume requires the next byte to be b and consumes it; otherwise it
// reports ErrInvalidChar (or ErrUnexpectedEndOfStream at the end).
func (s *Stream) Consume(b byte) error {
	got, err := s.CurrByte()
	if err != nil {
		return err
	}
	if got != b {
		e := s.errAt(ErrInvalidChar, s.off)
		e.Got, e.Want = got, b
		return e
	}
	s.off++
	return nil
}

// Advance moves the cursor forward by exactly n bytes, failing with
// ErrOutOfBounds if that would leave the window.
func (s *Stream) Advance(n uint32) error {
	if s.off+n > s.end {
		return s.errAt(ErrOutOfBounds, s.off)
	}
	s.off += n
	return nil
}

// advance is the unchecked variant for call sites that already proved
// the bound. It still asserts in lieu of true unchecked access.
func (s *Stream) advance(n uint32) {
	if s.off+n > s.end {
		panic(fmt.Sprintf("scan: unchecked advance(%d) past end (off=%d end=%d)", n, s.off, s.end))
	}
	s.off += n
}

// Mark is a saved cursor position used to derive spans and to rewind
// after failed parse attempts.
type Mark uint32

// Mark saves the current cursor position.
func (s *Stream) Mark() Mark {
	return Mark(s.off)
}

// SpanFrom returns the span from the mark to the current position.
func (s *Stream) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  s.file.ID,
		Start: uint32(m),
		End:   s.off,
	}
}

// Reset rewinds the cursor to the mark.
func (s *Stream) Reset(m Mark) {
	s.off = uint32(m)
}

// SkipWhile advances while pred holds. Never fails, including at end.
func (s *Stream) SkipWhile(pred func(byte) bool) {
	for !s.EOF() && pred(s.file.Content[s.off]) {
		s.off++
	}
}

// SkipSpaces advances over XML whitespace. Never fails.
func (s *Stream) SkipSpaces() {
	s.SkipWhile(IsSpace)
}

// StartsWith reports whether the remaining input begins with the given
// bytes. Does not advance.
func (s *Stream) StartsWith(prefix []byte) bool {
	return bytes.HasPrefix(s.file.Content[s.off:s.end], prefix)
}

// Tail returns the unread window without copying.
func (s *Stream) Tail() []byte {
	return s.file.Content[s.off:s.end]
}

// Slice returns the text a span covers.
func (s *Stream) Slice(sp source.Span) string {
	return sp.Text(s.file)
}

// errAt builds a positioned error for the given absolute offset.
func (s *Stream) errAt(kind ErrorKind, off uint32) *Error {
	return &Error{Kind: kind, Pos: s.file.LineColAt(off)}
}
