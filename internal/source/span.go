package source

import (
	"fmt"
)

// Span is a zero-copy window into a document's content.
// Invariant: Start <= End <= len(content). Spans are immutable once
// created; narrowing produces a new Span over the same backing bytes.
type Span struct {
	File  FileID
	Start uint32 // byte offset, inclusive
	End   uint32 // byte offset, exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Text returns the exact substring the span covers. Use Bytes where
// the copy matters.
func (s Span) Text(f *File) string {
	return string(f.Content[s.Start:s.End])
}

// Bytes returns the covered bytes without copying.
func (s Span) Bytes(f *File) []byte {
	return f.Content[s.Start:s.End]
}

// Cover extends the span to include other. Spans from different files
// are left unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Narrow returns the sub-span [s.Start+lo, s.Start+hi).
// Both bounds are relative to the span's own window.
func (s Span) Narrow(lo, hi uint32) Span {
	return Span{File: s.File, Start: s.Start + lo, End: s.Start + hi}
}
