package scan

import (
	"fmt"

	"svgtok/internal/source"
)

// ErrorKind classifies scanning failures.
type ErrorKind uint8

const (
	// ErrUnexpectedEndOfStream means a required byte or construct was
	// needed but the input ran out.
	ErrUnexpectedEndOfStream ErrorKind = iota
	// ErrOutOfBounds is a defensive bound-check failure on cursor
	// movement; unreachable through the checked API.
	ErrOutOfBounds
	ErrInvalidNumber
	ErrInvalidLength
	ErrInvalidColor
	ErrInvalidTransform
	ErrInvalidAttributeValue
	// ErrInvalidChar means a specific expected byte was not found.
	ErrInvalidChar
	// ErrInvalidName means a name was required but the input does not
	// begin with a name-start character.
	ErrInvalidName
	// ErrUnexpectedClosingTag means a closing tag appeared with the
	// nesting depth already at zero.
	ErrUnexpectedClosingTag
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedEndOfStream:
		return "unexpected end of stream"
	case ErrOutOfBounds:
		return "cursor advance out of bounds"
	case ErrInvalidNumber:
		return "invalid number"
	case ErrInvalidLength:
		return "invalid length"
	case ErrInvalidColor:
		return "invalid color"
	case ErrInvalidTransform:
		return "invalid transform"
	case ErrInvalidAttributeValue:
		return "invalid attribute value"
	case ErrInvalidChar:
		return "invalid character"
	case ErrInvalidName:
		return "invalid name"
	case ErrUnexpectedClosingTag:
		return "unexpected closing tag"
	}
	return "unknown error"
}

// Error is a positioned scanning error. The row/column pair is computed
// from the absolute offset when the error is constructed, by rescanning
// the document from offset 0. That rescan is O(document length) and is
// the accepted cost for keeping the scanning hot path free of line
// bookkeeping; errors are rare.
type Error struct {
	Kind ErrorKind
	Pos  source.LineCol
	// Got and Want are set for ErrInvalidChar.
	Got  byte
	Want byte
}

func (e *Error) Error() string {
	if e.Kind == ErrInvalidChar {
		return fmt.Sprintf("expected %q, found %q at %d:%d", e.Want, e.Got, e.Pos.Line, e.Pos.Col)
	}
	return fmt.Sprintf("%s at %d:%d", e.Kind, e.Pos.Line, e.Pos.Col)
}

// Is allows errors.Is matching against another *Error by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError builds a positioned error for an absolute offset in f.
func NewError(f *source.File, kind ErrorKind, off uint32) *Error {
	return &Error{Kind: kind, Pos: f.LineColAt(off)}
}

// NewInvalidChar builds an ErrInvalidChar error carrying the found and
// expected bytes.
func NewInvalidChar(f *source.File, off uint32, got, want byte) *Error {
	return &Error{Kind: ErrInvalidChar, Pos: f.LineColAt(off), Got: got, Want: want}
}
