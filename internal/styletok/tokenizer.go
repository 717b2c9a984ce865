// Package styletok tokenizes inline style attributes, a flat
// name:value; subset of CSS2.
//
// Vendor properties (leading '-') are parsed and dropped with a
// diagnostic. Malformed input truncates the list, it never aborts the
// surrounding document.
package styletok

import (
	"bytes"
	"fmt"

	"svgtok/internal/diag"
	"svgtok/internal/scan"
	"svgtok/internal/source"
	"svgtok/internal/svgnames"
)

type Kind uint8

const (
	EndOfStream Kind = iota
	// Attribute is one name:value declaration.
	Attribute
	// EntityRef is a standalone &name; reference in place of a
	// declaration.
	EntityRef
)

func (k Kind) String() string {
	switch k {
	case EndOfStream:
		return "EndOfStream"
	case Attribute:
		return "Attribute"
	case EntityRef:
		return "EntityRef"
	}
	return "Kind(?)"
}

// Token is one style declaration. Attr is set when the property name
// matched the SVG attribute table; otherwise the declaration is a
// generic name/value pair.
type Token struct {
	Kind  Kind
	Name  source.Span
	Value source.Span
	Attr  svgnames.AttrID
}

type Options struct {
	// Reporter receives dropped-property and truncation diagnostics.
	// May be nil.
	Reporter diag.Reporter
}

type Tokenizer struct {
	file *source.File
	s    scan.Stream
	done bool
	opts Options
}

func New(file *source.File, sp source.Span, opts Options) *Tokenizer {
	return &Tokenizer{
		file: file,
		s:    scan.NewSpan(file, sp),
		opts: opts,
	}
}

var apos = []byte("&apos;")

// Next returns the next declaration. After exhaustion or truncation it
// keeps returning EndOfStream.
func (t *Tokenizer) Next() Token {
	for {
		if t.done {
			return Token{Kind: EndOfStream}
		}
		if !t.skipBlank() {
			return t.truncate(t.s.Offset(), "unterminated comment")
		}
		if t.s.EOF() {
			t.done = true
			return Token{Kind: EndOfStream}
		}
		// Separator runs (;;;) produce no tokens.
		if t.s.Eat(';') {
			continue
		}

		b := t.s.Peek()
		switch {
		case b == '&':
			return t.scanEntityRef()

		case b == '-':
			// Vendor property: consumed like any declaration, then
			// dropped.
			name, _, ok := t.scanDeclaration()
			if !ok {
				return Token{Kind: EndOfStream}
			}
			t.report(diag.StylePrivateProperty, diag.SevWarning, name,
				fmt.Sprintf("private property %q is dropped", t.s.Slice(name)))
			continue

		case isIdentStart(b):
			name, value, ok := t.scanDeclaration()
			if !ok {
				return Token{Kind: EndOfStream}
			}
			attr, _ := svgnames.LookupAttr(t.s.Slice(name))
			return Token{Kind: Attribute, Name: name, Value: value, Attr: attr}

		default:
			return t.truncate(t.s.Offset(), fmt.Sprintf("invalid byte %q in style list", b))
		}
	}
}

// scanDeclaration parses name ':' value and one optional trailing ';'.
// ok is false when the tokenizer truncated.
func (t *Tokenizer) scanDeclaration() (name, value source.Span, ok bool) {
	m := t.s.Mark()
	t.s.Bump()
	t.s.SkipWhile(isIdent)
	name = t.s.SpanFrom(m)

	if !t.skipBlank() {
		t.truncate(t.s.Offset(), "unterminated comment")
		return name, value, false
	}
	if err := t.s.Consume(':'); err != nil {
		t.truncate(t.s.Offset(), fmt.Sprintf("malformed declaration: %v", err))
		return name, value, false
	}
	if !t.skipBlank() {
		t.truncate(t.s.Offset(), "unterminated comment")
		return name, value, false
	}

	switch {
	case t.s.Peek() == '\'':
		t.s.Bump()
		vm := t.s.Mark()
		idx := bytes.IndexByte(t.s.Tail(), '\'')
		if idx < 0 {
			t.truncate(uint32(vm), "unterminated quoted value")
			return name, value, false
		}
		_ = t.s.Advance(uint32(idx))
		value = t.s.SpanFrom(vm)
		t.s.Bump()

	case t.s.StartsWith(apos):
		_ = t.s.Advance(uint32(len(apos)))
		vm := t.s.Mark()
		idx := bytes.Index(t.s.Tail(), apos)
		if idx < 0 {
			t.truncate(uint32(vm), "unterminated quoted value")
			return name, value, false
		}
		_ = t.s.Advance(uint32(idx))
		value = t.s.SpanFrom(vm)
		_ = t.s.Advance(uint32(len(apos)))

	default:
		// Bare value, up to the separator or the end. Internal spaces
		// are accepted (font-family:Neue Frutiger 65); trailing spaces
		// are trimmed.
		vm := t.s.Mark()
		t.s.SkipWhile(func(b byte) bool { return b != ';' })
		value = t.s.SpanFrom(vm)
		for value.End > value.Start && scan.IsSpace(t.file.Content[value.End-1]) {
			value.End--
		}
	}

	t.s.SkipSpaces()
	t.s.Eat(';')
	return name, value, true
}

// scanEntityRef parses a standalone &name; reference.
func (t *Tokenizer) scanEntityRef() Token {
	t.s.Bump() // '&'
	m := t.s.Mark()
	t.s.SkipWhile(isIdent)
	name := t.s.SpanFrom(m)
	if name.Empty() {
		return t.truncate(uint32(m), "empty entity reference")
	}
	if err := t.s.Consume(';'); err != nil {
		return t.truncate(t.s.Offset(), fmt.Sprintf("malformed entity reference: %v", err))
	}
	return Token{Kind: EntityRef, Name: name}
}

// skipBlank advances over whitespace and C-style comments. It reports
// false on an unterminated comment.
func (t *Tokenizer) skipBlank() bool {
	for {
		t.s.SkipSpaces()
		if !t.s.StartsWith([]byte("/*")) {
			return true
		}
		_ = t.s.Advance(2)
		idx := bytes.Index(t.s.Tail(), []byte("*/"))
		if idx < 0 {
			return false
		}
		_ = t.s.Advance(uint32(idx) + 2)
	}
}

func (t *Tokenizer) truncate(off uint32, msg string) Token {
	t.done = true
	sp := source.Span{File: t.file.ID, Start: off, End: off}
	t.report(diag.StyleTruncated, diag.SevWarning, sp, msg)
	return Token{Kind: EndOfStream}
}

func (t *Tokenizer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if t.opts.Reporter != nil {
		t.opts.Reporter.Report(code, sev, sp, msg)
	}
}

func isIdentStart(b byte) bool {
	return scan.IsLetter(b) || b == '_' || b == '-'
}

func isIdent(b byte) bool {
	return scan.IsLetter(b) || scan.IsDigit(b) || b == '_' || b == '-'
}
