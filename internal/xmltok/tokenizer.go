// Package xmltok is the structural tokenizer: it turns one SVG/XML
// document into a pull-based sequence of element, attribute, text,
// CDATA, comment, and DOCTYPE tokens.
//
// Malformed document structure is a hard error: the caller sees it
// exactly once, after which the tokenizer is finished and keeps
// returning EOF. Recoverable oddities (skipped DOCTYPE constructs)
// go to the diagnostics reporter instead.
package xmltok

import (
	"svgtok/internal/diag"
	"svgtok/internal/scan"
	"svgtok/internal/source"
	"svgtok/internal/svgnames"
	"svgtok/internal/token"
)

// State is the tokenizer's explicit finite state.
type State uint8

const (
	StateAtStart State = iota
	StateScanning
	StateInDoctype
	StateInAttributes
	StateFinished
)

type Options struct {
	// Reporter receives diagnostics for silently-skipped constructs.
	// May be nil.
	Reporter diag.Reporter
}

// Tokenizer scans one document. Not safe for concurrent use; create
// one per goroutine.
type Tokenizer struct {
	file  *source.File
	s     scan.Stream
	state State
	depth uint32
	// elem is the interned id of the element whose attributes are
	// being scanned; attribute names are only interned when it is a
	// known SVG element.
	elem svgnames.ElementID
	opts Options
}

func New(file *source.File, opts Options) *Tokenizer {
	return &Tokenizer{
		file:  file,
		s:     scan.New(file),
		state: StateAtStart,
		opts:  opts,
	}
}

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Next returns the next structural token. A hard error is returned at
// most once; afterwards, and after the end of input, Next keeps
// returning an EOF token with a nil error.
func (t *Tokenizer) Next() (token.Token, error) {
	switch t.state {
	case StateFinished:
		return t.eof(), nil

	case StateAtStart:
		if t.s.StartsWith(bomUTF8) {
			if err := t.s.Advance(3); err != nil {
				return t.fail(err)
			}
		}
		t.state = StateScanning
		return t.Next()

	case StateScanning:
		return t.nextScanning()

	case StateInAttributes:
		return t.nextAttribute()

	case StateInDoctype:
		return t.nextDoctype()
	}
	return t.eof(), nil
}

// Depth returns the current element nesting depth.
func (t *Tokenizer) Depth() uint32 { return t.depth }

func (t *Tokenizer) nextScanning() (token.Token, error) {
	for {
		if t.s.EOF() {
			t.state = StateFinished
			return t.eof(), nil
		}
		b := t.s.Peek()
		if b == '<' {
			switch {
			case t.s.StartsWith([]byte("<?")):
				return t.scanDeclaration()
			case t.s.StartsWith([]byte("<!--")):
				return t.scanComment()
			case t.s.StartsWith([]byte("<![CDATA[")):
				return t.scanCdata()
			case t.s.StartsWith([]byte("<!DOCTYPE")):
				return t.scanDoctypeHeader()
			case t.s.StartsWith([]byte("</")):
				return t.scanCloseTag()
			default:
				return t.scanOpenTag()
			}
		}
		if t.depth > 0 {
			return t.scanText()
		}
		if scan.IsSpace(b) {
			// Whitespace between top-level constructs is not a token.
			t.s.Bump()
			continue
		}
		return t.fail(scan.NewInvalidChar(t.file, t.s.Offset(), b, '<'))
	}
}

// fail moves the tokenizer into its terminal state and hands the hard
// error to the caller once.
func (t *Tokenizer) fail(err error) (token.Token, error) {
	t.state = StateFinished
	return token.Token{Kind: token.EOF, Span: t.emptySpan()}, err
}

func (t *Tokenizer) eof() token.Token {
	return token.Token{Kind: token.EOF, Span: t.emptySpan()}
}

func (t *Tokenizer) emptySpan() source.Span {
	return source.Span{File: t.file.ID, Start: t.s.Offset(), End: t.s.Offset()}
}

func (t *Tokenizer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if t.opts.Reporter != nil {
		t.opts.Reporter.Report(code, sev, sp, msg)
	}
}
