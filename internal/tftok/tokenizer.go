// Package tftok tokenizes SVG transform lists.
//
// rotate(angle, cx, cy) is emitted as its definitional expansion,
// three tokens: Translate(cx,cy), Rotate(angle), Translate(-cx,-cy).
// Malformed input truncates the list with a diagnostic; an empty list
// is valid and yields EndOfStream immediately.
package tftok

import (
	"fmt"

	"svgtok/internal/diag"
	"svgtok/internal/scan"
	"svgtok/internal/source"
)

type Kind uint8

const (
	EndOfStream Kind = iota
	Matrix
	Translate
	Scale
	Rotate
	SkewX
	SkewY
)

func (k Kind) String() string {
	switch k {
	case EndOfStream:
		return "EndOfStream"
	case Matrix:
		return "Matrix"
	case Translate:
		return "Translate"
	case Scale:
		return "Scale"
	case Rotate:
		return "Rotate"
	case SkewX:
		return "SkewX"
	case SkewY:
		return "SkewY"
	}
	return "Kind(?)"
}

// Token is one transform. Matrix uses A..F, Translate and Scale use
// X/Y, Rotate and the skews use Angle.
type Token struct {
	Kind             Kind
	A, B, C, D, E, F float64
	X, Y             float64
	Angle            float64
}

type Options struct {
	// Reporter receives truncation diagnostics. May be nil.
	Reporter diag.Reporter
}

// Tokenizer scans one transform attribute value. Synthetic tokens from
// the three-argument rotate form are queued in pending and drained
// before the stream advances.
type Tokenizer struct {
	file     *source.File
	s        scan.Stream
	pending  [2]Token
	npending int
	done     bool
	opts     Options
}

func New(file *source.File, sp source.Span, opts Options) *Tokenizer {
	return &Tokenizer{
		file: file,
		s:    scan.NewSpan(file, sp),
		opts: opts,
	}
}

// Next returns the next transform. After exhaustion or truncation it
// keeps returning EndOfStream.
func (t *Tokenizer) Next() Token {
	if t.npending > 0 {
		tk := t.pending[0]
		t.pending[0] = t.pending[1]
		t.npending--
		return tk
	}
	if t.done {
		return Token{Kind: EndOfStream}
	}
	t.s.SkipSpaces()
	if t.s.EOF() {
		t.done = true
		return Token{Kind: EndOfStream}
	}

	start := t.s.Offset()

	// All six keywords are distinguishable by their first five bytes.
	var kind Kind
	switch {
	case t.s.StartsWith([]byte("matri")):
		kind = Matrix
	case t.s.StartsWith([]byte("trans")):
		kind = Translate
	case t.s.StartsWith([]byte("scale")):
		kind = Scale
	case t.s.StartsWith([]byte("rotat")):
		kind = Rotate
	case t.s.StartsWith([]byte("skewX")):
		kind = SkewX
	case t.s.StartsWith([]byte("skewY")):
		kind = SkewY
	default:
		return t.truncate(start, "unknown transform function")
	}

	t.s.SkipWhile(scan.IsLetter)
	t.s.SkipSpaces()
	if err := t.s.Consume('('); err != nil {
		return t.truncate(start, fmt.Sprintf("malformed transform: %v", err))
	}

	args, err := t.scanArgs()
	if err != nil {
		return t.truncate(start, fmt.Sprintf("malformed transform: %v", err))
	}

	// List items may be separated by a comma.
	t.s.SkipSpaces()
	t.s.Eat(',')

	tk, ok := t.build(kind, args)
	if !ok {
		return t.truncate(start, fmt.Sprintf("wrong argument count %d for %v", len(args), kind))
	}
	return tk
}

// scanArgs parses the number list between the parentheses, consuming
// the closing one.
func (t *Tokenizer) scanArgs() ([]float64, error) {
	args := make([]float64, 0, 6)
	for {
		t.s.SkipSpaces()
		if t.s.Eat(')') {
			return args, nil
		}
		if len(args) == 6 {
			return nil, fmt.Errorf("more than 6 transform arguments")
		}
		n, err := t.s.ParseListNumber()
		if err != nil {
			return nil, err
		}
		args = append(args, n)
	}
}

func (t *Tokenizer) build(kind Kind, args []float64) (Token, bool) {
	switch kind {
	case Matrix:
		if len(args) != 6 {
			return Token{}, false
		}
		return Token{
			Kind: Matrix,
			A:    args[0], B: args[1], C: args[2],
			D: args[3], E: args[4], F: args[5],
		}, true

	case Translate:
		switch len(args) {
		case 1:
			return Token{Kind: Translate, X: args[0], Y: 0}, true
		case 2:
			return Token{Kind: Translate, X: args[0], Y: args[1]}, true
		}
		return Token{}, false

	case Scale:
		switch len(args) {
		case 1:
			return Token{Kind: Scale, X: args[0], Y: args[0]}, true
		case 2:
			return Token{Kind: Scale, X: args[0], Y: args[1]}, true
		}
		return Token{}, false

	case Rotate:
		switch len(args) {
		case 1:
			return Token{Kind: Rotate, Angle: args[0]}, true
		case 3:
			// rotate(a, cx, cy) is translate(cx, cy) rotate(a)
			// translate(-cx, -cy).
			angle, cx, cy := args[0], args[1], args[2]
			t.pending[0] = Token{Kind: Rotate, Angle: angle}
			t.pending[1] = Token{Kind: Translate, X: -cx, Y: -cy}
			t.npending = 2
			return Token{Kind: Translate, X: cx, Y: cy}, true
		}
		return Token{}, false

	case SkewX:
		if len(args) != 1 {
			return Token{}, false
		}
		return Token{Kind: SkewX, Angle: args[0]}, true

	case SkewY:
		if len(args) != 1 {
			return Token{}, false
		}
		return Token{Kind: SkewY, Angle: args[0]}, true
	}
	return Token{}, false
}

func (t *Tokenizer) truncate(off uint32, msg string) Token {
	t.done = true
	if t.opts.Reporter != nil {
		sp := source.Span{File: t.file.ID, Start: off, End: off}
		t.opts.Reporter.Report(diag.TransformInvalid, diag.SevWarning, sp, msg)
	}
	return Token{Kind: EndOfStream}
}
