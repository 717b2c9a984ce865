// Package pathtok tokenizes SVG path data (the d attribute) into
// explicit segments.
//
// Malformed trailing data never surfaces as an error: the stream is
// truncated at the first bad byte, a diagnostic is reported, and
// EndOfStream is emitted from then on. Invalid path data spoils only
// the path it belongs to, not the surrounding document.
package pathtok

import (
	"errors"
	"fmt"

	"svgtok/internal/diag"
	"svgtok/internal/scan"
	"svgtok/internal/source"
)

var errInvalidFlag = errors.New("invalid arc flag")

type Options struct {
	// Reporter receives the truncation diagnostics. May be nil.
	Reporter diag.Reporter
}

// Tokenizer scans one d attribute value. The previous command byte is
// carried across calls for implicit repetition.
type Tokenizer struct {
	file    *source.File
	s       scan.Stream
	prevCmd byte
	done    bool
	opts    Options
}

// New creates a tokenizer over the given window of the document,
// normally an attribute's value span.
func New(file *source.File, sp source.Span, opts Options) *Tokenizer {
	return &Tokenizer{
		file: file,
		s:    scan.NewSpan(file, sp),
		opts: opts,
	}
}

// Next returns the next segment. After exhaustion or truncation it
// keeps returning EndOfStream.
func (t *Tokenizer) Next() Segment {
	if t.done {
		return Segment{Kind: EndOfStream}
	}
	t.s.SkipSpaces()
	if t.s.EOF() {
		t.done = true
		return Segment{Kind: EndOfStream}
	}

	start := t.s.Offset()
	b := t.s.Peek()

	var cmd byte
	switch {
	case isCommand(b):
		if t.prevCmd == 0 && b != 'm' && b != 'M' {
			return t.truncate(diag.PathNoMoveTo, start, "path data does not start with a moveto command")
		}
		cmd = b
		t.s.Bump()

	case scan.IsDigit(b) || scan.IsSign(b) || b == '.':
		// Coordinates without a command letter repeat the previous
		// command. A bare number directly after a closepath ends the
		// path.
		switch t.prevCmd {
		case 0:
			return t.truncate(diag.PathNoMoveTo, start, "path data does not start with a moveto command")
		case 'z', 'Z':
			return t.truncate(diag.PathAfterClosePath, start, "a number is not allowed directly after a closepath")
		case 'm':
			cmd = 'l'
		case 'M':
			cmd = 'L'
		default:
			cmd = t.prevCmd
		}

	default:
		return t.truncate(diag.PathTruncated, start, fmt.Sprintf("invalid path command %q", b))
	}

	seg, err := t.scanSegment(cmd)
	if err != nil {
		code := diag.PathTruncated
		if errors.Is(err, errInvalidFlag) {
			code = diag.PathInvalidFlag
		}
		return t.truncate(code, start, fmt.Sprintf("path data truncated: %v", err))
	}
	t.prevCmd = cmd
	return seg
}

func (t *Tokenizer) scanSegment(cmd byte) (Segment, error) {
	abs := cmd >= 'A' && cmd <= 'Z'
	seg := Segment{Abs: abs}

	switch cmd {
	case 'm', 'M':
		seg.Kind = MoveTo
		return seg, t.coords(&seg.X, &seg.Y)
	case 'l', 'L':
		seg.Kind = LineTo
		return seg, t.coords(&seg.X, &seg.Y)
	case 'h', 'H':
		seg.Kind = HorizLineTo
		return seg, t.coords(&seg.X)
	case 'v', 'V':
		seg.Kind = VertLineTo
		return seg, t.coords(&seg.Y)
	case 'c', 'C':
		seg.Kind = CurveTo
		return seg, t.coords(&seg.X1, &seg.Y1, &seg.X2, &seg.Y2, &seg.X, &seg.Y)
	case 's', 'S':
		seg.Kind = SmoothCurveTo
		return seg, t.coords(&seg.X2, &seg.Y2, &seg.X, &seg.Y)
	case 'q', 'Q':
		seg.Kind = Quadratic
		return seg, t.coords(&seg.X1, &seg.Y1, &seg.X, &seg.Y)
	case 't', 'T':
		seg.Kind = SmoothQuadratic
		return seg, t.coords(&seg.X, &seg.Y)
	case 'a', 'A':
		seg.Kind = EllipticalArc
		if err := t.coords(&seg.RX, &seg.RY, &seg.XAxisRotation); err != nil {
			return seg, err
		}
		var err error
		if seg.LargeArc, err = t.parseListFlag(); err != nil {
			return seg, err
		}
		if seg.Sweep, err = t.parseListFlag(); err != nil {
			return seg, err
		}
		return seg, t.coords(&seg.X, &seg.Y)
	case 'z', 'Z':
		seg.Kind = ClosePath
		return seg, nil
	}
	return seg, fmt.Errorf("invalid path command %q", cmd)
}

// coords fills each destination from one list number.
func (t *Tokenizer) coords(dst ...*float64) error {
	for _, d := range dst {
		n, err := t.s.ParseListNumber()
		if err != nil {
			return err
		}
		*d = n
	}
	return nil
}

// parseListFlag reads one arc flag, a single 0 or 1 digit. Flags need
// no separator from the surrounding numbers.
func (t *Tokenizer) parseListFlag() (bool, error) {
	t.s.SkipSpaces()
	b, err := t.s.CurrByte()
	if err != nil {
		return false, err
	}
	if b != '0' && b != '1' {
		return false, fmt.Errorf("%w %q", errInvalidFlag, b)
	}
	t.s.Bump()
	t.s.SkipSpaces()
	t.s.Eat(',')
	return b == '1', nil
}

func (t *Tokenizer) truncate(code diag.Code, off uint32, msg string) Segment {
	t.done = true
	if t.opts.Reporter != nil {
		sp := source.Span{File: t.file.ID, Start: off, End: off}
		t.opts.Reporter.Report(code, diag.SevWarning, sp, msg)
	}
	return Segment{Kind: EndOfStream}
}

func isCommand(b byte) bool {
	switch b {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}
