// Package svgcolor decodes SVG color attribute values. It consumes a
// finished span handed over by the caller and never touches a live
// tokenizer cursor.
package svgcolor

import (
	"strings"

	"svgtok/internal/scan"
	"svgtok/internal/source"
	"svgtok/internal/svgnames"
)

// Parse decodes one color value: #rgb, #rrggbb, rgb(r, g, b) with
// integer or percentage components, or a color keyword.
func Parse(file *source.File, sp source.Span) (svgnames.Color, error) {
	s := scan.NewSpan(file, sp)
	s.SkipSpaces()
	start := s.Offset()

	if s.EOF() {
		return svgnames.Color{}, scan.NewError(file, scan.ErrInvalidColor, start)
	}

	switch {
	case s.Peek() == '#':
		return parseHex(file, &s, start)
	case s.StartsWith([]byte("rgb(")):
		return parseRGB(file, &s, start)
	}

	m := s.Mark()
	s.SkipWhile(func(b byte) bool { return !scan.IsSpace(b) })
	name := strings.ToLower(s.Slice(s.SpanFrom(m)))
	if c, ok := svgnames.LookupColor(name); ok {
		return c, nil
	}
	return svgnames.Color{}, scan.NewError(file, scan.ErrInvalidColor, start)
}

func parseHex(file *source.File, s *scan.Stream, start uint32) (svgnames.Color, error) {
	s.Bump() // '#'
	m := s.Mark()
	s.SkipWhile(scan.IsHexDigit)
	digits := s.Slice(s.SpanFrom(m))

	switch len(digits) {
	case 6:
		return svgnames.Color{
			R: hexPair(digits[0], digits[1]),
			G: hexPair(digits[2], digits[3]),
			B: hexPair(digits[4], digits[5]),
		}, nil
	case 3:
		// #rgb is shorthand for #rrggbb.
		return svgnames.Color{
			R: hexPair(digits[0], digits[0]),
			G: hexPair(digits[1], digits[1]),
			B: hexPair(digits[2], digits[2]),
		}, nil
	}
	return svgnames.Color{}, scan.NewError(file, scan.ErrInvalidColor, start)
}

func parseRGB(file *source.File, s *scan.Stream, start uint32) (svgnames.Color, error) {
	_ = s.Advance(4)

	var comps [3]uint8
	percent := false
	for i := 0; i < 3; i++ {
		n, err := s.ParseNumber()
		if err != nil {
			return svgnames.Color{}, scan.NewError(file, scan.ErrInvalidColor, start)
		}
		// All three components must agree on the form.
		if s.Peek() == '%' {
			if i > 0 && !percent {
				return svgnames.Color{}, scan.NewError(file, scan.ErrInvalidColor, start)
			}
			percent = true
			s.Bump()
			n = n * 255 / 100
		} else if percent {
			return svgnames.Color{}, scan.NewError(file, scan.ErrInvalidColor, start)
		}
		comps[i] = clamp(n)
		s.SkipSpaces()
		s.Eat(',')
	}

	s.SkipSpaces()
	if err := s.Consume(')'); err != nil {
		return svgnames.Color{}, scan.NewError(file, scan.ErrInvalidColor, start)
	}
	return svgnames.Color{R: comps[0], G: comps[1], B: comps[2]}, nil
}

func clamp(n float64) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func hexPair(hi, lo byte) uint8 {
	return hexVal(hi)<<4 | hexVal(lo)
}

func hexVal(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
