package scan

import (
	"math"
	"strconv"
)

// ParseNumber parses an SVG number: optional sign, digits, optional
// fractional part, optional exponent. Leading whitespace is skipped.
//
// An 'e'/'E' after the digits is only treated as an exponent when a
// digit (or a sign and a digit) follows, so "1em" parses as the number
// 1 with "em" left for the caller. Non-finite results are rejected.
//
// On failure the cursor is restored to the position before the attempt
// and the error is positioned at the start of the attempt.
func (s *Stream) ParseNumber() (float64, error) {
	origin := s.Mark()
	s.SkipSpaces()
	start := s.Mark()

	if err := s.scanNumberBytes(uint32(start)); err != nil {
		s.Reset(origin)
		return 0, err
	}

	text := s.Slice(s.SpanFrom(start))
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		s.Reset(origin)
		return 0, s.errAt(ErrInvalidNumber, uint32(start))
	}
	return n, nil
}

// scanNumberBytes consumes sign? (digits ('.' digits*)? | '.' digits+)
// exponent? and reports ErrInvalidNumber positioned at start when the
// input does not begin with a number.
func (s *Stream) scanNumberBytes(start uint32) error {
	if IsSign(s.Peek()) {
		s.advance(1)
	}

	hasInt := false
	for IsDigit(s.Peek()) {
		s.advance(1)
		hasInt = true
	}

	if s.Peek() == '.' {
		// Reject a lone "." (or "+.") with nothing on either side.
		frac, ok := s.PeekAt(1)
		if !hasInt && !(ok && IsDigit(frac)) {
			return s.errAt(ErrInvalidNumber, start)
		}
		s.advance(1)
		for IsDigit(s.Peek()) {
			s.advance(1)
		}
	} else if !hasInt {
		return s.errAt(ErrInvalidNumber, start)
	}

	// Exponent only when something parseable follows the 'e', otherwise
	// the byte belongs to a unit suffix like "em"/"ex".
	if b := s.Peek(); b == 'e' || b == 'E' {
		if b1, ok := s.PeekAt(1); ok {
			switch {
			case IsDigit(b1):
				s.advance(2)
				s.SkipWhile(IsDigit)
			case IsSign(b1):
				if b2, ok := s.PeekAt(2); ok && IsDigit(b2) {
					s.advance(3)
					s.SkipWhile(IsDigit)
				}
			}
		}
	}
	return nil
}

// ParseInteger parses a signed decimal integer. No fraction, no
// exponent. A value that does not fit int32 is ErrInvalidNumber, not a
// wraparound.
func (s *Stream) ParseInteger() (int32, error) {
	origin := s.Mark()
	s.SkipSpaces()
	start := s.Mark()

	if IsSign(s.Peek()) {
		s.advance(1)
	}
	hasDigits := false
	for IsDigit(s.Peek()) {
		s.advance(1)
		hasDigits = true
	}
	if !hasDigits {
		s.Reset(origin)
		return 0, s.errAt(ErrInvalidNumber, uint32(start))
	}

	text := s.Slice(s.SpanFrom(start))
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		s.Reset(origin)
		return 0, s.errAt(ErrInvalidNumber, uint32(start))
	}
	return int32(n), nil
}

// ParseListNumber parses one number out of a whitespace/comma separated
// list: the value, trailing spaces, then at most one comma.
func (s *Stream) ParseListNumber() (float64, error) {
	if s.EOF() {
		return 0, s.errAt(ErrUnexpectedEndOfStream, s.off)
	}
	n, err := s.ParseNumber()
	if err != nil {
		return 0, err
	}
	s.SkipSpaces()
	s.Eat(',')
	return n, nil
}

// ParseListInteger is the integer variant of ParseListNumber.
func (s *Stream) ParseListInteger() (int32, error) {
	if s.EOF() {
		return 0, s.errAt(ErrUnexpectedEndOfStream, s.off)
	}
	n, err := s.ParseInteger()
	if err != nil {
		return 0, err
	}
	s.SkipSpaces()
	s.Eat(',')
	return n, nil
}
