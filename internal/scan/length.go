package scan

// Unit is an SVG length unit.
type Unit uint8

const (
	// UnitNone marks a unit-less length.
	UnitNone Unit = iota
	UnitPercent
	UnitEm
	UnitEx
	UnitPx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
)

func (u Unit) String() string {
	switch u {
	case UnitPercent:
		return "%"
	case UnitEm:
		return "em"
	case UnitEx:
		return "ex"
	case UnitPx:
		return "px"
	case UnitIn:
		return "in"
	case UnitCm:
		return "cm"
	case UnitMm:
		return "mm"
	case UnitPt:
		return "pt"
	case UnitPc:
		return "pc"
	}
	return ""
}

// Length is a number with an optional unit suffix.
type Length struct {
	Number float64
	Unit   Unit
}

var twoByteUnits = map[[2]byte]Unit{
	{'e', 'm'}: UnitEm,
	{'e', 'x'}: UnitEx,
	{'p', 'x'}: UnitPx,
	{'i', 'n'}: UnitIn,
	{'c', 'm'}: UnitCm,
	{'m', 'm'}: UnitMm,
	{'p', 't'}: UnitPt,
	{'p', 'c'}: UnitPc,
}

// ParseLength parses a number followed by an optional case-sensitive
// unit suffix. Uppercase or unknown suffixes are not consumed: the
// length comes back unit-less and the suffix stays in the stream for
// the caller.
func (s *Stream) ParseLength() (Length, error) {
	n, err := s.ParseNumber()
	if err != nil {
		if se, ok := err.(*Error); ok {
			return Length{}, &Error{Kind: ErrInvalidLength, Pos: se.Pos}
		}
		return Length{}, err
	}

	if s.Eat('%') {
		return Length{Number: n, Unit: UnitPercent}, nil
	}
	if b0, b1, ok := s.Peek2(); ok {
		if unit, found := twoByteUnits[[2]byte{b0, b1}]; found {
			s.advance(2)
			return Length{Number: n, Unit: unit}, nil
		}
	}
	return Length{Number: n, Unit: UnitNone}, nil
}

// ParseListLength parses one length out of a whitespace/comma separated
// list.
func (s *Stream) ParseListLength() (Length, error) {
	if s.EOF() {
		return Length{}, s.errAt(ErrUnexpectedEndOfStream, s.off)
	}
	l, err := s.ParseLength()
	if err != nil {
		return Length{}, err
	}
	s.SkipSpaces()
	s.Eat(',')
	return l, nil
}
