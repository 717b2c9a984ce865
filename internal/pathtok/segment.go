package pathtok

// Kind enumerates path segment commands.
type Kind uint8

const (
	// EndOfStream marks exhaustion; also emitted on malformed trailing
	// data after the diagnostic is reported.
	EndOfStream Kind = iota
	MoveTo
	LineTo
	HorizLineTo
	VertLineTo
	CurveTo
	SmoothCurveTo
	Quadratic
	SmoothQuadratic
	EllipticalArc
	ClosePath
)

func (k Kind) String() string {
	switch k {
	case EndOfStream:
		return "EndOfStream"
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case HorizLineTo:
		return "HorizLineTo"
	case VertLineTo:
		return "VertLineTo"
	case CurveTo:
		return "CurveTo"
	case SmoothCurveTo:
		return "SmoothCurveTo"
	case Quadratic:
		return "Quadratic"
	case SmoothQuadratic:
		return "SmoothQuadratic"
	case EllipticalArc:
		return "EllipticalArc"
	case ClosePath:
		return "ClosePath"
	}
	return "Kind(?)"
}

// Segment is one desugared path command. Implicit repetition in the
// source is expanded: every Segment carries exactly one coordinate
// group. Which fields are meaningful depends on Kind:
//
//	MoveTo, LineTo, SmoothQuadratic  X, Y
//	HorizLineTo                      X
//	VertLineTo                       Y
//	CurveTo                          X1, Y1, X2, Y2, X, Y
//	SmoothCurveTo                    X2, Y2, X, Y
//	Quadratic                        X1, Y1, X, Y
//	EllipticalArc                    RX, RY, XAxisRotation, LargeArc, Sweep, X, Y
//	ClosePath, EndOfStream           none
type Segment struct {
	Kind          Kind
	Abs           bool
	X1, Y1        float64
	X2, Y2        float64
	RX, RY        float64
	XAxisRotation float64
	LargeArc      bool
	Sweep         bool
	X, Y          float64
}
