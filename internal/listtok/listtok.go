// Package listtok provides thin iterators over whitespace/comma
// separated value lists (points, stroke-dasharray and friends).
//
// Iteration stops without error at the end of input or at the first
// unparseable value; malformed trailing data is silently dropped.
package listtok

import (
	"svgtok/internal/scan"
	"svgtok/internal/source"
)

// NumberIter yields the numbers of a list one at a time.
type NumberIter struct {
	s    scan.Stream
	done bool
}

func Numbers(file *source.File, sp source.Span) *NumberIter {
	return &NumberIter{s: scan.NewSpan(file, sp)}
}

func (it *NumberIter) Next() (float64, bool) {
	if it.done {
		return 0, false
	}
	n, err := it.s.ParseListNumber()
	if err != nil {
		it.done = true
		return 0, false
	}
	return n, true
}

// LengthIter yields the lengths of a list one at a time.
type LengthIter struct {
	s    scan.Stream
	done bool
}

func Lengths(file *source.File, sp source.Span) *LengthIter {
	return &LengthIter{s: scan.NewSpan(file, sp)}
}

func (it *LengthIter) Next() (scan.Length, bool) {
	if it.done {
		return scan.Length{}, false
	}
	l, err := it.s.ParseListLength()
	if err != nil {
		it.done = true
		return scan.Length{}, false
	}
	return l, true
}

// Point is one coordinate pair from a points list.
type Point struct {
	X, Y float64
}

// PointsIter yields coordinate pairs. A final unpaired coordinate is
// dropped.
type PointsIter struct {
	s    scan.Stream
	done bool
}

func Points(file *source.File, sp source.Span) *PointsIter {
	return &PointsIter{s: scan.NewSpan(file, sp)}
}

func (it *PointsIter) Next() (Point, bool) {
	if it.done {
		return Point{}, false
	}
	x, err := it.s.ParseListNumber()
	if err != nil {
		it.done = true
		return Point{}, false
	}
	y, err := it.s.ParseListNumber()
	if err != nil {
		it.done = true
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}
