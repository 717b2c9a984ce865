package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Scanner-level (stream primitives, number/length parsing)
	ScanInfo               Code = 1000
	ScanUnexpectedEOF      Code = 1001
	ScanOutOfBounds        Code = 1002
	ScanInvalidNumber      Code = 1003
	ScanInvalidLength      Code = 1004
	ScanInvalidChar        Code = 1005

	// Structural (XML-like grammar)
	XMLInfo                Code = 2000
	XMLUnexpectedClosingTag Code = 2001
	XMLInvalidAttribute    Code = 2002
	XMLUnterminatedTag     Code = 2003
	XMLUnterminatedComment Code = 2004
	XMLUnterminatedCdata   Code = 2005
	XMLSkippedDtdConstruct Code = 2006
	XMLInvalidName         Code = 2007

	// Path data
	PathInfo               Code = 3000
	PathNoMoveTo           Code = 3001
	PathTruncated          Code = 3002
	PathAfterClosePath     Code = 3003
	PathInvalidFlag        Code = 3004

	// Style lists
	StyleInfo              Code = 4000
	StylePrivateProperty   Code = 4001
	StyleTruncated         Code = 4002

	// Transform lists
	TransformInfo          Code = 5000
	TransformInvalid       Code = 5001

	// Value decoding
	ValueInfo              Code = 6000
	ValueInvalidColor      Code = 6001

	// I/O and driver
	IOLoadFileError Code = 9001
)

var codeNames = map[Code]string{
	UnknownCode: "Unknown",

	ScanInfo:          "ScanInfo",
	ScanUnexpectedEOF: "ScanUnexpectedEOF",
	ScanOutOfBounds:   "ScanOutOfBounds",
	ScanInvalidNumber: "ScanInvalidNumber",
	ScanInvalidLength: "ScanInvalidLength",
	ScanInvalidChar:   "ScanInvalidChar",

	XMLInfo:                 "XMLInfo",
	XMLUnexpectedClosingTag: "XMLUnexpectedClosingTag",
	XMLInvalidAttribute:     "XMLInvalidAttribute",
	XMLUnterminatedTag:      "XMLUnterminatedTag",
	XMLUnterminatedComment:  "XMLUnterminatedComment",
	XMLUnterminatedCdata:    "XMLUnterminatedCdata",
	XMLSkippedDtdConstruct:  "XMLSkippedDtdConstruct",
	XMLInvalidName:          "XMLInvalidName",

	PathInfo:           "PathInfo",
	PathNoMoveTo:       "PathNoMoveTo",
	PathTruncated:      "PathTruncated",
	PathAfterClosePath: "PathAfterClosePath",
	PathInvalidFlag:    "PathInvalidFlag",

	StyleInfo:            "StyleInfo",
	StylePrivateProperty: "StylePrivateProperty",
	StyleTruncated:       "StyleTruncated",

	TransformInfo:    "TransformInfo",
	TransformInvalid: "TransformInvalid",

	ValueInfo:         "ValueInfo",
	ValueInvalidColor: "ValueInvalidColor",

	IOLoadFileError: "IOLoadFileError",
}

// ID returns the stable "SVGxxxx" identifier used in output.
func (c Code) ID() string {
	return fmt.Sprintf("SVG%04d", uint16(c))
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
