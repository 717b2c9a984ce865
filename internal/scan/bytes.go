package scan

// XML whitespace per the SVG grammar: space, tab, newline, carriage
// return. Form feed never appears in well-formed SVG but costs nothing
// to accept here.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

func IsLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func IsHexDigit(b byte) bool {
	return IsDigit(b) ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// IsXMLNameStart reports whether b can begin an XML name.
// Multi-byte starts are accepted wholesale: the tokenizers treat any
// non-ASCII byte as name material rather than validating Unicode
// classes, which matches how permissive SVG consumers behave.
func IsXMLNameStart(b byte) bool {
	return IsLetter(b) || b == '_' || b == ':' || b >= 0x80
}

// IsXMLName reports whether b can continue an XML name.
func IsXMLName(b byte) bool {
	return IsXMLNameStart(b) || IsDigit(b) || b == '-' || b == '.'
}

// IsSign reports whether b is a numeric sign byte.
func IsSign(b byte) bool { return b == '+' || b == '-' }
