package token

import (
	"svgtok/internal/source"
	"svgtok/internal/svgnames"
)

// Token is one structural token. Name and Value are windows into the
// backing document; which of them is meaningful depends on Kind:
//
//	ElementStart, ElementEnd(Close)  Name = qualified element name
//	Attribute                        Name = attribute name, Value = raw value
//	EntityDecl                       Name = entity name, Value = replacement text
//	Declaration, Comment, Cdata      Value = inner content
//	Text, Whitespace                 Value = the character data
//
// Elem/Attr are set when the name matched the SVG name tables;
// otherwise they stay zero and the token is a generic name/value pair.
type Token struct {
	Kind  Kind
	Span  source.Span
	Name  source.Span
	Value source.Span
	Elem  svgnames.ElementID
	Attr  svgnames.AttrID
	End   EndKind
}

// IsSVGElement reports whether the token names a known SVG element.
func (t Token) IsSVGElement() bool { return t.Elem != svgnames.ElemUnknown }

// IsSVGAttr reports whether the token is an interned SVG attribute.
func (t Token) IsSVGAttr() bool { return t.Attr != svgnames.AttrUnknown }
