package token

// Kind represents the category of a structural token.
type Kind uint8

const (
	// EOF marks the end of the token stream. It is also what a
	// finished tokenizer keeps returning after a hard error.
	EOF Kind = iota
	// Declaration is an XML declaration or processing instruction, <?...?>.
	Declaration
	// Comment is <!--...-->.
	Comment
	// DtdStart is <!DOCTYPE name [, opening an internal subset.
	DtdStart
	// EmptyDtd is a <!DOCTYPE ...> without an internal subset.
	EmptyDtd
	// EntityDecl is one <!ENTITY name "value"> inside the internal subset.
	EntityDecl
	// DtdEnd is the ]> closing the internal subset.
	DtdEnd
	// ElementStart is the <name of an open tag.
	ElementStart
	// Attribute is one name="value" pair inside a tag.
	Attribute
	// ElementEnd closes a tag: >, />, or </name>.
	ElementEnd
	// Text is non-whitespace character data between tags.
	Text
	// Whitespace is whitespace-only character data between tags.
	Whitespace
	// Cdata is <![CDATA[...]]>.
	Cdata
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Declaration:
		return "Declaration"
	case Comment:
		return "Comment"
	case DtdStart:
		return "DtdStart"
	case EmptyDtd:
		return "EmptyDtd"
	case EntityDecl:
		return "EntityDecl"
	case DtdEnd:
		return "DtdEnd"
	case ElementStart:
		return "ElementStart"
	case Attribute:
		return "Attribute"
	case ElementEnd:
		return "ElementEnd"
	case Text:
		return "Text"
	case Whitespace:
		return "Whitespace"
	case Cdata:
		return "Cdata"
	}
	return "Unknown"
}

// EndKind distinguishes the three ways a tag ends.
type EndKind uint8

const (
	// EndOpen is >, leaving the element open.
	EndOpen EndKind = iota
	// EndClose is </name>.
	EndClose
	// EndEmpty is />.
	EndEmpty
)

func (k EndKind) String() string {
	switch k {
	case EndOpen:
		return "Open"
	case EndClose:
		return "Close"
	case EndEmpty:
		return "Empty"
	}
	return "Unknown"
}
