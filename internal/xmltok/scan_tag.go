package xmltok

import (
	"bytes"
	"strings"

	"svgtok/internal/scan"
	"svgtok/internal/source"
	"svgtok/internal/svgnames"
	"svgtok/internal/token"
)

// scanName consumes one XML name and returns its span.
func (t *Tokenizer) scanName() (source.Span, error) {
	b, err := t.s.CurrByte()
	if err != nil {
		return source.Span{}, err
	}
	if !scan.IsXMLNameStart(b) {
		return source.Span{}, scan.NewError(t.file, scan.ErrInvalidName, t.s.Offset())
	}
	m := t.s.Mark()
	t.s.SkipWhile(scan.IsXMLName)
	return t.s.SpanFrom(m), nil
}

// localPart strips a namespace prefix: "svg:use" -> "use".
func localPart(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (t *Tokenizer) scanOpenTag() (token.Token, error) {
	start := t.s.Mark()
	t.s.Bump() // '<'

	nameSp, err := t.scanName()
	if err != nil {
		return t.fail(err)
	}
	id, _ := svgnames.LookupElement(localPart(t.s.Slice(nameSp)))

	t.depth++
	t.elem = id
	t.state = StateInAttributes
	return token.Token{
		Kind: token.ElementStart,
		Span: t.s.SpanFrom(start),
		Name: nameSp,
		Elem: id,
	}, nil
}

func (t *Tokenizer) scanCloseTag() (token.Token, error) {
	start := t.s.Mark()
	if t.depth == 0 {
		return t.fail(scan.NewError(t.file, scan.ErrUnexpectedClosingTag, t.s.Offset()))
	}
	t.s.Bump() // '<'
	t.s.Bump() // '/'

	nameSp, err := t.scanName()
	if err != nil {
		return t.fail(err)
	}
	t.s.SkipSpaces()
	if err := t.s.Consume('>'); err != nil {
		return t.fail(err)
	}
	id, _ := svgnames.LookupElement(localPart(t.s.Slice(nameSp)))

	t.depth--
	return token.Token{
		Kind: token.ElementEnd,
		End:  token.EndClose,
		Span: t.s.SpanFrom(start),
		Name: nameSp,
		Elem: id,
	}, nil
}

// nextAttribute yields one Attribute token per call until the tag ends.
func (t *Tokenizer) nextAttribute() (token.Token, error) {
	t.s.SkipSpaces()
	b, err := t.s.CurrByte()
	if err != nil {
		// Input ran out inside a tag.
		return t.fail(err)
	}

	switch b {
	case '/':
		start := t.s.Mark()
		b1, ok := t.s.PeekAt(1)
		if !ok || b1 != '>' {
			return t.fail(scan.NewInvalidChar(t.file, t.s.Offset()+1, b1, '>'))
		}
		t.s.Bump()
		t.s.Bump()
		t.depth--
		t.elem = svgnames.ElemUnknown
		t.state = StateScanning
		return token.Token{
			Kind: token.ElementEnd,
			End:  token.EndEmpty,
			Span: t.s.SpanFrom(start),
		}, nil

	case '>':
		start := t.s.Mark()
		t.s.Bump()
		t.state = StateScanning
		return token.Token{
			Kind: token.ElementEnd,
			End:  token.EndOpen,
			Span: t.s.SpanFrom(start),
		}, nil
	}

	start := t.s.Mark()
	nameSp, err := t.scanName()
	if err != nil {
		return t.fail(err)
	}
	t.s.SkipSpaces()
	if err := t.s.Consume('='); err != nil {
		return t.fail(err)
	}
	t.s.SkipSpaces()

	quote, err := t.s.CurrByte()
	if err != nil {
		return t.fail(err)
	}
	if quote != '"' && quote != '\'' {
		return t.fail(scan.NewInvalidChar(t.file, t.s.Offset(), quote, '"'))
	}
	t.s.Bump()

	vm := t.s.Mark()
	idx := bytes.IndexByte(t.s.Tail(), quote)
	if idx < 0 {
		return t.fail(scan.NewError(t.file, scan.ErrUnexpectedEndOfStream, t.endOffset()))
	}
	// bound proven by IndexByte
	_ = t.s.Advance(uint32(idx))
	valueSp := t.s.SpanFrom(vm)
	t.s.Bump() // closing quote

	var attr svgnames.AttrID
	if t.elem != svgnames.ElemUnknown {
		attr, _ = svgnames.LookupAttr(t.s.Slice(nameSp))
	}
	return token.Token{
		Kind:  token.Attribute,
		Span:  t.s.SpanFrom(start),
		Name:  nameSp,
		Value: valueSp,
		Elem:  t.elem,
		Attr:  attr,
	}, nil
}

// endOffset is the absolute offset just past the last byte, used to
// position unexpected-end errors.
func (t *Tokenizer) endOffset() uint32 {
	return t.s.Offset() + uint32(len(t.s.Tail()))
}
