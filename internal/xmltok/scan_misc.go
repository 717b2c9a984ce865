package xmltok

import (
	"bytes"

	"svgtok/internal/scan"
	"svgtok/internal/source"
	"svgtok/internal/token"
)

// scanBounded consumes opening bytes already verified by StartsWith,
// then everything up to and including the terminator. inner covers the
// content between the delimiters, whole the entire construct.
func (t *Tokenizer) scanBounded(openLen uint32, term []byte) (inner, whole source.Span, err error) {
	start := t.s.Mark()
	// opening already matched by the dispatcher
	_ = t.s.Advance(openLen)

	vm := t.s.Mark()
	idx := bytes.Index(t.s.Tail(), term)
	if idx < 0 {
		return source.Span{}, source.Span{}, scan.NewError(t.file, scan.ErrUnexpectedEndOfStream, t.endOffset())
	}
	_ = t.s.Advance(uint32(idx))
	inner = t.s.SpanFrom(vm)
	_ = t.s.Advance(uint32(len(term)))
	return inner, t.s.SpanFrom(start), nil
}

func (t *Tokenizer) scanDeclaration() (token.Token, error) {
	inner, whole, err := t.scanBounded(2, []byte("?>"))
	if err != nil {
		return t.fail(err)
	}
	return token.Token{Kind: token.Declaration, Span: whole, Value: inner}, nil
}

func (t *Tokenizer) scanComment() (token.Token, error) {
	inner, whole, err := t.scanBounded(4, []byte("-->"))
	if err != nil {
		return t.fail(err)
	}
	return token.Token{Kind: token.Comment, Span: whole, Value: inner}, nil
}

func (t *Tokenizer) scanCdata() (token.Token, error) {
	inner, whole, err := t.scanBounded(9, []byte("]]>"))
	if err != nil {
		return t.fail(err)
	}
	return token.Token{Kind: token.Cdata, Span: whole, Value: inner}, nil
}

// scanText consumes character data up to the next '<' (or the end of
// input) and classifies it as Text or Whitespace.
func (t *Tokenizer) scanText() (token.Token, error) {
	start := t.s.Mark()
	idx := bytes.IndexByte(t.s.Tail(), '<')
	if idx < 0 {
		_ = t.s.Advance(uint32(len(t.s.Tail())))
	} else {
		_ = t.s.Advance(uint32(idx))
	}
	sp := t.s.SpanFrom(start)

	kind := token.Whitespace
	for _, b := range sp.Bytes(t.file) {
		if !scan.IsSpace(b) {
			kind = token.Text
			break
		}
	}
	return token.Token{Kind: kind, Span: sp, Value: sp}, nil
}
