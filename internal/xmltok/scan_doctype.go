package xmltok

import (
	"bytes"

	"svgtok/internal/diag"
	"svgtok/internal/scan"
	"svgtok/internal/token"
)

func (t *Tokenizer) scanDoctypeHeader() (token.Token, error) {
	start := t.s.Mark()
	// "<!DOCTYPE" matched by the dispatcher
	_ = t.s.Advance(9)

	b, err := t.s.CurrByte()
	if err != nil {
		return t.fail(err)
	}
	if !scan.IsSpace(b) {
		return t.fail(scan.NewInvalidChar(t.file, t.s.Offset(), b, ' '))
	}
	t.s.SkipSpaces()

	nameSp, err := t.scanName()
	if err != nil {
		return t.fail(err)
	}
	t.s.SkipSpaces()

	// Optional external ID. The quoted literals are skipped, not kept:
	// nothing downstream consumes them.
	if t.s.StartsWith([]byte("PUBLIC")) {
		_ = t.s.Advance(6)
		t.s.SkipSpaces()
		if err := t.skipQuoted(); err != nil {
			return t.fail(err)
		}
		t.s.SkipSpaces()
		if err := t.skipQuoted(); err != nil {
			return t.fail(err)
		}
	} else if t.s.StartsWith([]byte("SYSTEM")) {
		_ = t.s.Advance(6)
		t.s.SkipSpaces()
		if err := t.skipQuoted(); err != nil {
			return t.fail(err)
		}
	}
	t.s.SkipSpaces()

	b, err = t.s.CurrByte()
	if err != nil {
		return t.fail(err)
	}
	switch b {
	case '>':
		t.s.Bump()
		return token.Token{Kind: token.EmptyDtd, Span: t.s.SpanFrom(start), Name: nameSp}, nil
	case '[':
		t.s.Bump()
		t.state = StateInDoctype
		return token.Token{Kind: token.DtdStart, Span: t.s.SpanFrom(start), Name: nameSp}, nil
	default:
		return t.fail(scan.NewInvalidChar(t.file, t.s.Offset(), b, '>'))
	}
}

// nextDoctype scans the internal subset: one EntityDecl token per
// <!ENTITY ...>, other markup declarations skipped with a diagnostic,
// ]> ends the state.
func (t *Tokenizer) nextDoctype() (token.Token, error) {
	for {
		t.s.SkipSpaces()
		if t.s.EOF() {
			return t.fail(scan.NewError(t.file, scan.ErrUnexpectedEndOfStream, t.endOffset()))
		}

		switch {
		case t.s.StartsWith([]byte("<!ENTITY")):
			return t.scanEntityDecl()

		case t.s.StartsWith([]byte("<!ELEMENT")),
			t.s.StartsWith([]byte("<!ATTLIST")),
			t.s.StartsWith([]byte("<!NOTATION")):
			start := t.s.Mark()
			idx := bytes.IndexByte(t.s.Tail(), '>')
			if idx < 0 {
				return t.fail(scan.NewError(t.file, scan.ErrUnexpectedEndOfStream, t.endOffset()))
			}
			_ = t.s.Advance(uint32(idx) + 1)
			t.report(diag.XMLSkippedDtdConstruct, diag.SevWarning, t.s.SpanFrom(start),
				"unsupported DOCTYPE construct skipped")
			continue

		case t.s.Peek() == ']':
			start := t.s.Mark()
			t.s.Bump()
			t.s.SkipSpaces()
			if err := t.s.Consume('>'); err != nil {
				return t.fail(err)
			}
			t.state = StateScanning
			return token.Token{Kind: token.DtdEnd, Span: t.s.SpanFrom(start)}, nil

		default:
			return t.fail(scan.NewInvalidChar(t.file, t.s.Offset(), t.s.Peek(), ']'))
		}
	}
}

func (t *Tokenizer) scanEntityDecl() (token.Token, error) {
	start := t.s.Mark()
	// "<!ENTITY" matched by the caller
	_ = t.s.Advance(8)

	b, err := t.s.CurrByte()
	if err != nil {
		return t.fail(err)
	}
	if !scan.IsSpace(b) {
		return t.fail(scan.NewInvalidChar(t.file, t.s.Offset(), b, ' '))
	}
	t.s.SkipSpaces()

	nameSp, err := t.scanName()
	if err != nil {
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
	_ = t.s.Advance(uint32(idx))
	valueSp := t.s.SpanFrom(vm)
	t.s.Bump()

	t.s.SkipSpaces()
	if err := t.s.Consume('>'); err != nil {
		return t.fail(err)
	}
	return token.Token{
		Kind:  token.EntityDecl,
		Span:  t.s.SpanFrom(start),
		Name:  nameSp,
		Value: valueSp,
	}, nil
}

// skipQuoted consumes one quoted literal.
func (t *Tokenizer) skipQuoted() error {
	quote, err := t.s.CurrByte()
	if err != nil {
		return err
	}
	if quote != '"' && quote != '\'' {
		return scan.NewInvalidChar(t.file, t.s.Offset(), quote, '"')
	}
	t.s.Bump()
	idx := bytes.IndexByte(t.s.Tail(), quote)
	if idx < 0 {
		return scan.NewError(t.file, scan.ErrUnexpectedEndOfStream, t.endOffset())
	}
	return t.s.Advance(uint32(idx) + 1)
}
