package xmltok_test

import (
	"errors"
	"testing"

	"svgtok/internal/diag"
	"svgtok/internal/scan"
	"svgtok/internal/source"
	"svgtok/internal/svgnames"
	"svgtok/internal/token"
	"svgtok/internal/xmltok"
)

func newTokenizer(t *testing.T, src string) (*source.File, *xmltok.Tokenizer, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.svg", []byte(src))
	f := fs.Get(id)
	bag := diag.NewBag(16)
	tok := xmltok.New(f, xmltok.Options{Reporter: diag.BagReporter{Bag: bag}})
	return f, tok, bag
}

// drain pulls tokens until EOF or a hard error.
func drain(t *testing.T, tok *xmltok.Tokenizer) ([]token.Token, error) {
	t.Helper()
	var out []token.Token
	for i := 0; i < 1000; i++ {
		tk, err := tok.Next()
		if err != nil {
			return out, err
		}
		if tk.Kind == token.EOF {
			return out, nil
		}
		out = append(out, tk)
	}
	t.Fatal("tokenizer did not terminate")
	return nil, nil
}

func TestBasicDocument(t *testing.T) {
	f, tok, _ := newTokenizer(t, `<svg><rect/></svg>`)
	toks, err := drain(t, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type want struct {
		kind token.Kind
		end  token.EndKind
		name string
		elem svgnames.ElementID
	}
	wants := []want{
		{kind: token.ElementStart, name: "svg", elem: svgnames.ElemSvg},
		{kind: token.ElementEnd, end: token.EndOpen},
		{kind: token.ElementStart, name: "rect", elem: svgnames.ElemRect},
		{kind: token.ElementEnd, end: token.EndEmpty},
		{kind: token.ElementEnd, end: token.EndClose, name: "svg", elem: svgnames.ElemSvg},
	}
	if len(toks) != len(wants) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wants), toks)
	}
	for i, w := range wants {
		got := toks[i]
		if got.Kind != w.kind {
			t.Errorf("token %d: kind = %v, want %v", i, got.Kind, w.kind)
		}
		if got.Kind == token.ElementEnd && got.End != w.end {
			t.Errorf("token %d: end = %v, want %v", i, got.End, w.end)
		}
		if w.name != "" && got.Name.Text(f) != w.name {
			t.Errorf("token %d: name = %q, want %q", i, got.Name.Text(f), w.name)
		}
		if w.elem != svgnames.ElemUnknown && got.Elem != w.elem {
			t.Errorf("token %d: elem = %v, want %v", i, got.Elem, w.elem)
		}
	}
	if tok.Depth() != 0 {
		t.Errorf("final depth = %d, want 0", tok.Depth())
	}
}

func TestAttributes(t *testing.T) {
	f, tok, _ := newTokenizer(t, `<svg width="100" height='50%'><custom:x data-y="z"/></svg>`)
	toks, err := drain(t, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var attrs []token.Token
	for _, tk := range toks {
		if tk.Kind == token.Attribute {
			attrs = append(attrs, tk)
		}
	}
	if len(attrs) != 3 {
		t.Fatalf("got %d attributes, want 3", len(attrs))
	}

	if got := attrs[0].Name.Text(f); got != "width" {
		t.Errorf("attr 0 name = %q, want %q", got, "width")
	}
	if got := attrs[0].Value.Text(f); got != "100" {
		t.Errorf("attr 0 value = %q, want %q", got, "100")
	}
	if attrs[0].Attr != svgnames.AttrWidth {
		t.Errorf("attr 0 id = %v, want AttrWidth", attrs[0].Attr)
	}
	if got := attrs[1].Value.Text(f); got != "50%" {
		t.Errorf("attr 1 value = %q, want %q", got, "50%")
	}
	// Attribute names are not interned on non-SVG elements.
	if attrs[2].Attr != svgnames.AttrUnknown {
		t.Errorf("attr on unknown element interned as %v", attrs[2].Attr)
	}
}

func TestTextAndWhitespace(t *testing.T) {
	f, tok, _ := newTokenizer(t, "<text>hello</text>\n<g>\n  </g>")
	toks, err := drain(t, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var text, ws int
	for _, tk := range toks {
		switch tk.Kind {
		case token.Text:
			text++
			if got := tk.Value.Text(f); got != "hello" {
				t.Errorf("text value = %q, want %q", got, "hello")
			}
		case token.Whitespace:
			ws++
		}
	}
	if text != 1 {
		t.Errorf("got %d text tokens, want 1", text)
	}
	// "\n  " inside <g>; the newline between </text> and <g> is at
	// depth 0 and produces no token.
	if ws != 1 {
		t.Errorf("got %d whitespace tokens, want 1", ws)
	}
}

func TestDeclarationCommentCdata(t *testing.T) {
	src := `<?xml version="1.0"?><!-- note --><svg><![CDATA[a < b]]></svg>`
	f, tok, _ := newTokenizer(t, src)
	toks, err := drain(t, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if toks[0].Kind != token.Declaration {
		t.Fatalf("token 0 kind = %v, want Declaration", toks[0].Kind)
	}
	if got := toks[0].Value.Text(f); got != `xml version="1.0"` {
		t.Errorf("declaration value = %q", got)
	}
	if toks[1].Kind != token.Comment {
		t.Fatalf("token 1 kind = %v, want Comment", toks[1].Kind)
	}
	if got := toks[1].Value.Text(f); got != " note " {
		t.Errorf("comment value = %q", got)
	}

	var cdata *token.Token
	for i := range toks {
		if toks[i].Kind == token.Cdata {
			cdata = &toks[i]
		}
	}
	if cdata == nil {
		t.Fatal("no CDATA token")
	}
	if got := cdata.Value.Text(f); got != "a < b" {
		t.Errorf("cdata value = %q, want %q", got, "a < b")
	}
}

func TestEmptyDoctype(t *testing.T) {
	src := `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd"><svg/>`
	f, tok, _ := newTokenizer(t, src)
	toks, err := drain(t, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.EmptyDtd {
		t.Fatalf("token 0 kind = %v, want EmptyDtd", toks[0].Kind)
	}
	if got := toks[0].Name.Text(f); got != "svg" {
		t.Errorf("doctype name = %q, want %q", got, "svg")
	}
}

func TestDoctypeInternalSubset(t *testing.T) {
	src := "<!DOCTYPE svg [\n" +
		"  <!ENTITY ns_svg \"http://www.w3.org/2000/svg\">\n" +
		"  <!ELEMENT svg ANY>\n" +
		"]><svg/>"
	f, tok, bag := newTokenizer(t, src)
	toks, err := drain(t, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if toks[0].Kind != token.DtdStart {
		t.Fatalf("token 0 kind = %v, want DtdStart", toks[0].Kind)
	}
	if toks[1].Kind != token.EntityDecl {
		t.Fatalf("token 1 kind = %v, want EntityDecl", toks[1].Kind)
	}
	if got := toks[1].Name.Text(f); got != "ns_svg" {
		t.Errorf("entity name = %q, want %q", got, "ns_svg")
	}
	if got := toks[1].Value.Text(f); got != "http://www.w3.org/2000/svg" {
		t.Errorf("entity value = %q", got)
	}
	if toks[2].Kind != token.DtdEnd {
		t.Fatalf("token 2 kind = %v, want DtdEnd", toks[2].Kind)
	}

	// <!ELEMENT was skipped with a warning.
	if bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.XMLSkippedDtdConstruct {
		t.Errorf("diagnostic code = %v, want XMLSkippedDtdConstruct", d.Code)
	}
	if d.Severity != diag.SevWarning {
		t.Errorf("diagnostic severity = %v, want warning", d.Severity)
	}
}

func TestUnexpectedClosingTag(t *testing.T) {
	_, tok, _ := newTokenizer(t, "<svg/>\n</svg>")
	_, err := drain(t, tok)

	var se *scan.Error
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *scan.Error", err)
	}
	if se.Kind != scan.ErrUnexpectedClosingTag {
		t.Errorf("kind = %v, want ErrUnexpectedClosingTag", se.Kind)
	}
	// Position of the stray '<' on the second line.
	if se.Pos.Line != 2 || se.Pos.Col != 1 {
		t.Errorf("pos = %d:%d, want 2:1", se.Pos.Line, se.Pos.Col)
	}
}

func TestErrorIsTerminal(t *testing.T) {
	_, tok, _ := newTokenizer(t, "</oops>")
	_, err := drain(t, tok)
	if err == nil {
		t.Fatal("expected a hard error")
	}

	// The error is delivered once; afterwards only EOF.
	for i := 0; i < 3; i++ {
		tk, err := tok.Next()
		if err != nil {
			t.Fatalf("call %d after failure: err = %v, want nil", i, err)
		}
		if tk.Kind != token.EOF {
			t.Fatalf("call %d after failure: kind = %v, want EOF", i, tk.Kind)
		}
	}
}

func TestBOMStripped(t *testing.T) {
	_, tok, _ := newTokenizer(t, "\xEF\xBB\xBF<svg/>")
	toks, err := drain(t, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) == 0 || toks[0].Kind != token.ElementStart {
		t.Fatalf("tokens = %+v, want leading ElementStart", toks)
	}
}

func TestTopLevelGarbage(t *testing.T) {
	_, tok, _ := newTokenizer(t, "  garbage")
	_, err := drain(t, tok)

	var se *scan.Error
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *scan.Error", err)
	}
	if se.Kind != scan.ErrInvalidChar || se.Want != '<' {
		t.Errorf("got kind=%v want=%q, expected ErrInvalidChar wanting '<'", se.Kind, se.Want)
	}
}

func TestUnterminatedComment(t *testing.T) {
	_, tok, _ := newTokenizer(t, "<!-- never closed")
	_, err := drain(t, tok)
	if !errors.Is(err, &scan.Error{Kind: scan.ErrUnexpectedEndOfStream}) {
		t.Fatalf("error = %v, want unexpected end of stream", err)
	}
}

func TestNamespacePrefixStripped(t *testing.T) {
	f, tok, _ := newTokenizer(t, `<svg:svg xmlns:svg="http://www.w3.org/2000/svg"/>`)
	toks, err := drain(t, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Elem != svgnames.ElemSvg {
		t.Errorf("elem = %v, want ElemSvg", toks[0].Elem)
	}
	if got := toks[0].Name.Text(f); got != "svg:svg" {
		t.Errorf("name span = %q, want the qualified name", got)
	}
}

func TestDepthTracking(t *testing.T) {
	_, tok, _ := newTokenizer(t, `<svg><g><rect/></g></svg>`)
	maxDepth := uint32(0)
	for {
		tk, err := tok.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tk.Kind == token.EOF {
			break
		}
		if d := tok.Depth(); d > maxDepth {
			maxDepth = d
		}
	}
	if maxDepth != 3 {
		t.Errorf("max depth = %d, want 3", maxDepth)
	}
	if tok.Depth() != 0 {
		t.Errorf("final depth = %d, want 0", tok.Depth())
	}
}
