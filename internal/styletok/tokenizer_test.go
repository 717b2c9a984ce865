package styletok_test

import (
	"testing"

	"svgtok/internal/diag"
	"svgtok/internal/source"
	"svgtok/internal/styletok"
	"svgtok/internal/svgnames"
)

func newTokenizer(t *testing.T, style string) (*source.File, *styletok.Tokenizer, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("style", []byte(style))
	f := fs.Get(id)
	sp := source.Span{File: id, Start: 0, End: uint32(len(style))}
	bag := diag.NewBag(16)
	return f, styletok.New(f, sp, styletok.Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

func drain(t *testing.T, tok *styletok.Tokenizer) []styletok.Token {
	t.Helper()
	var out []styletok.Token
	for i := 0; i < 1000; i++ {
		tk := tok.Next()
		if tk.Kind == styletok.EndOfStream {
			return out
		}
		out = append(out, tk)
	}
	t.Fatal("tokenizer did not terminate")
	return nil
}

func TestDeclarations(t *testing.T) {
	f, tok, _ := newTokenizer(t, "fill:none; stroke : red ;stroke-width:2")
	toks := drain(t, tok)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}

	type want struct{ name, value string }
	wants := []want{{"fill", "none"}, {"stroke", "red"}, {"stroke-width", "2"}}
	for i, w := range wants {
		if got := toks[i].Name.Text(f); got != w.name {
			t.Errorf("token %d name = %q, want %q", i, got, w.name)
		}
		if got := toks[i].Value.Text(f); got != w.value {
			t.Errorf("token %d value = %q, want %q", i, got, w.value)
		}
	}
	if toks[0].Attr != svgnames.AttrFill {
		t.Errorf("fill not interned: %v", toks[0].Attr)
	}
}

func TestVendorPropertyDropped(t *testing.T) {
	f, tok, bag := newTokenizer(t, "fill:none;-webkit:hi")
	toks := drain(t, tok)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %+v", len(toks), toks)
	}
	if got := toks[0].Name.Text(f); got != "fill" {
		t.Errorf("token name = %q, want %q", got, "fill")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.StylePrivateProperty {
		t.Fatalf("diagnostics = %+v, want one StylePrivateProperty", bag.Items())
	}
}

func TestCommentsSkipped(t *testing.T) {
	f, tok, _ := newTokenizer(t, "/*a*/fill/*b*/:/*c*/none/*d*/;")
	toks := drain(t, tok)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %+v", len(toks), toks)
	}
	// A bare value runs to the semicolon, so a comment inside it stays
	// part of the value text.
	if got := toks[0].Value.Text(f); got != "none/*d*/" {
		t.Errorf("value = %q", got)
	}
}

func TestQuotedValues(t *testing.T) {
	f, tok, _ := newTokenizer(t, "font-family:'Times New Roman';baseline-shift:&apos;sub&apos;")
	toks := drain(t, tok)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if got := toks[0].Value.Text(f); got != "Times New Roman" {
		t.Errorf("quoted value = %q", got)
	}
	if got := toks[1].Value.Text(f); got != "sub" {
		t.Errorf("apos value = %q", got)
	}
}

func TestBareValueWithSpaces(t *testing.T) {
	// Technically non-conformant, accepted permissively.
	f, tok, _ := newTokenizer(t, "font-family:Neue Frutiger 65  ;fill:red")
	toks := drain(t, tok)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if got := toks[0].Value.Text(f); got != "Neue Frutiger 65" {
		t.Errorf("value = %q, want trailing spaces trimmed", got)
	}
}

func TestSeparatorRuns(t *testing.T) {
	_, tok, _ := newTokenizer(t, ";;fill:none;;;stroke:red;;")
	toks := drain(t, tok)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
}

func TestEntityRef(t *testing.T) {
	f, tok, _ := newTokenizer(t, "&st0; fill:none")
	toks := drain(t, tok)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if toks[0].Kind != styletok.EntityRef {
		t.Fatalf("token 0 kind = %v, want EntityRef", toks[0].Kind)
	}
	if got := toks[0].Name.Text(f); got != "st0" {
		t.Errorf("entity name = %q, want %q", got, "st0")
	}
}

func TestTruncationOnGarbage(t *testing.T) {
	_, tok, bag := newTokenizer(t, "fill:none;=bad")
	toks := drain(t, tok)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.StyleTruncated {
		t.Errorf("diagnostics = %+v, want one StyleTruncated", bag.Items())
	}
	for i := 0; i < 3; i++ {
		if tk := tok.Next(); tk.Kind != styletok.EndOfStream {
			t.Fatalf("call %d after truncation: %+v", i, tk)
		}
	}
}
