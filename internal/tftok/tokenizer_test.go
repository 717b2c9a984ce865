package tftok_test

import (
	"testing"

	"svgtok/internal/diag"
	"svgtok/internal/source"
	"svgtok/internal/tftok"
)

func newTokenizer(t *testing.T, tf string) (*tftok.Tokenizer, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("transform", []byte(tf))
	f := fs.Get(id)
	sp := source.Span{File: id, Start: 0, End: uint32(len(tf))}
	bag := diag.NewBag(16)
	return tftok.New(f, sp, tftok.Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

func drain(t *testing.T, tok *tftok.Tokenizer) []tftok.Token {
	t.Helper()
	var out []tftok.Token
	for i := 0; i < 1000; i++ {
		tk := tok.Next()
		if tk.Kind == tftok.EndOfStream {
			return out
		}
		out = append(out, tk)
	}
	t.Fatal("tokenizer did not terminate")
	return nil
}

func TestMatrix(t *testing.T) {
	tok, _ := newTokenizer(t, "matrix(1 0 0 1 10 20)")
	toks := drain(t, tok)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %+v", len(toks), toks)
	}
	want := tftok.Token{Kind: tftok.Matrix, A: 1, B: 0, C: 0, D: 1, E: 10, F: 20}
	if toks[0] != want {
		t.Errorf("token = %+v, want %+v", toks[0], want)
	}
}

func TestDefaults(t *testing.T) {
	tok, _ := newTokenizer(t, "translate(10) scale(2)")
	toks := drain(t, tok)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if toks[0] != (tftok.Token{Kind: tftok.Translate, X: 10, Y: 0}) {
		t.Errorf("translate = %+v, want ty defaulted to 0", toks[0])
	}
	if toks[1] != (tftok.Token{Kind: tftok.Scale, X: 2, Y: 2}) {
		t.Errorf("scale = %+v, want sy defaulted to sx", toks[1])
	}
}

func TestRotateExpansion(t *testing.T) {
	tok, _ := newTokenizer(t, "rotate(30 10 20)")
	toks := drain(t, tok)
	want := []tftok.Token{
		{Kind: tftok.Translate, X: 10, Y: 20},
		{Kind: tftok.Rotate, Angle: 30},
		{Kind: tftok.Translate, X: -10, Y: -20},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i] != w {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], w)
		}
	}
}

func TestRotateExpansionThenNext(t *testing.T) {
	// The pending queue must drain before the stream advances.
	tok, _ := newTokenizer(t, "rotate(45, 1, 2) skewX(10)")
	toks := drain(t, tok)
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(toks), toks)
	}
	if toks[3] != (tftok.Token{Kind: tftok.SkewX, Angle: 10}) {
		t.Errorf("token 3 = %+v, want SkewX(10)", toks[3])
	}
}

func TestCommaSeparatedList(t *testing.T) {
	tok, _ := newTokenizer(t, "translate(1,2), scale(3), skewY(4)")
	toks := drain(t, tok)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
	if toks[2] != (tftok.Token{Kind: tftok.SkewY, Angle: 4}) {
		t.Errorf("token 2 = %+v, want SkewY(4)", toks[2])
	}
}

func TestEmptyListIsValid(t *testing.T) {
	tok, bag := newTokenizer(t, "   ")
	if toks := drain(t, tok); len(toks) != 0 {
		t.Fatalf("got %d tokens from blank input", len(toks))
	}
	if bag.Len() != 0 {
		t.Errorf("blank input produced diagnostics: %+v", bag.Items())
	}
}

func TestInvalidTruncates(t *testing.T) {
	for _, tf := range []string{
		"rotate(30 10)",
		"spin(30)",
		"matrix(1 2 3)",
		"translate(1",
	} {
		tok, bag := newTokenizer(t, "translate(5) "+tf)
		toks := drain(t, tok)
		if len(toks) != 1 {
			t.Errorf("%q: got %d tokens, want just the leading translate", tf, len(toks))
		}
		if bag.Len() != 1 || bag.Items()[0].Code != diag.TransformInvalid {
			t.Errorf("%q: diagnostics = %+v, want one TransformInvalid", tf, bag.Items())
		}
		for i := 0; i < 3; i++ {
			if tk := tok.Next(); tk.Kind != tftok.EndOfStream {
				t.Fatalf("%q: call %d after truncation: %+v", tf, i, tk)
			}
		}
	}
}
