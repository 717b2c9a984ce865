package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"svgtok/internal/source"
	"svgtok/internal/svgnames"
	"svgtok/internal/token"
)

// TokenOutput is one structural token in serializable form. Name and
// Value are resolved to text; the spans stay as byte offsets.
type TokenOutput struct {
	Kind      string `json:"kind" msgpack:"kind"`
	Name      string `json:"name,omitempty" msgpack:"name,omitempty"`
	Value     string `json:"value,omitempty" msgpack:"value,omitempty"`
	Elem      string `json:"elem,omitempty" msgpack:"elem,omitempty"`
	Attr      string `json:"attr,omitempty" msgpack:"attr,omitempty"`
	End       string `json:"end,omitempty" msgpack:"end,omitempty"`
	StartByte uint32 `json:"start_byte" msgpack:"start_byte"`
	EndByte   uint32 `json:"end_byte" msgpack:"end_byte"`
}

func buildTokenOutput(tokens []token.Token, f *source.File) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:      tok.Kind.String(),
			Name:      tok.Name.Text(f),
			Value:     tok.Value.Text(f),
			StartByte: tok.Span.Start,
			EndByte:   tok.Span.End,
		}
		if tok.Elem != svgnames.ElemUnknown {
			out.Elem = tok.Elem.String()
		}
		if tok.Attr != svgnames.AttrUnknown {
			out.Attr = tok.Attr.String()
		}
		if tok.Kind == token.ElementEnd {
			out.End = tok.End.String()
		}
		output = append(output, out)
	}
	return output
}

// FormatTokensPretty writes one human-readable line per token.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		f := fs.Get(tok.Span.File)
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String())
		if tok.Kind == token.ElementEnd {
			fmt.Fprintf(w, " %s", tok.End)
		}
		if !tok.Name.Empty() {
			fmt.Fprintf(w, " %s", tok.Name.Text(f))
		}
		if !tok.Value.Empty() {
			fmt.Fprintf(w, " = %q", tok.Value.Text(f))
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON writes the tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, f *source.File) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTokenOutput(tokens, f))
}

// FormatTokensMsgpack writes the tokens as one msgpack array, the
// compact interchange format for downstream tooling.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, f *source.File) error {
	return msgpack.NewEncoder(w).Encode(buildTokenOutput(tokens, f))
}
