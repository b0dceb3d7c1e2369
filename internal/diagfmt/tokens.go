package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"tcad/internal/source"
	"tcad/internal/token"
)

// Tokens prints one token per line with its resolved position.
func Tokens(w io.Writer, toks []token.Token, fs *source.FileSet) {
	for _, t := range toks {
		start, _ := fs.Resolve(t.Span)
		if t.Text != "" {
			fmt.Fprintf(w, "%4d:%-4d %-12s %q\n", start.Line, start.Col, t.Kind, t.Text)
			continue
		}
		fmt.Fprintf(w, "%4d:%-4d %s\n", start.Line, start.Col, t.Kind)
	}
}

type tokenJSON struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
	Start uint32 `json:"start_byte"`
	End   uint32 `json:"end_byte"`
}

// TokensJSON prints the token stream as a JSON array.
func TokensJSON(w io.Writer, toks []token.Token, fs *source.FileSet) error {
	out := make([]tokenJSON, 0, len(toks))
	for _, t := range toks {
		start, _ := fs.Resolve(t.Span)
		out = append(out, tokenJSON{
			Kind:  t.Kind.String(),
			Text:  t.Text,
			Line:  start.Line,
			Col:   start.Col,
			Start: t.Span.Start,
			End:   t.Span.End,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
