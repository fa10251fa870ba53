// Package diagfmt renders token streams and errors for the CLI. It owns all
// formatting; the core packages stay free of IO.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"shunt/internal/token"
)

// TokenOutput is the JSON shape of a single token.
type TokenOutput struct {
	Kind   string   `json:"kind"`
	Symbol string   `json:"symbol,omitempty"`
	Value  *float64 `json:"value,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String()); err != nil {
			return err
		}

		if tok.Kind == token.Number {
			if _, err := fmt.Fprintf(w, " %s", strconv.FormatFloat(tok.Value, 'g', -1, 64)); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, " %q", tok.Kind.Symbol()); err != nil {
				return err
			}
			if tok.IsOperator() {
				if _, err := fmt.Fprintf(w, " prec=%d assoc=%s", tok.Precedence, tok.Assoc); err != nil {
					return err
				}
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		out := TokenOutput{
			Kind:   tok.Kind.String(),
			Symbol: tok.Kind.Symbol(),
		}
		if tok.Kind == token.Number {
			value := tok.Value
			out.Value = &value
		}
		output = append(output, out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
