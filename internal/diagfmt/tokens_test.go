package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"shunt/internal/diagfmt"
	"shunt/internal/lexer"
)

func TestFormatTokensPretty(t *testing.T) {
	tokens, err := lexer.Tokenize("2+3*4")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}

	out := buf.String()
	for _, fragment := range []string{"Number", "Plus", "Multiply", "prec=2", "prec=3", "assoc=Left"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("pretty output missing %q:\n%s", fragment, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != len(tokens) {
		t.Errorf("expected %d lines, got %d", len(tokens), lines)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens, err := lexer.Tokenize("2^-2")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}

	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(decoded))
	}
	if decoded[0].Kind != "Number" || decoded[0].Value == nil || *decoded[0].Value != 2 {
		t.Errorf("first token corrupted: %+v", decoded[0])
	}
	if decoded[1].Kind != "Power" || decoded[1].Symbol != "^" || decoded[1].Value != nil {
		t.Errorf("second token corrupted: %+v", decoded[1])
	}
	if decoded[2].Value == nil || *decoded[2].Value != -2 {
		t.Errorf("third token corrupted: %+v", decoded[2])
	}
}
