package lexer_test

import (
	"errors"
	"testing"

	"shunt/internal/diag"
	"shunt/internal/lexer"
	"shunt/internal/token"
)

// expectKinds проверяет последовательность видов токенов
func expectKinds(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q): unexpected error: %v", input, err)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("Tokenize(%q): expected %d tokens, got %d (%v)",
			input, len(expected), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Tokenize(%q): token %d: expected %v, got %v",
				input, i, expected[i], tok.Kind)
		}
	}
	return tokens
}

// expectError проверяет, что вход отклоняется с нужным кодом
func expectError(t *testing.T, input string, code diag.Code) *diag.Error {
	t.Helper()
	_, err := lexer.Tokenize(input)
	if err == nil {
		t.Fatalf("Tokenize(%q): expected error, got none", input)
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("Tokenize(%q): expected *diag.Error, got %T", input, err)
	}
	if de.Code != code {
		t.Errorf("Tokenize(%q): expected code %v, got %v", input, code, de.Code)
	}
	return de
}

func TestTokenizeSimple(t *testing.T) {
	tokens := expectKinds(t, "2+3", []token.Kind{token.Number, token.Plus, token.Number})
	if tokens[0].Value != 2 || tokens[2].Value != 3 {
		t.Errorf("Tokenize(2+3): wrong values: %v, %v", tokens[0].Value, tokens[2].Value)
	}

	expectKinds(t, "2+3*4", []token.Kind{
		token.Number, token.Plus, token.Number, token.Multiply, token.Number,
	})
	expectKinds(t, "18/3/2", []token.Kind{
		token.Number, token.Divide, token.Number, token.Divide, token.Number,
	})
	expectKinds(t, "2^2^3", []token.Kind{
		token.Number, token.Power, token.Number, token.Power, token.Number,
	})
}

func TestTokenizeSingleNumber(t *testing.T) {
	tokens := expectKinds(t, "42", []token.Kind{token.Number})
	if tokens[0].Value != 42 {
		t.Errorf("expected value 42, got %v", tokens[0].Value)
	}

	tokens = expectKinds(t, "-5", []token.Kind{token.Number})
	if tokens[0].Value != -5 {
		t.Errorf("expected value -5, got %v", tokens[0].Value)
	}

	tokens = expectKinds(t, "3.14", []token.Kind{token.Number})
	if tokens[0].Value != 3.14 {
		t.Errorf("expected value 3.14, got %v", tokens[0].Value)
	}
}

func TestTokenizeUnaryMinus(t *testing.T) {
	// минус после оператора уходит в литерал
	tokens := expectKinds(t, "6--2", []token.Kind{token.Number, token.Minus, token.Number})
	if tokens[2].Value != -2 {
		t.Errorf("Tokenize(6--2): expected trailing -2, got %v", tokens[2].Value)
	}

	tokens = expectKinds(t, "4*-2", []token.Kind{token.Number, token.Multiply, token.Number})
	if tokens[2].Value != -2 {
		t.Errorf("Tokenize(4*-2): expected trailing -2, got %v", tokens[2].Value)
	}

	expectKinds(t, "2^-2", []token.Kind{token.Number, token.Power, token.Number})

	// минус после открывающей скобки — тоже унарный
	tokens = expectKinds(t, "(-2+3)", []token.Kind{
		token.OpeningParen, token.Number, token.Plus, token.Number, token.ClosingParen,
	})
	if tokens[1].Value != -2 {
		t.Errorf("Tokenize((-2+3)): expected -2, got %v", tokens[1].Value)
	}

	// а после закрывающей — бинарный
	expectKinds(t, "(2+3)-4", []token.Kind{
		token.OpeningParen, token.Number, token.Plus, token.Number,
		token.ClosingParen, token.Minus, token.Number,
	})

	// минус после числа — бинарный
	expectKinds(t, "4-7-9", []token.Kind{
		token.Number, token.Minus, token.Number, token.Minus, token.Number,
	})
}

func TestTokenizeParens(t *testing.T) {
	expectKinds(t, "2*(12+6)", []token.Kind{
		token.Number, token.Multiply, token.OpeningParen,
		token.Number, token.Plus, token.Number, token.ClosingParen,
	})
	expectKinds(t, "(12+(3-(2*2)))", []token.Kind{
		token.OpeningParen, token.Number, token.Plus, token.OpeningParen,
		token.Number, token.Minus, token.OpeningParen, token.Number,
		token.Multiply, token.Number, token.ClosingParen, token.ClosingParen,
		token.ClosingParen,
	})

	// дисбаланс скобок — дело конвертера, лексер отдаёт поток как есть
	expectKinds(t, "(1+2", []token.Kind{
		token.OpeningParen, token.Number, token.Plus, token.Number,
	})
	expectKinds(t, "1+2)", []token.Kind{
		token.Number, token.Plus, token.Number, token.ClosingParen,
	})
}

func TestTokenizeConsecutiveOperators(t *testing.T) {
	// лексически допустимо; недостаток операндов ловит вычислитель
	expectKinds(t, "2+*3", []token.Kind{
		token.Number, token.Plus, token.Multiply, token.Number,
	})
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	de := expectError(t, "abc", diag.LexInvalidChar)
	if de.Char != 'a' || de.Offset != 0 {
		t.Errorf("expected 'a' at 0, got %q at %d", de.Char, de.Offset)
	}

	de = expectError(t, "12a", diag.LexInvalidChar)
	if de.Char != 'a' || de.Offset != 2 {
		t.Errorf("expected 'a' at 2, got %q at %d", de.Char, de.Offset)
	}

	expectError(t, "2+x", diag.LexInvalidChar)
	expectError(t, "%", diag.LexInvalidChar)

	// пробелы грамматика не признаёт
	de = expectError(t, "1 + 2", diag.LexInvalidChar)
	if de.Char != ' ' || de.Offset != 1 {
		t.Errorf("expected ' ' at 1, got %q at %d", de.Char, de.Offset)
	}
}

func TestTokenizeRejectedTransitions(t *testing.T) {
	// точка не начинает число
	expectError(t, ".5", diag.LexInvalidChar)
	expectError(t, "2+.5", diag.LexInvalidChar)
	// оператор не начинает выражение
	expectError(t, "*2", diag.LexInvalidChar)
	expectError(t, ")1+2", diag.LexInvalidChar)
}

func TestTokenizeUnexpectedEnd(t *testing.T) {
	expectError(t, "", diag.LexUnexpectedEnd)
	expectError(t, "2+", diag.LexUnexpectedEnd)
	expectError(t, "2*", diag.LexUnexpectedEnd)
}

func TestTokenizeInvalidLexeme(t *testing.T) {
	de := expectError(t, "1.2.3", diag.LexInvalidLexeme)
	if de.Lexeme != "1.2.3" {
		t.Errorf("expected lexeme \"1.2.3\", got %q", de.Lexeme)
	}

	de = expectError(t, "2+1.2.3", diag.LexInvalidLexeme)
	if de.Lexeme != "1.2.3" || de.Offset != 2 {
		t.Errorf("expected \"1.2.3\" at 2, got %q at %d", de.Lexeme, de.Offset)
	}
}

// структурное свойство: порядок видов в потоке соответствует порядку
// операторов и чисел в исходном тексте
func TestTokenizeStructuralRoundTrip(t *testing.T) {
	inputs := []string{"2+3*4", "2*(12+6)", "6--2", "4-7-9", "2^2^3"}
	for _, input := range inputs {
		tokens, err := lexer.Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", input, err)
		}
		rebuilt := ""
		for _, tok := range tokens {
			if tok.Kind == token.Number {
				rebuilt += "N"
			} else {
				rebuilt += tok.Kind.Symbol()
			}
		}
		expected := ""
		inNumber := false
		for i := 0; i < len(input); i++ {
			c := input[i]
			isNumberChar := c >= '0' && c <= '9' || c == '.' ||
				(c == '-' && !inNumber && (i == 0 || input[i-1] == '(' ||
					input[i-1] == '+' || input[i-1] == '-' || input[i-1] == '*' ||
					input[i-1] == '/' || input[i-1] == '^'))
			if isNumberChar {
				if !inNumber {
					expected += "N"
					inNumber = true
				}
				continue
			}
			inNumber = false
			expected += string(c)
		}
		if rebuilt != expected {
			t.Errorf("Tokenize(%q): structure %q, expected %q", input, rebuilt, expected)
		}
	}
}
