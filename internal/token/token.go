package token

import (
	"regexp"
	"strconv"

	"shunt/internal/diag"
)

// Token is a single immutable expression token. Precedence and Assoc are
// derived from Kind at construction and never change afterwards.
type Token struct {
	Kind       Kind
	Value      float64 // значимо только для Kind == Number
	Precedence uint8
	Assoc      Assoc
}

// numberPattern matches an optional leading minus, one or more digits, and an
// optional '.' followed by zero or more digits: "2", "-2", "3.", "3.14".
var numberPattern = regexp.MustCompile(`^-?[0-9]+\.?[0-9]*$`)

// New constructs a token from one lexeme as delimited by the lexer: a single
// operator or parenthesis character, or a maximal run of digits with an
// optional leading minus and decimal point.
func New(lexeme string) (Token, error) {
	switch lexeme {
	case "+":
		return Token{Kind: Plus, Precedence: 2, Assoc: Left}, nil
	case "-":
		return Token{Kind: Minus, Precedence: 2, Assoc: Left}, nil
	case "*":
		return Token{Kind: Multiply, Precedence: 3, Assoc: Left}, nil
	case "/":
		return Token{Kind: Divide, Precedence: 3, Assoc: Left}, nil
	case "^":
		return Token{Kind: Power, Precedence: 4, Assoc: Right}, nil
	case "(":
		return Token{Kind: OpeningParen, Assoc: Right}, nil
	case ")":
		return Token{Kind: ClosingParen, Assoc: Right}, nil
	}
	if numberPattern.MatchString(lexeme) {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			// шаблон совпал, но парсер отказал — фатально, без повторов
			return Token{}, diag.ErrInvalidLexeme(lexeme)
		}
		return Token{Kind: Number, Value: value, Assoc: Right}, nil
	}
	return Token{}, diag.ErrInvalidLexeme(lexeme)
}

// IsOperator reports whether the token is a binary arithmetic operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Multiply, Divide, Power:
		return true
	default:
		return false
	}
}

// IsParen reports whether the token is a parenthesis.
func (t Token) IsParen() bool {
	return t.Kind == OpeningParen || t.Kind == ClosingParen
}
