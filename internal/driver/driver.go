// Package driver orchestrates the expression pipeline for the CLI commands:
// single evaluations with output formatting, token/postfix stream inspection,
// and concurrent batch evaluation of expression files.
package driver

import (
	"strconv"

	"shunt/internal/eval"
	"shunt/internal/lexer"
	"shunt/internal/postfix"
	"shunt/internal/token"
)

// EvalResult содержит результат вычисления одного выражения
type EvalResult struct {
	Expression string
	Value      float64
}

// StreamResult содержит поток токенов одного выражения
type StreamResult struct {
	Expression string
	Tokens     []token.Token
}

// EvalExpr evaluates a single infix expression.
func EvalExpr(expr string) (EvalResult, error) {
	value, err := eval.Evaluate(expr)
	if err != nil {
		return EvalResult{}, err
	}
	return EvalResult{Expression: expr, Value: value}, nil
}

// TokenizeExpr lexes an expression and returns its infix token stream.
func TokenizeExpr(expr string) (StreamResult, error) {
	tokens, err := lexer.Tokenize(expr)
	if err != nil {
		return StreamResult{}, err
	}
	return StreamResult{Expression: expr, Tokens: tokens}, nil
}

// PostfixExpr lexes and converts an expression, returning the postfix stream.
func PostfixExpr(expr string) (StreamResult, error) {
	tokens, err := lexer.Tokenize(expr)
	if err != nil {
		return StreamResult{}, err
	}
	rpn, err := postfix.Convert(tokens)
	if err != nil {
		return StreamResult{}, err
	}
	return StreamResult{Expression: expr, Tokens: rpn}, nil
}

// FormatValue renders a result for display. precision < 0 selects the
// shortest representation that round-trips.
func FormatValue(value float64, precision int) string {
	return strconv.FormatFloat(value, 'g', precision, 64)
}
