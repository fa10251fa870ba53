// Package eval evaluates postfix token streams and exposes the full
// expression pipeline behind a single entry point.
package eval

import (
	"math"

	"shunt/internal/diag"
	"shunt/internal/lexer"
	"shunt/internal/postfix"
	"shunt/internal/token"
)

// Evaluate runs the whole pipeline on an infix expression: lexing,
// conversion to postfix order, and stack evaluation. Each call is a pure
// function of its input; concurrent calls are safe. The first error aborts
// the pipeline, there are no partial results.
func Evaluate(expr string) (float64, error) {
	tokens, err := lexer.Tokenize(expr)
	if err != nil {
		return 0, err
	}
	rpn, err := postfix.Convert(tokens)
	if err != nil {
		return 0, err
	}
	return Run(rpn)
}

// Run evaluates a postfix token stream with a single numeric stack.
// Arithmetic follows IEEE-754: division by zero yields ±Inf or NaN and is
// not an error; exponentiation is math.Pow with its usual NaN domains.
func Run(rpn []token.Token) (float64, error) {
	stack := make([]float64, 0, len(rpn))
	for _, t := range rpn {
		if t.Kind == token.Number {
			stack = append(stack, t.Value)
			continue
		}
		if !t.IsOperator() {
			// скобки сюда не доходят — конвертер их отбрасывает
			return 0, diag.ErrMalformedExpression()
		}
		if len(stack) < 2 {
			return 0, diag.ErrInsufficientOperands(t.Kind.Symbol())
		}
		r := stack[len(stack)-1]
		l := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var v float64
		switch t.Kind {
		case token.Plus:
			v = l + r
		case token.Minus:
			v = l - r
		case token.Multiply:
			v = l * r
		case token.Divide:
			v = l / r
		case token.Power:
			v = math.Pow(l, r)
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		return 0, diag.ErrMalformedExpression()
	}
	return stack[0], nil
}
