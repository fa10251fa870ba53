package postfix

import (
	"shunt/internal/diag"
	"shunt/internal/token"
)

// Convert reorders an infix token stream into postfix (reverse Polish) order
// with the shunting-yard algorithm. Pure and deterministic; the input slice
// is not modified.
//
// Unary minus needs no handling here: the lexer already folded it into the
// signed Number literal, so the tie-break is precedence plus associativity
// only.
func Convert(tokens []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(tokens))
	stack := make([]token.Token, 0, len(tokens)) // стек операторов

	for _, t := range tokens {
		switch {
		case t.Kind == token.Number:
			output = append(output, t)

		case t.Kind == token.OpeningParen:
			stack = append(stack, t)

		case t.Kind == token.ClosingParen:
			// выталкиваем операторы до парной '('; её саму отбрасываем
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == token.OpeningParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, diag.ErrUnmatchedClosingParen()
			}

		case t.IsOperator():
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == token.OpeningParen {
					break
				}
				if top.Precedence > t.Precedence ||
					(top.Precedence == t.Precedence && top.Assoc == token.Left) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)
		}
	}

	// слив стека; оставшаяся '(' означает незакрытую скобку
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsParen() {
			return nil, diag.ErrUnmatchedOpeningParen()
		}
		output = append(output, top)
	}
	return output, nil
}
