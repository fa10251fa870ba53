// Package token defines the lexical tokens of arithmetic expressions.
// Invariants:
//   - Precedence and Assoc are functions of Kind, fixed at construction:
//     Plus/Minus = 2, Multiply/Divide = 3, Power = 4, everything else 0.
//   - Value is meaningful only for Number tokens and is 0 otherwise.
//   - Numbers and parentheses carry Right associativity by convention; it is
//     never inspected for them.
//   - Tokens are created only by the lexer and never outlive one evaluation.
package token
