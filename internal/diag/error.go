package diag

import (
	"errors"
	"fmt"
)

// Error is a structured evaluation error. The offending character or lexeme
// is carried as data, so no message needs to be allocated up front and the
// caller can match on Code instead of parsing strings.
type Error struct {
	Code   Code
	Offset int    // байтовое смещение в исходном выражении, -1 если неизвестно
	Char   rune   // нарушивший символ (LexInvalidChar)
	Lexeme string // накопленная лексема, если была
}

func (e *Error) Error() string {
	switch e.Code {
	case LexInvalidChar:
		return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
	case LexInvalidLexeme:
		return fmt.Sprintf("invalid lexeme %q", e.Lexeme)
	case LexUnexpectedEnd:
		return "unexpected end of expression"
	case ConvUnmatchedClosingParen:
		return "unmatched closing parenthesis"
	case ConvUnmatchedOpeningParen:
		return "unmatched opening parenthesis"
	case EvalInsufficientOperands:
		return fmt.Sprintf("insufficient operands for operator %q", e.Lexeme)
	case EvalMalformedExpression:
		return "malformed expression"
	}
	return e.Code.Title()
}

// Is makes errors.Is match two *Error values by code alone, so callers can
// compare against a code-only template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf extracts the diagnostic code from err.
// Returns UnknownCode when err carries no *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return UnknownCode
}

// ErrInvalidChar reports a character with no lexical meaning at the given
// byte offset.
func ErrInvalidChar(ch rune, offset int) *Error {
	return &Error{Code: LexInvalidChar, Offset: offset, Char: ch}
}

// ErrInvalidLexeme reports a buffered run of characters that matches no token
// grammar, e.g. "1.2.3".
func ErrInvalidLexeme(lexeme string) *Error {
	return &Error{Code: LexInvalidLexeme, Offset: -1, Lexeme: lexeme}
}

// ErrUnexpectedEnd reports input that ended mid-lexeme or before any token.
func ErrUnexpectedEnd() *Error {
	return &Error{Code: LexUnexpectedEnd, Offset: -1}
}

// ErrUnmatchedClosingParen reports a ')' with no matching '('.
func ErrUnmatchedClosingParen() *Error {
	return &Error{Code: ConvUnmatchedClosingParen, Offset: -1}
}

// ErrUnmatchedOpeningParen reports a '(' left open at the end of conversion.
func ErrUnmatchedOpeningParen() *Error {
	return &Error{Code: ConvUnmatchedOpeningParen, Offset: -1}
}

// ErrInsufficientOperands reports an operator that found fewer than two
// operands on the evaluation stack.
func ErrInsufficientOperands(operator string) *Error {
	return &Error{Code: EvalInsufficientOperands, Offset: -1, Lexeme: operator}
}

// ErrMalformedExpression reports a final evaluation stack of size other
// than one.
func ErrMalformedExpression() *Error {
	return &Error{Code: EvalMalformedExpression, Offset: -1}
}
