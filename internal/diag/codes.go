package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInvalidChar   Code = 1001
	LexInvalidLexeme Code = 1002
	LexUnexpectedEnd Code = 1003

	// Конвертация в постфиксную запись
	ConvUnmatchedClosingParen Code = 2001
	ConvUnmatchedOpeningParen Code = 2002

	// Вычисление
	EvalInsufficientOperands Code = 3001
	EvalMalformedExpression  Code = 3002
)

var codeDescription = map[Code]string{
	UnknownCode:               "unknown error",
	LexInvalidChar:            "invalid character",
	LexInvalidLexeme:          "invalid lexeme",
	LexUnexpectedEnd:          "unexpected end of expression",
	ConvUnmatchedClosingParen: "unmatched closing parenthesis",
	ConvUnmatchedOpeningParen: "unmatched opening parenthesis",
	EvalInsufficientOperands:  "insufficient operands for operator",
	EvalMalformedExpression:   "malformed expression",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CNV%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
