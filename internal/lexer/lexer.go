package lexer

import (
	"errors"

	"shunt/internal/diag"
	"shunt/internal/token"
)

// state of the scanner between characters.
type state uint8

const (
	stateStart state = iota
	stateInNumber
	stateAfterOperator
	stateAfterOpen  // буфер держит '('
	stateAfterClose // буфер держит ')'
	numStates
)

// action taken for one input character.
type action uint8

const (
	// actReject aborts the scan with an invalid-character error.
	actReject action = iota
	// actExtend appends the character to the current lexeme.
	actExtend
	// actFlush closes the current lexeme (if any) as a token and starts a
	// new lexeme with the character.
	actFlush
)

type rule struct {
	act  action
	next state
}

// transitions is the single dispatch table for the whole scanner, keyed by
// (state, character class). Missing transitions reject the character; the
// scanner never drops input silently.
//
// Unary minus is resolved here: a '-' at the start of the expression, after
// an operator, or after '(' begins a number lexeme and is folded into the
// literal. After a number or ')' it starts an operator lexeme.
var transitions = [numStates][numClasses]rule{
	stateStart: {
		classDigit: {actFlush, stateInNumber},
		classMinus: {actFlush, stateInNumber},
		classOpen:  {actFlush, stateAfterOpen},
	},
	stateInNumber: {
		classDigit:    {actExtend, stateInNumber},
		classDot:      {actExtend, stateInNumber},
		classMinus:    {actFlush, stateAfterOperator},
		classOperator: {actFlush, stateAfterOperator},
		classOpen:     {actFlush, stateAfterOpen},
		classClose:    {actFlush, stateAfterClose},
	},
	stateAfterOperator: {
		classDigit:    {actFlush, stateInNumber},
		classMinus:    {actFlush, stateInNumber},
		classOperator: {actFlush, stateAfterOperator},
		classOpen:     {actFlush, stateAfterOpen},
		classClose:    {actFlush, stateAfterClose},
	},
	stateAfterOpen: {
		classDigit:    {actFlush, stateInNumber},
		classMinus:    {actFlush, stateInNumber},
		classOperator: {actFlush, stateAfterOperator},
		classOpen:     {actFlush, stateAfterOpen},
		classClose:    {actFlush, stateAfterClose},
	},
	stateAfterClose: {
		classDigit:    {actFlush, stateInNumber},
		classMinus:    {actFlush, stateAfterOperator},
		classOperator: {actFlush, stateAfterOperator},
		classOpen:     {actFlush, stateAfterOpen},
		classClose:    {actFlush, stateAfterClose},
	},
}

// Tokenize scans an infix arithmetic expression into its token stream in
// source order. The scan is a single left-to-right pass; the first error
// aborts it. Whitespace is rejected like any other unrecognized character:
// the expression grammar has no spaces.
func Tokenize(expr string) ([]token.Token, error) {
	out := make([]token.Token, 0, len(expr))
	st := stateStart
	start := 0 // начало текущей лексемы в expr

	for i, r := range expr {
		cl := classify(r)
		if cl == classOther {
			return nil, diag.ErrInvalidChar(r, i)
		}
		tr := transitions[st][cl]
		switch tr.act {
		case actReject:
			return nil, diag.ErrInvalidChar(r, i)
		case actFlush:
			if st != stateStart {
				tok, err := emit(expr[start:i], start)
				if err != nil {
					return nil, err
				}
				out = append(out, tok)
			}
			start = i
		case actExtend:
			// лексема продолжается
		}
		st = tr.next
	}

	// хвост: незакрытая числовая или скобочная лексема сбрасывается,
	// всё остальное — неожиданный конец ввода
	switch st {
	case stateInNumber, stateAfterOpen, stateAfterClose:
		tok, err := emit(expr[start:], start)
		if err != nil {
			return nil, err
		}
		return append(out, tok), nil
	default:
		return nil, diag.ErrUnexpectedEnd()
	}
}

// emit constructs a token from a completed lexeme, stamping the lexeme's
// byte offset into any construction error.
func emit(lexeme string, offset int) (token.Token, error) {
	tok, err := token.New(lexeme)
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) {
			de.Offset = offset
		}
		return token.Token{}, err
	}
	return tok, nil
}
