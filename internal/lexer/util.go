package lexer

// class of a single input character.
type class uint8

const (
	classDigit class = iota
	classDot
	classMinus
	classOperator // + * / ^
	classOpen
	classClose
	classOther
	numClasses
)

func classify(r rune) class {
	switch {
	case r >= '0' && r <= '9':
		return classDigit
	case r == '.':
		return classDot
	case r == '-':
		return classMinus
	case r == '+' || r == '*' || r == '/' || r == '^':
		return classOperator
	case r == '(':
		return classOpen
	case r == ')':
		return classClose
	}
	return classOther
}
