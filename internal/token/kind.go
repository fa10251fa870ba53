package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Number represents a numeric literal token.
	Number
	// Plus represents the addition operator token.
	Plus // +
	// Minus represents the subtraction operator token.
	Minus // -
	// Multiply represents the multiplication operator token.
	Multiply // *
	// Divide represents the division operator token.
	Divide // /
	// Power represents the exponentiation operator token.
	Power // ^
	// OpeningParen represents the left parenthesis token.
	OpeningParen // (
	// ClosingParen represents the right parenthesis token.
	ClosingParen // )
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case Power:
		return "Power"
	case OpeningParen:
		return "OpeningParen"
	case ClosingParen:
		return "ClosingParen"
	}
	return "Invalid"
}

// Symbol returns the source character of an operator or parenthesis kind.
// Number and Invalid have no symbol.
func (k Kind) Symbol() string {
	switch k {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Power:
		return "^"
	case OpeningParen:
		return "("
	case ClosingParen:
		return ")"
	}
	return ""
}

// Assoc represents operator associativity.
type Assoc uint8

const (
	// Left associativity groups operators of equal precedence left to right.
	Left Assoc = iota
	// Right associativity groups operators of equal precedence right to left.
	Right
)

func (a Assoc) String() string {
	if a == Right {
		return "Right"
	}
	return "Left"
}
