package lexer

import (
	"fmt"
)

type TokenType int

type Token struct {
	Type   TokenType // Type of the token
	Lexeme string    // Actual string from source line
	Pos    Position  // Position in source line
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, pos Position) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

const (
	EOF TokenType = iota // End of line

	ID  // id (identifier)
	NUM // num (number)

	ASSIGN // =
	PLUS   // +
	MINUS  // -
	MULT   // *
	DIV    // /
	LT     // <
	GT     // >
	LE     // <=
	GE     // >=
	NE     // <>

	COMMA  // ,
	LPAREN // (
	RPAREN // )

	ILLEGAL // illegal token
)

var tokenNames = map[TokenType]string{
	ASSIGN: "=",
	PLUS:   "+",
	MINUS:  "-",
	MULT:   "*",
	DIV:    "/",
	LT:     "<",
	GT:     ">",
	LE:     "<=",
	GE:     ">=",
	NE:     "<>",
	COMMA:  ",",
	LPAREN: "(",
	RPAREN: ")",
	ID:     "id",
	NUM:    "num",
	EOF:    "$",
}

// String returns a string representation of the Token
func (t Token) String() string {
	return fmt.Sprintf("T_{%s, %q, %s}", t.Type, t.Lexeme, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// IsComparison reports whether the token type is one of the relational operators
// accepted between the two sides of an IF condition.
func (t TokenType) IsComparison() bool {
	switch t {
	case ASSIGN, LT, GT, LE, GE, NE:
		return true
	default:
		return false
	}
}
