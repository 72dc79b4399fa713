package lexer

import "fmt"

type Position struct {
	Column int
	Offset int
}

// Returns a string representation of the Position
func (p Position) String() string {
	return fmt.Sprintf("%d, %d", p.Column, p.Offset)
}

// Creates a new Position instance
func NewPosition(offset int) Position {
	return Position{
		Column: offset + 1,
		Offset: offset,
	}
}
