package lexer

import (
	"strconv"
)

// Lexer is the cursor over a single BASIC line. Statements are parsed and
// executed in the same pass, so the cursor is consumed on demand instead of
// being turned into a token list up front.
type Lexer struct {
	input    string // input line to be tokenized
	length   int    // length of the input line
	position int    // current position in the input line
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// End of input
	if l.position >= l.length {
		return NewToken(EOF, "", l.currentPosition())
	}

	pos := l.currentPosition()
	tokenType, lexeme, matched := MatchToken(l.input[l.position:])
	if !matched || tokenType == EOF {
		l.advance(1)
		return NewToken(ILLEGAL, lexeme, pos)
	}

	l.advance(len(lexeme))
	return NewToken(tokenType, lexeme, pos)
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	cpos := l.position
	token := l.NextToken()
	l.position = cpos

	return token
}

// Keyword consumes word when it is the next thing on the line and is followed
// by whitespace or the end of the line. Matching is case-insensitive.
func (l *Lexer) Keyword(word string) bool {
	l.skipWhitespace()

	n, ok := MatchKeyword(l.input[l.position:], word)
	if !ok {
		return false
	}

	l.advance(n)
	return true
}

// LineNumber consumes an unsigned decimal integer. It reports false when the
// cursor is not on a digit. Values that overflow int are reported as -1 so the
// caller's range check rejects them.
func (l *Lexer) LineNumber() (int, bool) {
	l.skipWhitespace()

	lexeme := lineNumberRegex.FindString(l.input[l.position:])
	if lexeme == "" {
		return 0, false
	}

	l.advance(len(lexeme))
	n, err := strconv.Atoi(lexeme)
	if err != nil {
		return -1, true
	}

	return n, true
}

// StartsWithDigit reports whether the next non-blank character is a decimal digit
func (l *Lexer) StartsWithDigit() bool {
	l.skipWhitespace()
	return l.position < l.length && isDigit(l.input[l.position])
}

// Rest returns the unconsumed remainder of the line after leading whitespace
func (l *Lexer) Rest() string {
	l.skipWhitespace()
	return l.input[l.position:]
}

// Discard moves the cursor to the end of the line
func (l *Lexer) Discard() {
	l.position = l.length
}

// Check if there are more non-blank characters to read
func (l *Lexer) HasMore() bool {
	l.skipWhitespace()
	return l.position < l.length
}

// Position returns the current cursor position
func (l *Lexer) Position() Position {
	return l.currentPosition()
}

// Save returns a mark that Restore can rewind the cursor to
func (l *Lexer) Save() int {
	return l.position
}

// Restore rewinds the cursor to a mark returned by Save
func (l *Lexer) Restore(mark int) {
	if mark >= 0 && mark <= l.length {
		l.position = mark
	}
}

// Skip whitespace
func (l *Lexer) skipWhitespace() {
	if l.position >= l.length {
		return
	}

	if match := whitespaceRegex.FindString(l.input[l.position:]); match != "" {
		l.position += len(match)
	}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	l.position += n
	if l.position > l.length {
		l.position = l.length
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return NewPosition(l.position)
}
