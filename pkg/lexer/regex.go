package lexer

import (
	"regexp"
	"strings"
)

// Token regex patterns
var tokenRegexes = map[TokenType]*regexp.Regexp{
	LE: regexp.MustCompile(`^<=`),
	GE: regexp.MustCompile(`^>=`),
	NE: regexp.MustCompile(`^<>`),

	ASSIGN: regexp.MustCompile(`^=`),
	PLUS:   regexp.MustCompile(`^\+`),
	MINUS:  regexp.MustCompile(`^-`),
	MULT:   regexp.MustCompile(`^\*`),
	DIV:    regexp.MustCompile(`^/`),
	LT:     regexp.MustCompile(`^<`),
	GT:     regexp.MustCompile(`^>`),

	COMMA:  regexp.MustCompile(`^,`),
	LPAREN: regexp.MustCompile(`^\(`),
	RPAREN: regexp.MustCompile(`^\)`),

	NUM: regexp.MustCompile(`^(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`),
	ID:  regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`),
}

var (
	whitespaceRegex = regexp.MustCompile(`^\s+`)
	lineNumberRegex = regexp.MustCompile(`^\d+`)
	identRegex      = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Token precedence order for matching (longer patterns first)
var tokenPrecedenceOrder = []TokenType{
	LE, GE, NE, ASSIGN, PLUS, MINUS, MULT, DIV, LT, GT,
	COMMA, LPAREN, RPAREN, NUM, ID,
}

// Keywords recognised by the statement engine and the line dispatcher.
var Keywords = []string{
	"PRINT", "GOTO", "GOSUB", "IF", "THEN", "FOR", "TO", "STEP",
	"NEXT", "RETURN", "END", "LIST", "RUN", "NEW",
}

// keyword patterns are case-insensitive and must be followed by whitespace
// or the end of the line, so FORM never matches FOR
var keywordRegexes = map[string]*regexp.Regexp{}

func init() {
	for _, kw := range Keywords {
		keywordRegexes[kw] = keywordPattern(kw)
	}
}

func keywordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`^(?i)` + regexp.QuoteMeta(word) + `(?:\s|$)`)
}

// Match the longest token at the start of the string
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}

// MatchKeyword reports whether s starts with word (case-insensitive) followed by
// whitespace or the end of s. The returned length covers the word only.
func MatchKeyword(s, word string) (int, bool) {
	regex, ok := keywordRegexes[strings.ToUpper(word)]
	if !ok {
		regex = keywordPattern(strings.ToUpper(word))
	}

	// (?i) folds some non-ASCII runes onto ASCII letters; the byte check keeps
	// the returned length honest
	if !regex.MatchString(s) || len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
		return 0, false
	}

	return len(word), true
}

// IsIdentifier reports whether name is a valid variable or function name
func IsIdentifier(name string) bool {
	return identRegex.MatchString(name)
}

// Check if a byte is a digit
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
