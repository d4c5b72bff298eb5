// Package parser reads console input: squares, moves and shell commands.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken   TokenType = iota
	WordToken            // run of letters and digits, e.g. "e2" or "quit"
	DashToken            // '-' between two squares
	ErrorToken           // any other character
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:   "EOF",
	WordToken:  "WORD",
	DashToken:  "DASH",
	ErrorToken: "ERROR",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if int(t) >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is one lexical unit of an input line.
type Token struct {
	Type   TokenType
	Text   string
	Column int // 1-based
}
