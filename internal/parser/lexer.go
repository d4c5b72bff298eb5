package parser

import "strings"

// Lexer tokenizes one line of console input.
// Input is lower-cased; everything after '#' is a comment.
type Lexer struct {
	line string
	pos  int
}

// Character classes
var (
	isSpace [256]bool
	isWord  [256]bool
)

func init() {
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		isSpace[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		isWord[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		isWord[c] = true
	}
}

// NewLexer creates a lexer for line.
func NewLexer(line string) *Lexer {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return &Lexer{line: strings.ToLower(line)}
}

// Next returns the next token, or an EOFToken at the end of the line.
func (l *Lexer) Next() Token {
	for l.pos < len(l.line) && isSpace[l.line[l.pos]] {
		l.pos++
	}
	if l.pos >= len(l.line) {
		return Token{Type: EOFToken, Column: l.pos + 1}
	}

	start := l.pos
	c := l.line[l.pos]
	switch {
	case c == '-':
		l.pos++
		return Token{Type: DashToken, Text: "-", Column: start + 1}
	case isWord[c]:
		for l.pos < len(l.line) && isWord[l.line[l.pos]] {
			l.pos++
		}
		return Token{Type: WordToken, Text: l.line[start:l.pos], Column: start + 1}
	}
	l.pos++
	return Token{Type: ErrorToken, Text: l.line[start:l.pos], Column: start + 1}
}

// Tokens returns every token up to, not including, EOF.
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		if tok.Type == EOFToken {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
