package lexer

import "fmt"

type TokenType int

const (
	// Special
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENTIFIER // attribute or variable name
	NUMBER     // 123, 1.23

	// Operators & Punctuation
	PLUS        // +
	MINUS       // -
	ASTERISK    // *
	SLASH       // /
	PAREN_OPEN  // (
	PAREN_CLOSE // )
)

type Token struct {
	Type    TokenType
	Literal string
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q)", t.Type, t.Literal)
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	col := l.column

	var tok Token
	switch l.ch {
	case '+':
		tok = newToken(PLUS, l.ch, col)
	case '-':
		tok = newToken(MINUS, l.ch, col)
	case '*':
		tok = newToken(ASTERISK, l.ch, col)
	case '/':
		tok = newToken(SLASH, l.ch, col)
	case '(':
		tok = newToken(PAREN_OPEN, l.ch, col)
	case ')':
		tok = newToken(PAREN_CLOSE, l.ch, col)
	case 0:
		tok = Token{Type: EOF, Literal: "", Column: col}
	default:
		if isLetter(l.ch) {
			tok.Column = col
			tok.Literal = l.readIdentifier()
			tok.Type = IDENTIFIER
			return tok
		}
		if isDigit(l.ch) {
			tok.Column = col
			tok.Literal = l.readNumber()
			tok.Type = NUMBER
			return tok
		}
		tok = newToken(ILLEGAL, l.ch, col)
	}

	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

func newToken(tokenType TokenType, ch byte, column int) Token {
	return Token{Type: tokenType, Literal: string(ch), Column: column}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
