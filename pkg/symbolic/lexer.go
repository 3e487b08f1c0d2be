package symbolic

import (
	"github.com/numina-labs/numina/pkg/token"
)

// Lexer tokenizes expression input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		tok = l.newToken(token.MINUS, "-")
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '^':
		tok = l.newToken(token.CARET, "^")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '.':
		if isDigit(l.peekChar()) {
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			tok.Pos = pos
			return tok
		}
		tok = l.newToken(token.ILLEGAL, ".")
	default:
		switch {
		case isLetter(l.ch):
			tok.Type = token.IDENT
			tok.Literal = l.readIdentifier()
			tok.Pos = pos
			return tok
		case isDigit(l.ch):
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			tok.Pos = pos
			return tok
		default:
			tok = l.newToken(token.ILLEGAL, string(l.ch))
		}
	}

	l.readChar()
	return tok
}

// newToken creates a single-character token and leaves the lexer positioned
// on that character (NextToken advances past it).
func (l *Lexer) newToken(t token.Type, literal string) token.Token {
	return token.Token{Type: t, Literal: literal, Pos: l.currentPos()}
}

// skipWhitespace advances past spaces, tabs, and newlines.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads letters, digits, and underscores starting at a letter.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a decimal literal: digits, one optional fraction, and an
// optional exponent. A leading '.' is allowed.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		if next := l.peekChar(); isDigit(next) || next == '+' || next == '-' {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
