package calc

import (
	"github.com/numina-labs/numina/pkg/token"
)

// Scanner tokenizes calculator input. It is deliberately separate from the
// symbolic-expression lexer: the calculator grammar carries extra tokens
// (assignment, commas, modulo) that the tree parser never sees.
type Scanner struct {
	input   string
	pos     int
	readPos int
	ch      byte
	line    int
	col     int
}

// NewScanner creates a Scanner for the given input.
func NewScanner(input string) *Scanner {
	s := &Scanner{
		input: input,
		line:  1,
		col:   0,
	}
	s.readChar()
	return s
}

func (s *Scanner) readChar() {
	if s.readPos >= len(s.input) {
		s.ch = 0
	} else {
		s.ch = s.input[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++

	if s.ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
}

func (s *Scanner) peekChar() byte {
	if s.readPos >= len(s.input) {
		return 0
	}
	return s.input[s.readPos]
}

func (s *Scanner) currentPos() token.Position {
	return token.Position{
		Line:   s.line,
		Column: s.col,
		Offset: s.pos,
	}
}

// Next returns the next token.
func (s *Scanner) Next() token.Token {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.readChar()
	}

	pos := s.currentPos()
	var tok token.Token
	tok.Pos = pos

	switch s.ch {
	case 0:
		tok.Type = token.EOF
	case '+':
		tok.Type, tok.Literal = token.PLUS, "+"
	case '-':
		tok.Type, tok.Literal = token.MINUS, "-"
	case '*':
		tok.Type, tok.Literal = token.STAR, "*"
	case '/':
		tok.Type, tok.Literal = token.SLASH, "/"
	case '%':
		tok.Type, tok.Literal = token.PERCENT, "%"
	case '^':
		tok.Type, tok.Literal = token.CARET, "^"
	case '=':
		tok.Type, tok.Literal = token.ASSIGN, "="
	case ',':
		tok.Type, tok.Literal = token.COMMA, ","
	case '(':
		tok.Type, tok.Literal = token.LPAREN, "("
	case ')':
		tok.Type, tok.Literal = token.RPAREN, ")"
	case '.':
		if isDigit(s.peekChar()) {
			tok.Type = token.NUMBER
			tok.Literal = s.readNumber()
			return tok
		}
		tok.Type, tok.Literal = token.ILLEGAL, "."
	default:
		switch {
		case isLetter(s.ch):
			tok.Type = token.IDENT
			tok.Literal = s.readIdentifier()
			return tok
		case isDigit(s.ch):
			tok.Type = token.NUMBER
			tok.Literal = s.readNumber()
			return tok
		default:
			tok.Type, tok.Literal = token.ILLEGAL, string(s.ch)
		}
	}

	s.readChar()
	return tok
}

func (s *Scanner) readIdentifier() string {
	start := s.pos
	for isLetter(s.ch) || isDigit(s.ch) {
		s.readChar()
	}
	return s.input[start:s.pos]
}

func (s *Scanner) readNumber() string {
	start := s.pos
	for isDigit(s.ch) {
		s.readChar()
	}
	if s.ch == '.' {
		s.readChar()
		for isDigit(s.ch) {
			s.readChar()
		}
	}
	if s.ch == 'e' || s.ch == 'E' {
		if next := s.peekChar(); isDigit(next) || next == '+' || next == '-' {
			s.readChar()
			if s.ch == '+' || s.ch == '-' {
				s.readChar()
			}
			for isDigit(s.ch) {
				s.readChar()
			}
		}
	}
	return s.input[start:s.pos]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
