package symbolic

import (
	"fmt"
	"strconv"

	"github.com/numina-labs/numina/pkg/mathutil"
	"github.com/numina-labs/numina/pkg/token"
)

// DefaultMaxDepth bounds expression nesting so pathological input fails with
// a ParseError instead of exhausting the call stack.
const DefaultMaxDepth = 200

// Grammar (lowest to highest precedence):
//
//	expr   = term { ('+' | '-') term }
//	term   = power { ('*' | '/') power }
//	power  = factor [ '^' power ]
//	factor = NUMBER | constant | IDENT | '(' expr ')'
//
// '+', '-', '*', '/' are left-associative; '^' is right-associative and
// binds tighter than '*' and '/'. There are no unary operators. Identifiers
// naming a known constant (pi, e, ln2, ...) fold to Constant nodes during
// parsing and never survive as variables.

// Parser builds an expression tree from tokens.
type Parser struct {
	lexer    *Lexer
	token    token.Token // current token
	maxDepth int
	depth    int
}

// Parse parses input into an expression tree using DefaultMaxDepth.
func Parse(input string) (Expr, error) {
	return ParseWithLimit(input, DefaultMaxDepth)
}

// ParseWithLimit parses input, failing once nesting exceeds maxDepth.
// Trailing input after a complete expression is an error, never silently
// dropped.
func ParseWithLimit(input string, maxDepth int) (Expr, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &Parser{lexer: NewLexer(input), maxDepth: maxDepth}
	p.nextToken()

	if p.token.Type == token.EOF {
		return nil, &ParseError{Pos: p.token.Pos, Message: errEmptyInput}
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.token.Type != token.EOF {
		return nil, &ParseError{
			Pos:     p.token.Pos,
			Message: fmt.Sprintf(errTrailingInput, p.token.Literal),
		}
	}
	return expr, nil
}

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.lexer.NextToken()
}

// enter guards recursion depth; every call must be paired with leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &ParseError{
			Pos:     p.token.Pos,
			Message: fmt.Sprintf(errTooDeep, p.maxDepth),
		}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parseExpr parses addition and subtraction, left-associative.
func (p *Parser) parseExpr() (Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.token.Type == token.PLUS || p.token.Type == token.MINUS {
		op := OpAdd
		if p.token.Type == token.MINUS {
			op = OpSub
		}
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = NewBinary(op, left, right)
	}
	return left, nil
}

// parseTerm parses multiplication and division, left-associative.
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.token.Type == token.STAR || p.token.Type == token.SLASH {
		op := OpMul
		if p.token.Type == token.SLASH {
			op = OpDiv
		}
		p.nextToken()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = NewBinary(op, left, right)
	}
	return left, nil
}

// parsePower parses exponentiation, right-associative.
func (p *Parser) parsePower() (Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	base, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if p.token.Type != token.CARET {
		return base, nil
	}
	p.nextToken()
	exponent, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return NewBinary(OpPow, base, exponent), nil
}

// parseFactor parses a number, named constant, variable, or parenthesized
// expression.
func (p *Parser) parseFactor() (Expr, error) {
	switch p.token.Type {
	case token.NUMBER:
		value, err := strconv.ParseFloat(p.token.Literal, 64)
		if err != nil {
			return nil, &ParseError{
				Pos:     p.token.Pos,
				Message: fmt.Sprintf(errInvalidNumber, p.token.Literal),
			}
		}
		p.nextToken()
		return NewConstant(value), nil

	case token.IDENT:
		name := p.token.Literal
		p.nextToken()
		if value, ok := mathutil.LookupConstant(name); ok {
			return NewConstant(value), nil
		}
		return NewVariable(name), nil

	case token.LPAREN:
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.token.Type != token.RPAREN {
			return nil, &ParseError{Pos: p.token.Pos, Message: errUnmatchedParen}
		}
		p.nextToken()
		return expr, nil

	case token.ILLEGAL:
		return nil, &ParseError{
			Pos:     p.token.Pos,
			Message: fmt.Sprintf(errUnexpectedChar, p.token.Literal),
		}

	default:
		return nil, &ParseError{
			Pos:     p.token.Pos,
			Message: fmt.Sprintf(errUnexpectedToken, p.token.Type.String()),
		}
	}
}
