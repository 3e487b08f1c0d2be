// Package token defines the lexical token vocabulary shared by the
// symbolic-expression parser and the runtime calculator. The two keep
// separate tokenizers but agree on token types and source positions.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Literals
	IDENT  // x, velocity
	NUMBER // 123, 45.67, .5, 1e10

	// Operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	CARET   // ^
	ASSIGN  // =
	COMMA   // ,
	LPAREN  // (
	RPAREN  // )
)

// Token is a single lexical token with its source position.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",

	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	CARET:   "^",
	ASSIGN:  "=",
	COMMA:   ",",
	LPAREN:  "(",
	RPAREN:  ")",
}
