package symbolic

import (
	"fmt"

	"github.com/numina-labs/numina/pkg/token"
)

// ParseError represents a syntax error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// DiffError reports an operator the differentiator has no rule for.
type DiffError struct {
	Op Op
}

func (e *DiffError) Error() string {
	if e.Op == 0 {
		return "cannot differentiate empty expression"
	}
	return fmt.Sprintf("cannot differentiate operator %q", e.Op.String())
}

// Common error messages.
const (
	errEmptyInput      = "empty expression"
	errTrailingInput   = "unexpected trailing input %q"
	errUnexpectedChar  = "unexpected character %q"
	errUnexpectedToken = "unexpected token %s"
	errUnmatchedParen  = "expected ')'"
	errInvalidNumber   = "invalid number literal %q"
	errTooDeep         = "expression exceeds maximum nesting depth %d"
)
