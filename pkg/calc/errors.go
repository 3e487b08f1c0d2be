package calc

import (
	"fmt"

	"github.com/numina-labs/numina/pkg/token"
)

// EvalError represents a calculator error with position information.
type EvalError struct {
	Pos     token.Position
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("calc error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func errAt(pos token.Position, format string, args ...any) *EvalError {
	return &EvalError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
