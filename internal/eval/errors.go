package eval

import (
	"fmt"

	"github.com/dontmindmehere/mathsolver/internal/token"
)

// StackUnderflowError reports an operator reached with fewer than two
// pending operands. Carries the postfix sequence for diagnostics.
type StackUnderflowError struct {
	Postfix token.Tokens
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("operator needs two operands in %s", e.Postfix)
}

func (e *StackUnderflowError) Kind() string {
	return "StackUnderflow"
}

// MalformedExpressionError reports a fully consumed sequence that left
// the value stack holding anything other than one result.
type MalformedExpressionError struct {
	Postfix token.Tokens
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("operands and operators do not balance in %s", e.Postfix)
}

func (e *MalformedExpressionError) Kind() string {
	return "MalformedExpression"
}
