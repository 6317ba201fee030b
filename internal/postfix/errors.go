package postfix

import (
	"fmt"

	"github.com/dontmindmehere/mathsolver/internal/token"
)

// UnbalancedParensError reports a parenthesis with no partner. Carries
// the original infix sequence for diagnostics.
type UnbalancedParensError struct {
	Infix token.Tokens
}

func (e *UnbalancedParensError) Error() string {
	return fmt.Sprintf("unbalanced parentheses in %s", e.Infix)
}

func (e *UnbalancedParensError) Kind() string {
	return "UnbalancedParentheses"
}
