package apperr

// ExpressionError is implemented by every error the expression
// pipeline can produce. Kind names the taxonomy entry, e.g.
// "UnsupportedCharacter" or "UnbalancedParentheses"; Error carries the
// human-readable diagnostic with the offending context.
type ExpressionError interface {
	error
	Kind() string
}
