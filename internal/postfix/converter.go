package postfix

import (
	"github.com/dontmindmehere/mathsolver/internal/token"
	"github.com/dontmindmehere/mathsolver/internal/types/operator"
	"github.com/dontmindmehere/mathsolver/pkg/collections"
)

// Converter reorders an infix token sequence into postfix (reverse
// Polish) order with the shunting-yard algorithm.
type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

// Convert resolves precedence and parentheses. Numbers pass straight
// to the output; an operator waits on the stack until an operator of
// lower or equal precedence arrives. Equal precedence does not pop.
// The result contains no parenthesis tokens.
func (c *Converter) Convert(infix token.Tokens) (token.Tokens, error) {
	var ops collections.Stack[operator.Operator]
	out := make(token.Tokens, 0, len(infix))

	for _, tok := range infix {
		switch {
		case tok.Kind == token.NUMBER:
			out = append(out, tok)
		case tok.Op == operator.ParenOpen:
			ops.Push(tok.Op)
		case tok.Op == operator.ParenClose:
			for {
				op, ok := ops.Pop()
				if !ok {
					return nil, &UnbalancedParensError{Infix: infix}
				}
				if op == operator.ParenOpen {
					break
				}
				out = append(out, token.Op(op))
			}
		default:
			for {
				top, ok := ops.Peek()
				if !ok || top.Precedence() <= tok.Op.Precedence() {
					break
				}
				ops.Pop()
				out = append(out, token.Op(top))
			}
			ops.Push(tok.Op)
		}
	}

	for {
		op, ok := ops.Pop()
		if !ok {
			break
		}
		if op == operator.ParenOpen {
			// An opening parenthesis that never met its `)`.
			return nil, &UnbalancedParensError{Infix: infix}
		}
		out = append(out, token.Op(op))
	}

	return out, nil
}
