package eval

import (
	"github.com/dontmindmehere/mathsolver/internal/token"
	"github.com/dontmindmehere/mathsolver/pkg/collections"
)

// Evaluator computes the value of a postfix token sequence with a
// value stack. It is also the stage that detects operand/operator
// imbalance a conversion cannot see.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate consumes the sequence in order: numbers push, an operator
// pops the right operand then the left and pushes the applied result.
// Division by zero is not guarded; IEEE-754 semantics apply.
func (e *Evaluator) Evaluate(postfix token.Tokens) (float64, error) {
	var values collections.Stack[float64]

	for _, tok := range postfix {
		if tok.Kind == token.NUMBER {
			values.Push(tok.Num)
			continue
		}

		y, ok := values.Pop()
		if !ok {
			return 0, &StackUnderflowError{Postfix: postfix}
		}
		x, ok := values.Pop()
		if !ok {
			return 0, &StackUnderflowError{Postfix: postfix}
		}
		values.Push(tok.Op.Apply(x, y))
	}

	result, ok := values.Pop()
	if !ok || values.Len() != 0 {
		return 0, &MalformedExpressionError{Postfix: postfix}
	}
	return result, nil
}
