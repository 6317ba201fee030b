package solver

import (
	"strconv"
	"strings"

	"github.com/dontmindmehere/mathsolver/internal/eval"
	"github.com/dontmindmehere/mathsolver/internal/postfix"
	"github.com/dontmindmehere/mathsolver/internal/token"
)

// Solver runs one input line through tokenizing, postfix conversion
// and evaluation, short-circuiting at the first failing stage. Every
// call starts from fresh state; nothing carries over between lines.
type Solver struct {
	tokenizer token.Tokenizer
	converter *postfix.Converter
	evaluator *eval.Evaluator
}

func New() *Solver {
	return &Solver{
		tokenizer: token.NewMathTokenizer(),
		converter: postfix.NewConverter(),
		evaluator: eval.NewEvaluator(),
	}
}

func (s *Solver) Solve(input string) (float64, error) {
	infix, err := s.tokenizer.Tokenize(strings.TrimSpace(input))
	if err != nil {
		return 0, err
	}

	rpn, err := s.converter.Convert(infix)
	if err != nil {
		return 0, err
	}

	return s.evaluator.Evaluate(rpn)
}

// Format renders a result the way the interactive surfaces display
// it: three digits after the decimal point.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
