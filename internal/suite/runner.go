package suite

import (
	"errors"
	"math"

	"github.com/dontmindmehere/mathsolver/internal/apperr"
	"github.com/dontmindmehere/mathsolver/internal/solver"
	"github.com/dontmindmehere/mathsolver/pkg/utils"
)

// Result is one case outcome.
type Result struct {
	Case   Case
	Got    float64
	Err    error
	Passed bool
}

type Runner struct {
	solver *solver.Solver
}

func NewRunner(s *solver.Solver) *Runner {
	return &Runner{solver: s}
}

// Run evaluates every case in order. Cases are independent; a failure
// never stops the run.
func (r *Runner) Run(s *Suite) []Result {
	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, r.runCase(c))
	}
	return results
}

func (r *Runner) runCase(c Case) Result {
	got, err := r.solver.Solve(c.Expression)
	res := Result{Case: c, Got: got, Err: err}

	switch {
	case c.WantErr != "":
		var ee apperr.ExpressionError
		res.Passed = errors.As(err, &ee) && ee.Kind() == c.WantErr
	case err != nil:
		res.Passed = false
	default:
		res.Passed = equalAtDisplayResolution(got, *c.Want)
	}

	return res
}

// Display shows three decimals, so expectations compare at that
// resolution.
func equalAtDisplayResolution(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return utils.RoundDecimal(a, 3) == utils.RoundDecimal(b, 3)
}
