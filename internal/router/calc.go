package router

import (
	"math"
	"strings"

	"github.com/dontmindmehere/mathsolver/internal/dto"
	"github.com/dontmindmehere/mathsolver/internal/solver"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalcRouter struct {
	e      *echo.Echo
	solver *solver.Solver
}

func NewCalcRouter(e *echo.Echo, s *solver.Solver) *CalcRouter {
	return &CalcRouter{
		e:      e,
		solver: s,
	}
}

func (r *CalcRouter) Bind() {
	r.e.GET("/evaluate", r.evaluateQueryHandler)
	r.e.POST("/evaluate", r.evaluateHandler)
}

func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	var req dto.EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "invalid request body"})
	}
	return r.evaluate(c, req.Expression)
}

func (r *CalcRouter) evaluateQueryHandler(c echo.Context) error {
	return r.evaluate(c, c.QueryParam("expr"))
}

func (r *CalcRouter) evaluate(c echo.Context, expr string) error {
	if strings.TrimSpace(expr) == "" {
		return c.JSON(400, map[string]string{"error": "expression is required"})
	}

	result, err := r.solver.Solve(expr)
	if err != nil {
		// The global error handler maps expression errors to 400.
		return err
	}

	resp := dto.EvaluateResponse{
		ID:         uuid.New(),
		Expression: expr,
		Formatted:  solver.Format(result),
	}
	if !math.IsInf(result, 0) && !math.IsNaN(result) {
		resp.Result = &result
	}

	return c.JSON(200, resp)
}
