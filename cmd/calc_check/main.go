package main

import (
	"log/slog"
	"os"

	"github.com/dontmindmehere/mathsolver/internal/solver"
	"github.com/dontmindmehere/mathsolver/internal/suite"
)

func main() {
	cfg := parseFlags()

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	runner := suite.NewRunner(solver.New())
	results := runner.Run(s)

	failed := 0
	for _, res := range results {
		if res.Passed {
			if cfg.Verbose {
				slog.Info("PASS", "case", res.Case.Name, "expression", res.Case.Expression)
			}
			continue
		}
		failed++
		if res.Err != nil {
			slog.Error("FAIL", "case", res.Case.Name, "expression", res.Case.Expression, "error", res.Err)
		} else {
			slog.Error("FAIL", "case", res.Case.Name, "expression", res.Case.Expression, "got", res.Got)
		}
	}

	slog.Info("Suite finished", "suite", s.Name, "cases", len(results), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
