package main

import (
	"log/slog"
	"os"

	"github.com/dontmindmehere/mathsolver/internal/router"
	"github.com/dontmindmehere/mathsolver/internal/server"
	"github.com/dontmindmehere/mathsolver/internal/solver"
	pkgserver "github.com/dontmindmehere/mathsolver/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()
	s := server.New(sCfg, healthChecker)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Math Solver API is running")
	})

	calcRouter := router.NewCalcRouter(s.Echo, solver.New())
	calcRouter.Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
