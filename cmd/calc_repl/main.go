package main

import (
	"log/slog"
	"os"

	"github.com/dontmindmehere/mathsolver/internal/repl"
)

func main() {
	if err := repl.Run(os.Stdin, os.Stdout); err != nil {
		slog.Error("REPL terminated", "error", err)
		os.Exit(1)
	}
}
