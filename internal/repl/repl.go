package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dontmindmehere/mathsolver/internal/solver"
)

const prompt = ">> "

// Run drives the interactive session: prompt, read one line, evaluate
// it, print the result or the error, until "exit" or end of input.
// Errors are terminal for their line only; the session continues.
func Run(r io.Reader, w io.Writer) error {
	s := solver.New()
	in := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, prompt)
		if !in.Scan() {
			return in.Err()
		}

		line := strings.TrimSpace(in.Text())
		if line == "exit" {
			fmt.Fprintln(w, "Goodbye.")
			return nil
		}

		result, err := s.Solve(line)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		fmt.Fprintln(w, solver.Format(result))
	}
}
