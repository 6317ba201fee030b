package repl

import (
	"strings"
	"testing"
)

func TestRun_EvaluatesAndExits(t *testing.T) {
	in := strings.NewReader("1+2\nexit\n")
	var out strings.Builder

	if err := Run(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	want := ">> 3.000\n>> Goodbye.\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_ContinuesAfterError(t *testing.T) {
	in := strings.NewReader("1 @ 2\n2*(3+4)\nexit\n")
	var out strings.Builder

	if err := Run(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "unsupported character `@`") {
		t.Errorf("output missing error line: %q", got)
	}
	if !strings.Contains(got, "14.000") {
		t.Errorf("session should continue after an error: %q", got)
	}
	if !strings.Contains(got, "Goodbye.") {
		t.Errorf("exit should print Goodbye.: %q", got)
	}
}

func TestRun_EndOfInput(t *testing.T) {
	in := strings.NewReader("1+1\n")
	var out strings.Builder

	if err := Run(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "2.000") {
		t.Errorf("output = %q", out.String())
	}
}
