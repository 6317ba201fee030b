package postfix

import (
	"errors"
	"testing"

	"github.com/dontmindmehere/mathsolver/internal/token"
	"github.com/dontmindmehere/mathsolver/internal/types/operator"
)

func convert(t *testing.T, input string) (token.Tokens, error) {
	t.Helper()
	infix, err := token.NewMathTokenizer().Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize %q: %v", input, err)
	}
	return NewConverter().Convert(infix)
}

func TestConverter_Convert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single number", "42", "{42.000}"},
		{"simple addition", "1+2", "{1.000, 2.000, +}"},
		{"precedence", "2*3+4", "{2.000, 3.000, *, 4.000, +}"},
		{"precedence reversed", "2+3*4", "{2.000, 3.000, 4.000, *, +}"},
		{"parentheses override", "2*(3+4)", "{2.000, 3.000, 4.000, +, *}"},
		{"mixed equal precedence", "10/2-3", "{10.000, 2.000, /, 3.000, -}"},
		{"equal precedence stays stacked", "1-2+3", "{1.000, 2.000, 3.000, +, -}"},
		{"nested parens", "((1+2))", "{1.000, 2.000, +}"},
		{"empty input", "", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := convert(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Convert(%q) = %s, want %s", tt.input, out, tt.want)
			}
		})
	}
}

func TestConverter_NoParensInOutput(t *testing.T) {
	out, err := convert(t, "((1+2)*(3-4))/5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tok := range out {
		if tok.Kind == token.OPERATOR && tok.Op.IsParen() {
			t.Fatalf("output contains parenthesis token: %s", out)
		}
	}
}

func TestConverter_UnbalancedParens(t *testing.T) {
	for _, input := range []string{")", "1+2)", "(1+2", "((1+2)"} {
		_, err := convert(t, input)
		if err == nil {
			t.Errorf("Convert(%q) should fail", input)
			continue
		}
		var parenErr *UnbalancedParensError
		if !errors.As(err, &parenErr) {
			t.Errorf("Convert(%q): expected UnbalancedParensError, got %T", input, err)
			continue
		}
		if parenErr.Kind() != "UnbalancedParentheses" {
			t.Errorf("unexpected kind %q", parenErr.Kind())
		}
	}
}

func TestConverter_ErrorCarriesInfix(t *testing.T) {
	infix := token.Tokens{
		token.Op(operator.ParenOpen),
		token.Number(1),
		token.Op(operator.Add),
		token.Number(2),
	}

	_, err := NewConverter().Convert(infix)
	var parenErr *UnbalancedParensError
	if !errors.As(err, &parenErr) {
		t.Fatalf("expected UnbalancedParensError, got %v", err)
	}
	if parenErr.Infix.String() != "{(, 1.000, +, 2.000}" {
		t.Errorf("error carries %s", parenErr.Infix)
	}
}
