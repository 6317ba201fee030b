package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/dontmindmehere/mathsolver/internal/token"
	"github.com/dontmindmehere/mathsolver/internal/types/operator"
)

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		postfix token.Tokens
		want    float64
	}{
		{
			"single number",
			token.Tokens{token.Number(7)},
			7,
		},
		{
			"addition",
			token.Tokens{token.Number(1), token.Number(2), token.Op(operator.Add)},
			3,
		},
		{
			"left operand order",
			token.Tokens{token.Number(10), token.Number(4), token.Op(operator.Sub)},
			6,
		},
		{
			"precedence shape",
			token.Tokens{token.Number(2), token.Number(3), token.Op(operator.Mul), token.Number(4), token.Op(operator.Add)},
			10,
		},
		{
			"division",
			token.Tokens{token.Number(10), token.Number(4), token.Op(operator.Div)},
			2.5,
		},
	}

	e := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Evaluate(tt.postfix)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%s) = %v, want %v", tt.postfix, got, tt.want)
			}
		})
	}
}

func TestEvaluator_DivisionByZero(t *testing.T) {
	e := NewEvaluator()

	got, err := e.Evaluate(token.Tokens{token.Number(7), token.Number(0), token.Op(operator.Div)})
	if err != nil {
		t.Fatalf("division by zero should not fail, got %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("7/0 = %v, want +Inf", got)
	}
}

func TestEvaluator_StackUnderflow(t *testing.T) {
	e := NewEvaluator()

	_, err := e.Evaluate(token.Tokens{token.Number(1), token.Op(operator.Add)})
	var underflow *StackUnderflowError
	if !errors.As(err, &underflow) {
		t.Fatalf("expected StackUnderflowError, got %v", err)
	}
	if underflow.Kind() != "StackUnderflow" {
		t.Errorf("unexpected kind %q", underflow.Kind())
	}
	if underflow.Postfix.String() != "{1.000, +}" {
		t.Errorf("error carries %s", underflow.Postfix)
	}
}

func TestEvaluator_MalformedExpression(t *testing.T) {
	e := NewEvaluator()

	tests := []struct {
		name    string
		postfix token.Tokens
	}{
		{"two numbers no operator", token.Tokens{token.Number(1), token.Number(2)}},
		{"empty sequence", token.Tokens{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Evaluate(tt.postfix)
			var malformed *MalformedExpressionError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedExpressionError, got %v", err)
			}
			if malformed.Kind() != "MalformedExpression" {
				t.Errorf("unexpected kind %q", malformed.Kind())
			}
		})
	}
}
