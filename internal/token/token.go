package token

import (
	"fmt"
	"strings"

	"github.com/dontmindmehere/mathsolver/internal/types/operator"
)

type Kind int

const (
	NUMBER Kind = iota
	OPERATOR
)

// Token is a tagged value: either a numeric literal or an operator.
// Tokens are immutable and copied by value between pipeline stages.
type Token struct {
	Kind Kind
	Num  float64
	Op   operator.Operator
}

// Number builds a numeric-literal token.
func Number(v float64) Token {
	return Token{Kind: NUMBER, Num: v}
}

// Op builds an operator token.
func Op(op operator.Operator) Token {
	return Token{Kind: OPERATOR, Op: op}
}

func (t Token) String() string {
	if t.Kind == NUMBER {
		return fmt.Sprintf("Num(%.3f)", t.Num)
	}
	return fmt.Sprintf("Op(%s)", t.Op)
}

// Tokens is the ordered carrier sequence between pipeline stages. Each
// stage consumes one sequence and produces a fresh one; a sequence has
// no identity beyond its contents.
type Tokens []Token

// String renders the sequence for diagnostics: comma-separated inside
// braces, numbers to three decimal places, operators as their symbol.
// Example: {1.000, 2.000, +}
func (ts Tokens) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range ts {
		if i > 0 {
			b.WriteString(", ")
		}
		if t.Kind == NUMBER {
			fmt.Fprintf(&b, "%.3f", t.Num)
		} else {
			b.WriteString(t.Op.String())
		}
	}
	b.WriteByte('}')
	return b.String()
}
