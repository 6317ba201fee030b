package token

import (
	"strconv"
	"unicode"

	"github.com/dontmindmehere/mathsolver/internal/types/operator"
)

// MathTokenizer scans arithmetic expressions: floating-point literals,
// the four binary operators and parentheses. Whitespace and `=` are
// consumed without producing tokens.
type MathTokenizer struct {
	input []rune
	pos   int
}

func NewMathTokenizer() *MathTokenizer {
	return &MathTokenizer{}
}

// Tokenize converts the input string into a token sequence, scanning
// left to right with one-rune lookahead. The first offending character
// or literal aborts the scan.
func (t *MathTokenizer) Tokenize(input string) (Tokens, error) {
	t.input = []rune(input)
	t.pos = 0

	var tokens Tokens
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case isNumChar(ch):
			num, err := t.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Number(num))
		case ch == '=' || unicode.IsSpace(ch):
			t.pos++
		default:
			op, err := operator.Parse(ch)
			if err != nil {
				t.pos++
				return nil, &UnsupportedCharError{Char: ch}
			}
			tokens = append(tokens, Op(op))
			t.pos++
		}
	}

	return tokens, nil
}

// readNumber greedily consumes a contiguous digit/dot run and parses
// it as a float64.
func (t *MathTokenizer) readNumber() (float64, error) {
	start := t.pos
	for t.pos < len(t.input) && isNumChar(t.input[t.pos]) {
		t.pos++
	}

	buf := string(t.input[start:t.pos])
	num, err := strconv.ParseFloat(buf, 64)
	if err != nil {
		return 0, &InvalidNumberError{Literal: buf}
	}
	return num, nil
}

func isNumChar(ch rune) bool {
	return (ch >= '0' && ch <= '9') || ch == '.'
}
