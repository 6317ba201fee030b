package operator

import "fmt"

// Operator represents one of the six lexical symbols an arithmetic
// expression may contain. Value object: the parenthesis variants take
// part in tokenizing and conversion but carry no arithmetic behavior.
//
// Usage:
//
//	op, _ := operator.Parse('+')
//	op.Apply(1, 2) // 3
type Operator rune

const (
	Add        Operator = '+'
	Sub        Operator = '-'
	Mul        Operator = '*'
	Div        Operator = '/'
	ParenOpen  Operator = '('
	ParenClose Operator = ')'
)

// Parse maps a single rune onto its Operator.
func Parse(ch rune) (Operator, error) {
	op := Operator(ch)
	switch op {
	case Add, Sub, Mul, Div, ParenOpen, ParenClose:
		return op, nil
	default:
		return 0, fmt.Errorf("invalid operator: %q", ch)
	}
}

// Precedence returns the binding strength used during infix-to-postfix
// conversion. Parentheses bind weakest so they never outrank a real
// operator waiting on the stack.
func (o Operator) Precedence() int {
	switch o {
	case Mul, Div:
		return 2
	case Add, Sub:
		return 1
	default:
		return 0
	}
}

// IsParen returns true if the operator is a grouping symbol rather
// than an arithmetic one.
func (o Operator) IsParen() bool {
	return o == ParenOpen || o == ParenClose
}

// Apply computes the binary operation. Applying a parenthesis is a
// contract violation: conversion strips all grouping symbols before
// evaluation ever sees a sequence.
func (o Operator) Apply(x, y float64) float64 {
	switch o {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		return x / y
	default:
		panic(fmt.Sprintf("operator %q is not arithmetic", rune(o)))
	}
}

// String returns the literal symbol of the operator.
func (o Operator) String() string {
	return string(rune(o))
}
