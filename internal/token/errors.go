package token

import "fmt"

// InvalidNumberError reports a digit/dot run that does not parse as a
// floating-point number, e.g. "1.2.3".
type InvalidNumberError struct {
	Literal string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number literal `%s`", e.Literal)
}

func (e *InvalidNumberError) Kind() string {
	return "InvalidNumberLiteral"
}

// UnsupportedCharError reports the single rune no token can start with.
type UnsupportedCharError struct {
	Char rune
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("unsupported character `%c`", e.Char)
}

func (e *UnsupportedCharError) Kind() string {
	return "UnsupportedCharacter"
}
