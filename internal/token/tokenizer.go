package token

// Tokenizer interface defines the method for converting one raw input
// line into an ordered token sequence.
type Tokenizer interface {
	Tokenize(input string) (Tokens, error)
}
