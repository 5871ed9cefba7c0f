package tokenizer

// Kind classifies a consumed span of input.
type Kind int

const (
	KindWord     Kind = iota // dictionary match, emitted
	KindChar                 // single-codepoint fallback, emitted
	KindStopword             // stopword, consumed silently
	KindPunct                // punctuation table match, consumed silently
)

// Token is one consumed span of an input line. Every byte of a line
// belongs to exactly one token, so concatenating the Text fields of
// Tokenize's output reconstructs the line.
type Token struct {
	Text string
	Kind Kind
}

// Emitted reports whether the token is part of the segmentation output
// and frequency statistics.
func (t Token) Emitted() bool {
	return t.Kind == KindWord || t.Kind == KindChar
}
