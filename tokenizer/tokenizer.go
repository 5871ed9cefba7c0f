package tokenizer

import (
	"github.com/teatak/mmseg/lexicon"
	"github.com/teatak/mmseg/util"
)

// Tokenizer segments lines of UTF-8 text by maximum forward matching
// against a lexicon: at each position the longest dictionary word wins,
// punctuation takes priority over the dictionary, and positions no
// dictionary word covers fall back to a single codepoint.
type Tokenizer struct {
	Lex *lexicon.Lexicon
}

// NewTokenizer creates a tokenizer over the given lexicon.
func NewTokenizer(lex *lexicon.Lexicon) *Tokenizer {
	return &Tokenizer{Lex: lex}
}

// Tokenize converts one line into the full sequence of consumed spans,
// classified by Kind. The cursor advances every iteration, and every
// byte of line lands in exactly one token.
func (t *Tokenizer) Tokenize(line string) []Token {
	var tokens []Token

	for start := 0; start < len(line); {
		// Punctuation wins over everything, including dictionary
		// entries that happen to spell a punctuation mark.
		if n, ok := util.MatchPunctuation(line, start); ok {
			tokens = append(tokens, Token{Text: line[start : start+n], Kind: KindPunct})
			start += n
			continue
		}

		// Longest dictionary match, probing lengths strictly
		// descending so the first hit terminates the search.
		if tok, ok := t.matchWord(line, start); ok {
			tokens = append(tokens, tok)
			start += len(tok.Text)
			continue
		}

		// Fallback: exactly one codepoint.
		n := util.RuneLen(line[start])
		if start+n > len(line) {
			n = len(line) - start
		}
		ch := line[start : start+n]
		tokens = append(tokens, Token{Text: ch, Kind: classifyChar(t.Lex, ch)})
		start += n
	}

	return tokens
}

func (t *Tokenizer) matchWord(line string, start int) (Token, bool) {
	max := t.Lex.MaxWordBytes()
	if max > len(line)-start {
		max = len(line) - start
	}
	for l := max; l >= 1; l-- {
		cand := line[start : start+l]
		if !t.Lex.Contains(cand) {
			continue
		}
		kind := KindWord
		if t.Lex.IsStopword(cand) {
			kind = KindStopword
		}
		return Token{Text: cand, Kind: kind}, true
	}
	return Token{}, false
}

// classifyChar decides whether a fallback codepoint is emitted. The
// punctuation re-check mirrors the dictionary path's precedence rules;
// a stopword codepoint is consumed silently like any other stopword.
func classifyChar(lex *lexicon.Lexicon, ch string) Kind {
	if _, ok := util.MatchPunctuation(ch, 0); ok {
		return KindPunct
	}
	if lex.IsStopword(ch) {
		return KindStopword
	}
	return KindChar
}

// Cut segments the line and returns only the emitted token texts:
// dictionary words and fallback codepoints that are neither punctuation
// nor stopwords.
func (t *Tokenizer) Cut(line string) []string {
	var out []string
	for _, tok := range t.Tokenize(line) {
		if tok.Emitted() {
			out = append(out, tok.Text)
		}
	}
	return out
}
