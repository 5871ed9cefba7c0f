package util

import (
	"strings"
)

// punctTable lists every punctuation literal the classifier recognizes:
// CJK marks as 3-byte UTF-8 sequences, ASCII marks as single bytes.
// Entries are matched in order and the first hit wins, so no entry may
// be a prefix of an earlier one at the same position.
var punctTable = []string{
	"，", "。", "！", "？", "；",
	"：", "“", "”", "‘", "’",
	"『", "』", "【", "】", "《",
	"》", "、", "（", "）", "［",
	"］", "｛", "｝", "※",
	"(", ")", "[", "]", "{",
	"}", "\"",
}

// MatchPunctuation tests the byte run beginning at start against the
// punctuation table using exact byte-prefix comparison. It returns the
// matched byte length and whether any entry matched.
func MatchPunctuation(s string, start int) (int, bool) {
	rest := s[start:]
	for _, p := range punctTable {
		if strings.HasPrefix(rest, p) {
			return len(p), true
		}
	}
	return 0, false
}

// IsPunctuation reports whether s consists entirely of table punctuation.
func IsPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); {
		n, ok := MatchPunctuation(s, i)
		if !ok {
			return false
		}
		i += n
	}
	return true
}

// ContainsPunctuation reports whether any position of s matches the table.
func ContainsPunctuation(s string) bool {
	for i := 0; i < len(s); {
		if _, ok := MatchPunctuation(s, i); ok {
			return true
		}
		i += RuneLen(s[i])
	}
	return false
}
