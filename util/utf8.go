package util

// RuneLen returns the byte length of the codepoint whose lead byte is b:
// 1 for ASCII, 2 for 110xxxxx leads, 3 for 1110xxxx leads. Any other
// pattern (4-byte leads, stray continuation bytes) also counts as 1,
// which keeps the scanner moving at the cost of desynchronizing on such
// input. Never returns less than 1.
func RuneLen(b byte) int {
	switch {
	case b&0x80 == 0:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	}
	return 1
}
