package trainlog

// scanNumber consumes the leftmost run of digits with at most one decimal
// point and returns the literal plus everything after it. The run stops at
// the first non-digit byte, or at a second '.'.
func scanNumber(s string) (lit, rest string) {
	dot := false
	i := 0
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !dot {
			dot = true
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}

// scanDigits consumes the leftmost run of decimal digits.
func scanDigits(s string) (lit, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
