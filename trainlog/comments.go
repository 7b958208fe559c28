package trainlog

import "strings"

// StripComments removes parenthesized comment spans from an entry.
//
// The scan repeatedly deletes the span from the first '(' through the first
// ')' after it, restarting from the beginning each time. When another '('
// appears before that ')', the scan stops at once and leaves the rest of
// the text untouched, including well-formed comments later in the entry.
// That is the behavior the log has been checked against for decades, so it
// is kept as-is rather than extended to proper nesting.
func StripComments(s string) string {
	for {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			return s
		}
		close := strings.IndexByte(s[open+1:], ')')
		if close < 0 {
			return s
		}
		close += open + 1
		if strings.IndexByte(s[open+1:close], '(') >= 0 {
			return s
		}
		s = s[:open] + s[close+1:]
	}
}
