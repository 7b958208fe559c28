package trainlog

import (
	"errors"
	"strconv"
	"strings"
)

// Descriptor is a stripped entry split into its three parts.
type Descriptor struct {
	DateToken  string // YYYY-MM-DD
	Annotation string // interior of the first [...] span, "" when absent
	Activities string // what remains after date and annotation removal
}

// Structural reasons an entry cannot be split.
var (
	ErrNoLeadingDigit  = errors.New("entry does not start with a digit")
	ErrNoDateSeparator = errors.New("missing / between month and day")
	ErrTruncatedDate   = errors.New("truncated date")
)

// ExtractDescriptor splits a comment-stripped, trimmed entry into date
// token, annotation, and activity text. The date token is completed from
// the ambient year and normalized to ten characters; the log writes both
// MM/DD and M/DD.
func ExtractDescriptor(text string, year int) (Descriptor, error) {
	text = strings.TrimSpace(text)
	if text == "" || !isDigit(text[0]) {
		return Descriptor{}, ErrNoLeadingDigit
	}

	month, rest := scanDigits(text)
	if len(month) > 2 || rest == "" || rest[0] != '/' {
		return Descriptor{}, ErrNoDateSeparator
	}
	day, rest := scanDigits(rest[1:])
	if day == "" {
		return Descriptor{}, ErrTruncatedDate
	}

	// Before the first year marker the ambient year is 0 and the token
	// comes out short; such entries fail here rather than parse as year 0.
	token := strconv.Itoa(year) + "-" + pad2(month) + "-" + pad2(day)
	if len(token) < 10 {
		return Descriptor{}, ErrTruncatedDate
	}

	working := strings.TrimSpace(rest)

	annotation := ""
	if open := strings.IndexByte(working, '['); open >= 0 {
		if close := strings.IndexByte(working[open+1:], ']'); close >= 0 {
			close += open + 1
			annotation = working[open+1 : close]
			working = working[:open] + working[close+1:]
		}
	}

	return Descriptor{
		DateToken:  token,
		Annotation: annotation,
		Activities: strings.TrimSpace(working),
	}, nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// yearMarkerPrefix introduces a year change in the raw log, e.g. "*** 1998".
const yearMarkerPrefix = "*** "

// ScanYearMarker looks for a year marker anywhere in the original
// (pre-comment-stripped) entry text and returns the four-digit year that
// follows it.
func ScanYearMarker(text string) (int, bool) {
	at := strings.Index(text, yearMarkerPrefix)
	if at < 0 {
		return 0, false
	}
	rest := strings.TrimLeft(text[at+len(yearMarkerPrefix):], " ")
	digits, _ := scanDigits(rest)
	if len(digits) != 4 {
		return 0, false
	}
	return parseDigitField(digits), true
}
