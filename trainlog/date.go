package trainlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a parsed YYYY-MM-DD value. The zero value means "unparsable".
type Date struct {
	Year  int
	Month int
	Day   int
}

// Historical quirk: every fourth year is treated as a leap year, with no
// century exception. The log has always been kept that way and the emitted
// dates must match it.
var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(year, month int) int {
	if month == 2 && year%4 == 0 {
		return 29
	}
	return daysPerMonth[month-1]
}

// Valid reports whether the date names a real day under the simplified
// leap rule.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Year, d.Month)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Next returns the calendar day after d under the simplified leap rule.
func (d Date) Next() Date {
	next := Date{Year: d.Year, Month: d.Month, Day: d.Day + 1}
	if next.Day <= daysInMonth(d.Year, d.Month) {
		return next
	}
	next.Day = 1
	next.Month++
	if next.Month > 12 {
		next.Month = 1
		next.Year++
	}
	return next
}

// ParseDate parses a YYYY-MM-DD token. Each field must be a contiguous
// digit run; a malformed field parses as 0. A token that does not name a
// valid day comes back as the zero Date.
func ParseDate(token string) Date {
	fields := strings.SplitN(token, "-", 3)
	if len(fields) != 3 {
		return Date{}
	}
	d := Date{
		Year:  parseDigitField(fields[0]),
		Month: parseDigitField(fields[1]),
		Day:   parseDigitField(fields[2]),
	}
	if !d.Valid() {
		return Date{}
	}
	return d
}

func parseDigitField(s string) int {
	if s == "" {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
