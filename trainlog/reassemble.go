package trainlog

import (
	"bufio"
	"io"
	"strings"
)

// DefaultContinuationMarker is the byte that opens a continuation line in
// the raw log.
const DefaultContinuationMarker = '+'

// Entry is one logical day entry after continuation-line joining. Line is
// the physical line number of the entry's first line.
type Entry struct {
	Text string
	Line int
}

// Reassemble reads raw log lines and hands each merged logical entry to
// emit, in input order.
//
// A line whose first byte is the marker has the marker stripped and the
// remainder appended to the accumulating entry. Any other non-blank line
// flushes the accumulating entry and starts a new one. Blank lines are
// separators only: they neither flush nor append, so a continuation after
// a blank line still joins the open entry.
func Reassemble(r io.Reader, marker byte, emit func(Entry)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cur strings.Builder
	curLine := 0
	open := false

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == marker {
			if !open {
				open = true
				curLine = lineNo
			}
			cur.WriteString(line[1:])
			continue
		}
		if open {
			emit(Entry{Text: cur.String(), Line: curLine})
			cur.Reset()
		}
		open = true
		curLine = lineNo
		cur.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if open {
		emit(Entry{Text: cur.String(), Line: curLine})
	}
	return nil
}
