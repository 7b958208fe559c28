// Package recordio reads and writes the two delimited record streams the
// parser emits: one line per record, comma-separated, no header.
package recordio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/riordanmr/cltrainsum/trainlog"
)

// StreamEmitter appends records to the two output streams as the parser
// produces them.
type StreamEmitter struct {
	Activities io.Writer
	Days       io.Writer
}

func (e StreamEmitter) Activity(rec trainlog.ActivityRecord) error {
	if e.Activities == nil {
		return nil
	}
	_, err := fmt.Fprintf(e.Activities, "%s,%s,%s,%s\n",
		rec.Date, formatQuantity(rec.Quantity), rec.Unit, rec.Type)
	return err
}

func (e StreamEmitter) Day(rec trainlog.DayRecord) error {
	if e.Days == nil {
		return nil
	}
	_, err := fmt.Fprintf(e.Days, "%s,%s,%s,%s,%s,%s\n",
		rec.Date,
		formatQuantity(rec.Weight),
		formatQuantity(rec.Walk),
		formatQuantity(rec.Run),
		formatQuantity(rec.Bike),
		formatQuantity(rec.Swim))
	return err
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// ReadDays parses a day-level stream back into records. Blank lines are
// skipped; a malformed line is an error naming its line number.
func ReadDays(r io.Reader) ([]trainlog.DayRecord, error) {
	sc := bufio.NewScanner(r)
	var out []trainlog.DayRecord
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 6 {
			return nil, fmt.Errorf("line %d: want 6 fields, got %d", lineNo, len(fields))
		}
		rec := trainlog.DayRecord{Date: fields[0]}
		for i, dst := range []*float64{&rec.Weight, &rec.Walk, &rec.Run, &rec.Bike, &rec.Swim} {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: field %d: %w", lineNo, i+2, err)
			}
			*dst = v
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
