package summarize

import (
	"strings"
	"testing"

	"github.com/riordanmr/cltrainsum/trainlog"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	days := []trainlog.DayRecord{
		{Date: "2006-03-05", Weight: 130, Run: 6.2, Walk: 2.7},
		{Date: "2006-03-06", Weight: 0, Bike: 18.3},
		{Date: "2006-03-07", Weight: 126, Swim: 0.6},
		{Date: "2005-12-31", Weight: 131, Run: 3},
	}
	rows := Summarize(days)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Year != "2005" || rows[1].Year != "2006" {
		t.Fatalf("years = %s, %s", rows[0].Year, rows[1].Year)
	}

	got := rows[1]
	// Weightless days don't count toward the average.
	if got.AvgWeight != 128 {
		t.Errorf("avg weight = %g, want 128", got.AvgWeight)
	}
	if got.Run != 6.2 || got.Walk != 2.7 || got.Bike != 18.3 || got.Swim != 0.6 {
		t.Errorf("totals = %+v", got)
	}
}

func TestSummarizeNoWeighedDays(t *testing.T) {
	t.Parallel()

	rows := Summarize([]trainlog.DayRecord{{Date: "2006-01-01", Run: 1}})
	if len(rows) != 1 || rows[0].AvgWeight != 0 {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestRoundHalfUp1(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want float64
	}{
		{0.25, 0.3},
		{0.24, 0.2},
		{1.25, 1.3}, // round-half-up, not banker's rounding
		{1.0, 1.0},
		{128.04, 128.0},
		{128.06, 128.1},
	}
	for _, tc := range cases {
		if got := RoundHalfUp1(tc.in); got != tc.want {
			t.Errorf("RoundHalfUp1(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	rows := []YearTotals{
		{Year: "2006", AvgWeight: 128.04, Walk: 2.65, Run: 6.2, Bike: 18.3, Swim: 0.6},
	}
	var out strings.Builder
	if err := Write(&out, rows); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "2006,128.0,2.7,6.2,18.3,0.6\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}
