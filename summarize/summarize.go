// Package summarize aggregates day-level records into per-year totals.
package summarize

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/riordanmr/cltrainsum/trainlog"
)

// YearTotals is one output row: total mileage per type and the average of
// the days that recorded a weight.
type YearTotals struct {
	Year      string
	AvgWeight float64
	Walk      float64
	Run       float64
	Bike      float64
	Swim      float64
}

// Summarize groups day records by the year prefix of their date and
// returns rows in ascending year order. Days with weight 0 do not count
// toward the average; a year with no weighed days averages to 0.
func Summarize(days []trainlog.DayRecord) []YearTotals {
	type acc struct {
		weightSum  float64
		weightDays int
		walk       float64
		run        float64
		bike       float64
		swim       float64
	}
	byYear := make(map[string]*acc)
	for _, d := range days {
		if len(d.Date) < 4 {
			continue
		}
		year := d.Date[:4]
		a := byYear[year]
		if a == nil {
			a = &acc{}
			byYear[year] = a
		}
		if d.Weight != 0 {
			a.weightSum += d.Weight
			a.weightDays++
		}
		a.walk += d.Walk
		a.run += d.Run
		a.bike += d.Bike
		a.swim += d.Swim
	}

	years := make([]string, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Strings(years)

	out := make([]YearTotals, 0, len(years))
	for _, year := range years {
		a := byYear[year]
		avg := 0.0
		if a.weightDays > 0 {
			avg = a.weightSum / float64(a.weightDays)
		}
		out = append(out, YearTotals{
			Year:      year,
			AvgWeight: avg,
			Walk:      a.walk,
			Run:       a.run,
			Bike:      a.bike,
			Swim:      a.swim,
		})
	}
	return out
}

// RoundHalfUp1 rounds to one decimal place, halves away from zero upward
// (0.25 -> 0.3).
func RoundHalfUp1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// Write prints YEAR,AVG_WEIGHT,TOTAL_WALK,TOTAL_RUN,TOTAL_BIKE,TOTAL_SWIM
// rows, one decimal each.
func Write(w io.Writer, rows []YearTotals) error {
	for _, row := range rows {
		_, err := fmt.Fprintf(w, "%s,%.1f,%.1f,%.1f,%.1f,%.1f\n",
			row.Year,
			RoundHalfUp1(row.AvgWeight),
			RoundHalfUp1(row.Walk),
			RoundHalfUp1(row.Run),
			RoundHalfUp1(row.Bike),
			RoundHalfUp1(row.Swim))
		if err != nil {
			return err
		}
	}
	return nil
}
