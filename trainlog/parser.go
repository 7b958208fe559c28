package trainlog

import (
	"io"
	"log/slog"
	"strings"
)

// Plausible body-weight window, in pounds. Readings outside [Min, Max)
// are reported but still emitted.
const (
	DefaultWeightMin = 100.0
	DefaultWeightMax = 140.0
)

// Config carries the knobs the log format accumulated over the years.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	ContinuationMarker byte
	StartYear          int
	ScaleMarker        byte
	ScaleBias          float64
	WeightMin          float64
	WeightMax          float64
	// TypeAliases extends the built-in raw-code -> canonical-code table.
	TypeAliases map[string]string
}

func DefaultConfig() Config {
	return Config{
		ContinuationMarker: DefaultContinuationMarker,
		ScaleMarker:        DefaultScaleMarker,
		ScaleBias:          DefaultScaleBias,
		WeightMin:          DefaultWeightMin,
		WeightMax:          DefaultWeightMax,
	}
}

// Parser runs the day-line normalization pipeline over a raw log. All
// run-wide state (ambient year, last parsed date, frequency tables) lives
// here; a Parser is good for one sequential run and is not safe for
// concurrent use.
type Parser struct {
	cfg    Config
	norm   *Normalizer
	rep    Reporter
	logger *slog.Logger

	year     int
	lastDate Date
	haveLast bool

	unitFreq map[string]int
	typeFreq map[string]int

	entries int
	skipped int
}

// NewParser builds a parser with the lookup tables initialized once.
func NewParser(cfg Config, rep Reporter, logger *slog.Logger) (*Parser, error) {
	norm, err := NewNormalizer(cfg.TypeAliases)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		rep = NopReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{
		cfg:      cfg,
		norm:     norm,
		rep:      rep,
		logger:   logger,
		year:     cfg.StartYear,
		unitFreq: make(map[string]int),
		typeFreq: make(map[string]int),
	}, nil
}

// Run reads the raw log to end of input, emitting normalized records.
// Malformed entries and activities are skipped with a diagnostic; the only
// error returned is a read or emit failure.
func (p *Parser) Run(r io.Reader, em Emitter) error {
	var emitErr error
	err := Reassemble(r, p.cfg.ContinuationMarker, func(e Entry) {
		if emitErr != nil {
			return
		}
		emitErr = p.processEntry(e, em)
	})
	if err != nil {
		return err
	}
	if emitErr != nil {
		return emitErr
	}
	p.logger.Info("parse finished",
		"entries", p.entries,
		"skipped", p.skipped,
		"units_seen", len(p.unitFreq),
		"types_seen", len(p.typeFreq),
	)
	return nil
}

func (p *Parser) processEntry(e Entry, em Emitter) error {
	// Year markers live on the original entry text; comments may wrap them.
	if year, ok := ScanYearMarker(e.Text); ok {
		if p.year != 0 && year != p.year+1 {
			p.rep.Anomaly(e.Line, "year marker %d does not follow %d", year, p.year)
		}
		p.year = year
		p.logger.Debug("year context updated", "year", year, "line", e.Line)
	}

	stripped := strings.TrimSpace(StripComments(e.Text))
	desc, err := ExtractDescriptor(stripped, p.year)
	if err != nil {
		p.rep.Failure(e.Line, "skipping entry: %v", err)
		p.skipped++
		return nil
	}
	p.entries++

	p.sequenceCheck(e.Line, desc.DateToken)

	day := DayRecord{Date: desc.DateToken}
	day.Weight = ParseWeight(desc.Annotation, p.cfg.ScaleMarker, p.cfg.ScaleBias)
	if day.Weight != 0 && (day.Weight < p.cfg.WeightMin || day.Weight >= p.cfg.WeightMax) {
		p.rep.Anomaly(e.Line, "implausible weight %g", day.Weight)
	}

	for _, piece := range SplitActivities(desc.Activities) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		act, err := TokenizeActivity(piece)
		if err != nil {
			p.rep.Failure(e.Line, "skipping activity %q: %v", piece, err)
			continue
		}

		canon := p.norm.Canonical(act.Type)
		q, unit, known := ConvertUnits(canon, act.Units, act.Quantity)
		if !known {
			p.rep.Anomaly(e.Line, "unrecognized %s unit %q", canon, act.Units)
		}
		if ImplausibleDistance(canon, q) {
			p.rep.Anomaly(e.Line, "implausible distance %g miles for type %s", q, canon)
		}

		p.unitFreq[unit]++
		p.typeFreq[canon]++

		if err := em.Activity(ActivityRecord{
			Date:     desc.DateToken,
			Quantity: q,
			Unit:     unit,
			Type:     canon,
		}); err != nil {
			return err
		}

		// Last write wins when a day repeats a type.
		switch canon {
		case TypeWalk:
			day.Walk = q
		case TypeRun:
			day.Run = q
		case TypeBike:
			day.Bike = q
		case TypeSwim:
			day.Swim = q
		}
	}

	return em.Day(day)
}

func (p *Parser) sequenceCheck(line int, token string) {
	d := ParseDate(token)
	if !d.Valid() {
		p.rep.Anomaly(line, "unparsable date %q", token)
		return
	}
	if p.haveLast {
		if want := p.lastDate.Next(); d != want {
			p.rep.Anomaly(line, "date %s does not follow %s (expected %s)", d, p.lastDate, want)
		}
	}
	p.lastDate = d
	p.haveLast = true
}

// UnitCounts returns the end-of-run canonical unit frequency table.
func (p *Parser) UnitCounts() map[string]int { return p.unitFreq }

// TypeCounts returns the end-of-run activity type frequency table.
func (p *Parser) TypeCounts() map[string]int { return p.typeFreq }
