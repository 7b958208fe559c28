package trainlog

import (
	"fmt"
	"io"
)

// Reporter receives advisory diagnostics. Anomaly is a recoverable
// plausibility finding; Failure is a structural problem that made the
// parser skip an entry or activity. Neither ever stops a run.
type Reporter interface {
	Anomaly(line int, format string, args ...any)
	Failure(line int, format string, args ...any)
}

// Diagnostic line prefixes on the advisory channel.
const (
	anomalyPrefix = "!!"
	failurePrefix = "**"
)

// LineReporter writes prefixed advisory lines to W, one per diagnostic.
type LineReporter struct {
	W io.Writer
}

func (r LineReporter) Anomaly(line int, format string, args ...any) {
	r.write(anomalyPrefix, line, format, args)
}

func (r LineReporter) Failure(line int, format string, args ...any) {
	r.write(failurePrefix, line, format, args)
}

func (r LineReporter) write(prefix string, line int, format string, args []any) {
	if r.W == nil {
		return
	}
	fmt.Fprintf(r.W, "%s line %d: %s\n", prefix, line, fmt.Sprintf(format, args...))
}

// NopReporter drops every diagnostic.
type NopReporter struct{}

func (NopReporter) Anomaly(int, string, ...any) {}

func (NopReporter) Failure(int, string, ...any) {}
