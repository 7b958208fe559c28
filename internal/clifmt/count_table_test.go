package clifmt

import (
	"strings"
	"testing"
)

func TestPrintCountTable(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	PrintCountTable(&out, CountTableOptions{
		Title:      "Units observed",
		NameHeader: "UNIT",
		Counts: map[string]int{
			"miles": 12,
			"min":   3,
			"":      5,
		},
	})
	got := out.String()

	if !strings.Contains(got, "Units observed (3)") {
		t.Errorf("missing title: %q", got)
	}
	// Title, header, separator, then one row per name.
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines: %q", len(lines), got)
	}
	// Highest count first; the empty name renders as a placeholder.
	if !strings.HasPrefix(lines[3], "miles") {
		t.Errorf("row 1 = %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "(none)") {
		t.Errorf("row 2 = %q", lines[4])
	}
	if !strings.HasPrefix(lines[5], "min") {
		t.Errorf("row 3 = %q", lines[5])
	}
}

func TestPrintCountTableEmpty(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	PrintCountTable(&out, CountTableOptions{
		Title:     "Units observed",
		EmptyText: "No units were observed.",
	})
	if !strings.Contains(out.String(), "No units were observed.") {
		t.Fatalf("output = %q", out.String())
	}
}
