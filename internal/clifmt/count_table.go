package clifmt

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const defaultTableWidth = 100

type CountTableOptions struct {
	Title      string
	Counts     map[string]int
	EmptyText  string
	NameHeader string
	EmptyName  string
}

// PrintCountTable renders a frequency table, highest count first, ties in
// name order. Names wider than the terminal are clipped.
func PrintCountTable(out io.Writer, opts CountTableOptions) {
	if out == nil {
		out = os.Stdout
	}

	title := strings.TrimSpace(opts.Title)
	if title != "" {
		fmt.Fprintf(out, "%s (%d)\n", title, len(opts.Counts))
	}

	if len(opts.Counts) == 0 {
		emptyText := strings.TrimSpace(opts.EmptyText)
		if emptyText == "" {
			emptyText = "No entries."
		}
		fmt.Fprintln(out, emptyText)
		return
	}

	nameHeader := strings.TrimSpace(opts.NameHeader)
	if nameHeader == "" {
		nameHeader = "NAME"
	}
	emptyName := strings.TrimSpace(opts.EmptyName)
	if emptyName == "" {
		emptyName = "(none)"
	}

	names := make([]string, 0, len(opts.Counts))
	for name := range opts.Counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if opts.Counts[names[i]] != opts.Counts[names[j]] {
			return opts.Counts[names[i]] > opts.Counts[names[j]]
		}
		return names[i] < names[j]
	})

	nameWidth := utf8.RuneCountInString(nameHeader)
	countWidth := len("COUNT")
	for _, name := range names {
		if w := len(strconv.Itoa(opts.Counts[name])); w > countWidth {
			countWidth = w
		}
		if name == "" {
			name = emptyName
		}
		if w := utf8.RuneCountInString(name); w > nameWidth {
			nameWidth = w
		}
	}
	if limit := tableWidth(out) - countWidth - 2; nameWidth > limit && limit > 0 {
		nameWidth = limit
	}

	fmt.Fprintf(out, "%s  %s\n", padRightRunes(nameHeader, nameWidth), "COUNT")
	fmt.Fprintf(out, "%s  %s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", countWidth))
	for _, name := range names {
		count := opts.Counts[name]
		if name == "" {
			name = emptyName
		}
		fmt.Fprintf(out, "%s  %d\n", padRightRunes(clipRunes(name, nameWidth), nameWidth), count)
	}
}

func tableWidth(out io.Writer) int {
	if file, ok := out.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTableWidth
}

func padRightRunes(s string, width int) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(" ", missing)
}

func clipRunes(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width])
}
