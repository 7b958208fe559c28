package trainlog

import (
	"errors"
	"strconv"
	"strings"
)

// Activity is one tokenized activity before type normalization and unit
// conversion.
type Activity struct {
	Quantity float64
	Units    string
	Type     string
}

// ErrNoQuantity marks an activity piece with no leading number.
var ErrNoQuantity = errors.New("activity has no leading quantity")

// SplitActivities splits the activity text on the hard ';' delimiter.
func SplitActivities(text string) []string {
	return strings.Split(text, ";")
}

// TokenizeActivity extracts quantity, units, and type from one trimmed
// activity piece. The grammar is QUANTITY [UNITS] TYPE["."]; when only one
// token follows the quantity it is the type, not the units. One trailing
// '.' is stripped from both tokens and the type is case-folded.
func TokenizeActivity(piece string) (Activity, error) {
	lit, rest := scanNumber(piece)
	if lit == "" {
		return Activity{}, ErrNoQuantity
	}
	q, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Activity{}, ErrNoQuantity
	}

	rest = strings.TrimSpace(rest)
	units := rest
	typ := ""
	if sp := strings.IndexAny(rest, " \t"); sp >= 0 {
		units = rest[:sp]
		typ = strings.TrimSpace(rest[sp+1:])
	}
	if typ == "" {
		typ = units
		units = ""
	}

	units = strings.TrimSuffix(units, ".")
	typ = strings.ToLower(strings.TrimSuffix(typ, "."))

	return Activity{Quantity: q, Units: units, Type: typ}, nil
}
