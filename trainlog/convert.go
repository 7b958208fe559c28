package trainlog

// UnitMiles is the canonical unit for every distance-bearing type.
const UnitMiles = "miles"

const kmPerMile = 0.621371

// Per-type pace assumptions for duration entries, in mph.
const (
	runMilesPerMinute  = 0.125
	swimMilesPerMinute = 1.0 / 25
	bikeMPH            = 9.0
	walkMPH            = 3.0
)

type unitRule func(q float64) float64

// conversionRules maps canonical type -> raw unit -> quantity conversion
// into miles. Built once; types missing here keep quantity and unit
// untouched.
var conversionRules = map[string]map[string]unitRule{
	TypeRun: {
		"":        keepQuantity,
		"mile":    keepQuantity,
		"miles":   keepQuantity,
		"k":       kmToMiles,
		"min":     func(q float64) float64 { return q * runMilesPerMinute },
		"minutes": func(q float64) float64 { return q * runMilesPerMinute },
	},
	TypeSwim: {
		"":        keepQuantity,
		"mile":    keepQuantity,
		"miles":   keepQuantity,
		"yards":   func(q float64) float64 { return q / 1760 },
		"meter":   func(q float64) float64 { return q / 1609 },
		"meters":  func(q float64) float64 { return q / 1609 },
		"k":       kmToMiles,
		"min":     func(q float64) float64 { return q * swimMilesPerMinute },
		"minutes": func(q float64) float64 { return q * swimMilesPerMinute },
	},
	TypeBike: {
		"":        keepQuantity,
		"mile":    keepQuantity,
		"miles":   keepQuantity,
		"min":     func(q float64) float64 { return q / 60 * bikeMPH },
		"minutes": func(q float64) float64 { return q / 60 * bikeMPH },
		"hour":    func(q float64) float64 { return q * bikeMPH },
		"hours":   func(q float64) float64 { return q * bikeMPH },
		"k":       kmToMiles,
	},
	TypeWalk: {
		"":        keepQuantity,
		"mile":    keepQuantity,
		"miles":   keepQuantity,
		"min":     func(q float64) float64 { return q / 60 * walkMPH },
		"minutes": func(q float64) float64 { return q / 60 * walkMPH },
	},
}

func keepQuantity(q float64) float64 { return q }

func kmToMiles(q float64) float64 { return q * kmPerMile }

// ConvertUnits converts an activity's quantity into the canonical unit for
// its canonical type. For the distance types the unit always comes back
// "miles", even when the raw unit was unrecognized and the quantity is
// passed through unchanged (ok=false); that mislabeling matches how the
// log has always been processed. Non-distance types come back untouched.
func ConvertUnits(canonType, unit string, q float64) (outQ float64, outUnit string, ok bool) {
	rules, distance := conversionRules[canonType]
	if !distance {
		return q, unit, true
	}
	rule, known := rules[unit]
	if !known {
		return q, UnitMiles, false
	}
	return rule(q), UnitMiles, true
}

// Distances beyond these are reported as implausible, in miles.
const (
	MaxPlausibleRunMiles  = 12.0
	MaxPlausibleWalkMiles = 12.0
	MaxPlausibleBikeMiles = 40.0
)

// ImplausibleDistance reports whether a converted distance is beyond the
// plausible per-day bound for its type.
func ImplausibleDistance(canonType string, miles float64) bool {
	switch canonType {
	case TypeRun:
		return miles > MaxPlausibleRunMiles
	case TypeWalk:
		return miles > MaxPlausibleWalkMiles
	case TypeBike:
		return miles > MaxPlausibleBikeMiles
	default:
		return false
	}
}
