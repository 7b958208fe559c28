package trainlog

import "strconv"

const (
	// DefaultScaleMarker flags a reading taken on Tam's scale.
	DefaultScaleMarker = 'T'
	// DefaultScaleBias compensates for that scale reading low, in pounds.
	DefaultScaleBias = 0.8
)

// ParseWeight extracts a body weight from a bracketed annotation. A weight
// of 0 means no reading was recorded. When anything trails the number and
// its last byte is the scale marker, the bias is added. Other trailing
// content (blood pressure, pulse) is ignored.
func ParseWeight(annotation string, marker byte, bias float64) float64 {
	lit, rest := scanNumber(annotation)
	if lit == "" {
		return 0
	}
	w, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0
	}
	if rest != "" && rest[len(rest)-1] == marker {
		w += bias
	}
	return w
}
