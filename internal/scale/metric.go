package scale

import (
	"strconv"
	"strings"
)

var metricSuffixes = map[byte]float64{
	'K': 1e3,
	'M': 1e6,
	'G': 1e9,
	'T': 1e12,
}

// ParseMetric parses a number with an optional k/m/g/t multiplier suffix
// (case-insensitive): "1.5k" is 1500.
func ParseMetric(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	mantissa, exponent := trimmed, 1.0
	if n := len(trimmed); n > 0 {
		last := trimmed[n-1]
		if last >= 'a' && last <= 'z' {
			last -= 'a' - 'A'
		}
		if mul, ok := metricSuffixes[last]; ok {
			mantissa, exponent = trimmed[:n-1], mul
		}
	}
	m, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return 0, newError(ErrNumberParse, s, err)
	}
	return m * exponent, nil
}
