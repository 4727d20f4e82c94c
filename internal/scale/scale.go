// Package scale maps raw series values onto the [-1, 1] display range.
package scale

import (
	"fmt"
	"math"
	"strings"
)

// Scale is a piecewise linear transform: [A, B] -> [-1, 0] and [B, C] -> [0, 1].
// Values outside [A, C] are extrapolated, never clamped.
type Scale struct {
	a, b, c float64
}

// New builds a scale over the domain (a, b, c).
func New(a, b, c float64) (Scale, error) {
	if a == b || b == c {
		return Scale{}, newError(ErrEmptyDomain, fmt.Sprintf("%g..%g..%g", a, b, c), nil)
	}
	return Scale{a: a, b: b, c: c}, nil
}

// Positive maps [a, b] onto [0, 1].
func Positive(a, b float64) (Scale, error) {
	return New(2*a-b, a, b)
}

// Negative maps [a, b] onto [-1, 0].
func Negative(a, b float64) (Scale, error) {
	return New(a, b, 2*b-a)
}

// Identity returns the (-1, 0, 1) scale.
func Identity() Scale {
	return Scale{a: -1, b: 0, c: 1}
}

// FromMinMax picks a domain for data observed within [mn, mx].
func FromMinMax(mn, mx float64) (Scale, error) {
	if mn > mx || !finite(mn) || !finite(mx) {
		return Scale{}, newError(ErrBadDomain, fmt.Sprintf("mn = %g, mx = %g", mn, mx), nil)
	}
	switch {
	case mn*mx < 0:
		return New(mn, 0, mx)
	case mn < 0:
		return Negative(mn, 0)
	case mx > 0:
		return Positive(0, mx)
	}
	return Identity(), nil
}

// Auto builds a scale from the finite values in v. Empty or all-zero input
// yields the identity scale.
func Auto(v []float64) Scale {
	mn, mx, ok := MinMax(v)
	if !ok {
		return Identity()
	}
	s, err := FromMinMax(mn, mx)
	if err != nil {
		return Identity()
	}
	return s
}

// Run maps v into display space.
func (s Scale) Run(v float64) float64 {
	if v < s.b {
		return transform(s.a, s.b, -1, 0, v)
	}
	return transform(s.b, s.c, 0, 1, v)
}

// Domain returns the three domain points.
func (s Scale) Domain() (a, b, c float64) {
	return s.a, s.b, s.c
}

func (s Scale) String() string {
	return fmt.Sprintf("%g..%g..%g", s.a, s.b, s.c)
}

// ParseDomain parses "C", "A..C" or "A..B..C" with optional k/m/g/t suffixes.
func ParseDomain(conf string) (Scale, error) {
	parts := strings.Split(conf, "..")
	v := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := ParseMetric(p)
		if err != nil {
			return Scale{}, err
		}
		v = append(v, f)
	}
	switch len(v) {
	case 1:
		return Positive(0, v[0])
	case 2:
		return Positive(v[0], v[1])
	case 3:
		return New(v[0], v[1], v[2])
	}
	return Scale{}, newError(ErrBadDomain, conf, nil)
}

// MinMax returns the bounds of the finite values in v; ok is false when
// there are none.
func MinMax(v []float64) (mn, mx float64, ok bool) {
	for _, x := range v {
		if !finite(x) {
			continue
		}
		if !ok {
			mn, mx, ok = x, x, true
			continue
		}
		mn = math.Min(mn, x)
		mx = math.Max(mx, x)
	}
	return mn, mx, ok
}

func transform(fromLo, fromHi, toLo, toHi, v float64) float64 {
	return toLo + (toHi-toLo)*(v-fromLo)/(fromHi-fromLo)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
