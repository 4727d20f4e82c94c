// Package series holds the chart data model: named numeric series, the set
// of series shown on one screen, and the operations that merge incoming data
// into it.
//
// Terminology:
//   - Series: one chart row, e.g. "cpu load".
//   - Set: everything on screen, all series plus the optional X axis labels.
//   - Slice: one input row, one value per named column.
package series

import (
	"errors"
	"fmt"
	"math"
)

// ErrShapeMismatch is returned when a slice does not carry exactly one value
// per series of the set it is appended to.
var ErrShapeMismatch = errors.New("slice shape does not match series set")

// Series is one named sequence of samples.
type Series struct {
	Title  string
	Values []float64
}

// WithTitle returns an empty series.
func WithTitle(title string) Series {
	return Series{Title: title}
}

// Sum adds up all non-NaN values.
func (s Series) Sum() float64 {
	var total float64
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			total += v
		}
	}
	return total
}

// Last returns the most recent value, NaN when the series is empty.
func (s Series) Last() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.Values[len(s.Values)-1]
}

// Axis is the shared X column: its header title and one label per sample.
type Axis struct {
	Title  string
	Labels []string
}

// Slice is one parsed input row.
type Slice struct {
	X     *string // X label, nil when the schema has no X column
	Epoch string  // epoch label, empty when the schema has no epoch column
	Y     []float64

	// Titles names the series each value belongs to. Nil means Y follows
	// the set's series order.
	Titles []string
}

// Set is an ordered collection of equal-length series with optional X labels.
type Set struct {
	X     *Axis
	Y     []Series
	Epoch string
}

// SeriesSize returns the number of samples per series.
func (s *Set) SeriesSize() int64 {
	if len(s.Y) == 0 {
		return 0
	}
	return int64(len(s.Y[0].Values))
}

// SeriesCount returns the number of series.
func (s *Set) SeriesCount() int64 {
	return int64(len(s.Y))
}

// Len returns the number of samples covered by the set, falling back to the
// X labels when there are no series.
func (s *Set) Len() int {
	if len(s.Y) > 0 {
		return len(s.Y[0].Values)
	}
	if s.X != nil {
		return len(s.X.Labels)
	}
	return 0
}

// Empty reports whether the set holds no series at all.
func (s *Set) Empty() bool {
	return len(s.Y) == 0
}

// Titles returns series titles in display order.
func (s *Set) Titles() []string {
	out := make([]string, len(s.Y))
	for i, y := range s.Y {
		out[i] = y.Title
	}
	return out
}

// AppendSlice appends one value to every series. A titled slice is matched
// to the set by title, repeated titles in order of appearance, and series
// the slice does not name get NaN. An untitled slice is matched by position.
// The set is left untouched when the slice does not fit.
func (s *Set) AppendSlice(slice Slice) error {
	values, err := s.arrange(slice)
	if err != nil {
		return err
	}
	for i := range s.Y {
		s.Y[i].Values = append(s.Y[i].Values, values[i])
	}
	if s.X != nil && slice.X != nil {
		s.X.Labels = append(s.X.Labels, *slice.X)
	}
	if slice.Epoch != "" {
		s.Epoch = slice.Epoch
	}
	return nil
}

// arrange returns the slice values in the set's series order.
func (s *Set) arrange(slice Slice) ([]float64, error) {
	if slice.Titles == nil {
		if len(slice.Y) != len(s.Y) {
			return nil, fmt.Errorf("%w: %d values for %d series", ErrShapeMismatch, len(slice.Y), len(s.Y))
		}
		return slice.Y, nil
	}
	if len(slice.Titles) != len(slice.Y) {
		return nil, fmt.Errorf("%w: %d values for %d titles", ErrShapeMismatch, len(slice.Y), len(slice.Titles))
	}
	if inOrder(s.Y, slice.Titles) {
		return slice.Y, nil
	}

	byTitle := make(map[string][]int, len(s.Y))
	for i, y := range s.Y {
		byTitle[y.Title] = append(byTitle[y.Title], i)
	}
	out := nanSlice(len(s.Y))
	for i, t := range slice.Titles {
		idx := byTitle[t]
		if len(idx) == 0 {
			return nil, fmt.Errorf("%w: no series %q", ErrShapeMismatch, t)
		}
		out[idx[0]] = slice.Y[i]
		byTitle[t] = idx[1:]
	}
	return out, nil
}

func inOrder(ys []Series, titles []string) bool {
	if len(ys) != len(titles) {
		return false
	}
	for i, y := range ys {
		if y.Title != titles[i] {
			return false
		}
	}
	return true
}

// Replace discards the current content in favor of other.
func (s *Set) Replace(other Set) {
	*s = other
}

// Clone returns a deep copy.
func (s *Set) Clone() Set {
	out := Set{Epoch: s.Epoch}
	if s.X != nil {
		out.X = &Axis{Title: s.X.Title, Labels: append([]string(nil), s.X.Labels...)}
	}
	if s.Y != nil {
		out.Y = make([]Series, len(s.Y))
		for i, y := range s.Y {
			out.Y[i] = Series{Title: y.Title, Values: append([]float64(nil), y.Values...)}
		}
	}
	return out
}

// MinMax returns the smallest and largest finite values. ok is false when the
// series has none.
func (s Series) MinMax() (mn, mx float64, ok bool) {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok {
			mn, mx, ok = v, v, true
			continue
		}
		mn = math.Min(mn, v)
		mx = math.Max(mx, v)
	}
	return mn, mx, ok
}
