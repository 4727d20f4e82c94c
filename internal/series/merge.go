package series

import (
	"cmp"
	"math"
	"slices"
	"strconv"
)

// Order selects how series are arranged after a union merge.
type Order int

const (
	// OrderValuesDesc puts the series with the largest sum first.
	OrderValuesDesc Order = iota
	// OrderTitlesNumericAsc sorts by title read as a number, e.g. histogram buckets.
	OrderTitlesNumericAsc
)

// ParseOrder maps a CLI/config name to an Order.
func ParseOrder(name string) (Order, bool) {
	switch name {
	case "", "values":
		return OrderValuesDesc, true
	case "titles":
		return OrderTitlesNumericAsc, true
	}
	return OrderValuesDesc, false
}

func (o Order) String() string {
	if o == OrderTitlesNumericAsc {
		return "titles"
	}
	return "values"
}

// AppendSet union-merges other into s. Series are matched by exact title:
// matches keep their history as a prefix, series new to s are padded with NaN
// for the old portion and series missing from other are padded with NaN for
// the new portion and placed after other's series. The result is then sorted
// by order.
func (s *Set) AppendSet(other Set, order Order) {
	oldLen := s.Len()
	newLen := other.Len()

	s.X = mergeAxis(s.X, other.X, oldLen, newLen)
	if other.Epoch != "" {
		s.Epoch = other.Epoch
	}

	if len(s.Y) == 0 {
		s.Y = make([]Series, 0, len(other.Y))
		for _, n := range other.Y {
			values := append(nanSlice(oldLen), n.Values...)
			s.Y = append(s.Y, Series{Title: n.Title, Values: values})
		}
		s.Sort(order)
		return
	}

	byTitle := make(map[string][]int, len(s.Y))
	for i, y := range s.Y {
		byTitle[y.Title] = append(byTitle[y.Title], i)
	}
	consumed := make([]bool, len(s.Y))

	merged := make([]Series, 0, len(s.Y)+len(other.Y))
	for _, n := range other.Y {
		var prefix []float64
		if idx := byTitle[n.Title]; len(idx) > 0 {
			prefix = s.Y[idx[0]].Values
			consumed[idx[0]] = true
			byTitle[n.Title] = idx[1:]
		} else {
			prefix = nanSlice(oldLen)
		}
		values := make([]float64, 0, len(prefix)+len(n.Values))
		values = append(values, prefix...)
		values = append(values, n.Values...)
		merged = append(merged, Series{Title: n.Title, Values: values})
	}
	for i, y := range s.Y {
		if consumed[i] {
			continue
		}
		merged = append(merged, Series{Title: y.Title, Values: append(y.Values, nanSlice(newLen)...)})
	}
	s.Y = merged
	s.Sort(order)
}

// Sort reorders series in place.
func (s *Set) Sort(order Order) {
	switch order {
	case OrderTitlesNumericAsc:
		slices.SortStableFunc(s.Y, compareNumericTitles)
	default:
		keyed := make([]summed, len(s.Y))
		for i, y := range s.Y {
			keyed[i] = summed{sum: y.Sum(), series: y}
		}
		slices.SortStableFunc(keyed, func(a, b summed) int {
			return cmp.Compare(b.sum, a.sum)
		})
		for i := range keyed {
			s.Y[i] = keyed[i].series
		}
	}
}

type summed struct {
	sum    float64
	series Series
}

func compareNumericTitles(a, b Series) int {
	av, aerr := strconv.ParseFloat(a.Title, 64)
	bv, berr := strconv.ParseFloat(b.Title, 64)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(av, bv)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	return cmp.Compare(a.Title, b.Title)
}

func mergeAxis(old, other *Axis, oldLen, newLen int) *Axis {
	switch {
	case old == nil && other == nil:
		return nil
	case old == nil:
		labels := make([]string, oldLen, oldLen+len(other.Labels))
		return &Axis{Title: other.Title, Labels: append(labels, other.Labels...)}
	case other == nil:
		old.Labels = append(old.Labels, make([]string, newLen)...)
		return old
	}
	old.Labels = append(old.Labels, other.Labels...)
	return old
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
