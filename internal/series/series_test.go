package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

// assertValues compares float slices treating NaN as equal to NaN.
func assertValues(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "value %d = %v, want NaN", i, got[i])
			continue
		}
		assert.Equal(t, want[i], got[i], "value %d", i)
	}
}

func TestAppendSlice_BothPresent(t *testing.T) {
	set := Set{Y: []Series{
		{Title: "a", Values: []float64{1}},
		{Title: "b", Values: []float64{2}},
	}}
	require.NoError(t, set.AppendSlice(Slice{Y: []float64{3, 4}}))

	assert.Equal(t, []float64{1, 3}, set.Y[0].Values)
	assert.Equal(t, []float64{2, 4}, set.Y[1].Values)
	assert.Equal(t, int64(2), set.SeriesSize())
	assert.Equal(t, int64(2), set.SeriesCount())
}

func TestAppendSlice_XLabelsAndEpoch(t *testing.T) {
	set := Set{X: &Axis{Title: "time"}, Y: []Series{WithTitle("a")}}
	require.NoError(t, set.AppendSlice(Slice{X: ptr("22:22"), Epoch: "e1", Y: []float64{1}}))

	assert.Equal(t, []string{"22:22"}, set.X.Labels)
	assert.Equal(t, "e1", set.Epoch)
}

func TestAppendSlice_ShapeMismatchLeavesSetUntouched(t *testing.T) {
	set := Set{Y: []Series{{Title: "a", Values: []float64{1}}, {Title: "b", Values: []float64{2}}}}
	err := set.AppendSlice(Slice{Y: []float64{3}})

	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, []float64{1}, set.Y[0].Values)
	assert.Equal(t, []float64{2}, set.Y[1].Values)
}

func TestAppendSlice_ByTitle(t *testing.T) {
	set := Set{Y: []Series{
		{Title: "b", Values: []float64{100}},
		{Title: "a", Values: []float64{1}},
		{Title: "c", Values: []float64{7}},
	}}
	require.NoError(t, set.AppendSlice(Slice{Titles: []string{"a", "b"}, Y: []float64{5, 6}}))

	assert.Equal(t, []float64{100, 6}, set.Y[0].Values)
	assert.Equal(t, []float64{1, 5}, set.Y[1].Values)
	require.Len(t, set.Y[2].Values, 2)
	assert.True(t, math.IsNaN(set.Y[2].Values[1]))
}

func TestAppendSlice_RepeatedTitlesInOrder(t *testing.T) {
	set := Set{Y: []Series{WithTitle("x"), WithTitle("a"), WithTitle("a")}}
	require.NoError(t, set.AppendSlice(Slice{Titles: []string{"a", "a", "x"}, Y: []float64{1, 2, 3}}))

	assert.Equal(t, []float64{3}, set.Y[0].Values)
	assert.Equal(t, []float64{1}, set.Y[1].Values)
	assert.Equal(t, []float64{2}, set.Y[2].Values)
}

func TestAppendSlice_UnknownTitle(t *testing.T) {
	set := Set{Y: []Series{{Title: "a", Values: []float64{1}}}}
	err := set.AppendSlice(Slice{Titles: []string{"z"}, Y: []float64{2}})

	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, []float64{1}, set.Y[0].Values)
}

func TestReplace(t *testing.T) {
	set := Set{Y: []Series{{Title: "a", Values: []float64{1}}}}
	set.Replace(Set{Y: []Series{{Title: "z", Values: []float64{9, 9}}}, Epoch: "x"})

	assert.Equal(t, []string{"z"}, set.Titles())
	assert.Equal(t, int64(2), set.SeriesSize())
	assert.Equal(t, "x", set.Epoch)
}

func TestClone_IsDeep(t *testing.T) {
	set := Set{X: &Axis{Title: "t", Labels: []string{"1"}}, Y: []Series{{Title: "a", Values: []float64{1}}}}
	dup := set.Clone()
	dup.Y[0].Values[0] = 42
	dup.X.Labels[0] = "changed"

	assert.Equal(t, 1.0, set.Y[0].Values[0])
	assert.Equal(t, "1", set.X.Labels[0])
}

func TestSeriesSum_SkipsNaN(t *testing.T) {
	s := Series{Values: []float64{1, math.NaN(), 2}}
	assert.Equal(t, 3.0, s.Sum())
	assert.Equal(t, 2.0, s.Last())
	assert.True(t, math.IsNaN(Series{}.Last()))
}

func TestLen_FallsBackToLabels(t *testing.T) {
	set := Set{X: &Axis{Labels: []string{"a", "b"}}}
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Empty())
}

func TestSeriesMinMax(t *testing.T) {
	mn, mx, ok := Series{Values: []float64{3, math.NaN(), -1, math.Inf(1), 7}}.MinMax()
	require.True(t, ok)
	assert.Equal(t, -1.0, mn)
	assert.Equal(t, 7.0, mx)

	_, _, ok = Series{Values: []float64{math.NaN()}}.MinMax()
	assert.False(t, ok)
}
