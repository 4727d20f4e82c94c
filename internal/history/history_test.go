package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/chartail/internal/series"
)

func set(epoch string, titles ...string) series.Set {
	s := series.Set{Epoch: epoch}
	for i, t := range titles {
		s.Y = append(s.Y, series.Series{Title: t, Values: []float64{float64(len(titles) - i)}})
	}
	return s
}

func TestHistory_PlaceholderReplaced(t *testing.T) {
	h := New(series.OrderValuesDesc)
	assert.True(t, h.Current().Empty())
	idx, count := h.Position()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, count)

	h.Append(set("one", "a"))
	idx, count = h.Position()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, count)
	assert.Equal(t, "one", h.Current().Epoch)
}

func TestHistory_Navigation(t *testing.T) {
	h := New(series.OrderValuesDesc)
	h.Append(set("one", "a"))
	h.Append(set("two", "b"))
	h.Append(set("three", "c"))

	assert.False(t, h.Forward())
	assert.Equal(t, "one", h.Current().Epoch)

	assert.True(t, h.Last())
	assert.False(t, h.Last())
	assert.Equal(t, "three", h.Current().Epoch)

	assert.True(t, h.Backward())
	assert.True(t, h.Backward())
	assert.False(t, h.Backward())
	assert.Equal(t, "one", h.Current().Epoch)

	assert.True(t, h.Forward())
	idx, count := h.Position()
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3, count)
	assert.True(t, h.Navigable())
}

func TestHistory_SameEpochMerges(t *testing.T) {
	h := New(series.OrderValuesDesc)
	h.Append(set("e1", "a", "b"))
	h.Append(set("e1", "a", "c"))

	_, count := h.Position()
	assert.Equal(t, 1, count)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, h.Current().Titles())
	for _, y := range h.Current().Y {
		assert.Len(t, y.Values, 2, y.Title)
	}

	h.Append(set("", "a"))
	h.Append(set("", "a"))
	_, count = h.Position()
	assert.Equal(t, 3, count, "unlabelled epochs never merge")
}

func TestHistory_MutationsActOnCurrent(t *testing.T) {
	h := New(series.OrderValuesDesc)
	h.Append(set("one", "a"))
	h.Append(set("two", "a"))
	require.True(t, h.Backward())

	require.NoError(t, h.AppendSlice(series.Slice{Y: []float64{5}}))
	assert.Equal(t, []float64{1, 5}, h.Current().Y[0].Values)

	h.Replace(set("replaced", "z"))
	assert.Equal(t, "replaced", h.Current().Epoch)

	require.True(t, h.Last())
	assert.Equal(t, "two", h.Current().Epoch)
	assert.Equal(t, []float64{1}, h.Current().Y[0].Values)
}

func TestHistory_ExtendClearsPlaceholder(t *testing.T) {
	h := New(series.OrderValuesDesc)
	h.Extend(set("", "a"))
	h.Append(set("next", "b"))

	_, count := h.Position()
	assert.Equal(t, 2, count)
}

func TestReplace_SortsInBothStores(t *testing.T) {
	low := series.Set{Y: []series.Series{
		{Title: "low", Values: []float64{1}},
		{Title: "high", Values: []float64{9}},
	}}

	h := New(series.OrderValuesDesc)
	h.Replace(low.Clone())
	assert.Equal(t, []string{"high", "low"}, h.Current().Titles())

	l := NewLive(series.OrderValuesDesc)
	l.Replace(low.Clone())
	assert.Equal(t, []string{"high", "low"}, l.Current().Titles())

	h = New(series.OrderTitlesNumericAsc)
	h.Replace(low.Clone())
	assert.Equal(t, []string{"high", "low"}, h.Current().Titles())
}

func TestLive(t *testing.T) {
	l := NewLive(series.OrderValuesDesc)
	l.Append(set("", "a", "b"))
	l.Append(set("", "b", "c"))

	assert.Len(t, l.Current().Y, 3)
	assert.Equal(t, int64(2), l.Current().SeriesSize())
	assert.False(t, l.Forward())
	assert.False(t, l.Backward())
	assert.False(t, l.Last())
	assert.False(t, l.Navigable())

	l.Replace(set("", "x"))
	assert.Equal(t, []string{"x"}, l.Current().Titles())

	require.Error(t, l.AppendSlice(series.Slice{Y: []float64{1, 2}}))
	idx, count := l.Position()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, count)
}
