package fetch

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/chartail/internal/schema"
)

func drain(t *testing.T, r Reader) []Event {
	t.Helper()
	var out []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, ev)
	}
}

func TestLineReader(t *testing.T) {
	in := "a,b\n1,2\n3,x\n\nc\n7\n"
	events := drain(t, NewLineReader(strings.NewReader(in), Options{}))
	require.Len(t, events, 5)

	h, ok := events[0].(Header)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, h.Set.Titles())

	row := events[1].(Row)
	assert.Equal(t, []float64{1, 2}, row.Slice.Y)

	row = events[2].(Row)
	assert.Equal(t, 3.0, row.Slice.Y[0])
	assert.True(t, math.IsNaN(row.Slice.Y[1]))

	h = events[3].(Header)
	assert.Equal(t, []string{"c"}, h.Set.Titles())
	assert.Equal(t, []float64{7}, events[4].(Row).Slice.Y)
}

func TestLineReader_XColumnAndCRLF(t *testing.T) {
	in := "time,v\r\n22:22,5\r\n"
	events := drain(t, NewLineReader(strings.NewReader(in), Options{X: schema.Title("time")}))
	require.Len(t, events, 2)

	h := events[0].(Header)
	require.NotNil(t, h.Set.X)
	assert.Equal(t, "time", h.Set.X.Title)

	row := events[1].(Row)
	require.NotNil(t, row.Slice.X)
	assert.Equal(t, "22:22", *row.Slice.X)
	assert.Equal(t, []float64{5}, row.Slice.Y)
}

func TestPairReader(t *testing.T) {
	in := "cpu: 10\nram: 2k\nnoise\n\n\ncpu: 12\n"
	events := drain(t, NewPairReader(strings.NewReader(in), Options{}))
	require.Len(t, events, 2)

	first := events[0].(Extend).Set
	assert.Equal(t, []string{"cpu", "ram"}, first.Titles())
	assert.Equal(t, []float64{10}, first.Y[0].Values)
	assert.True(t, math.IsNaN(first.Y[1].Values[0]), "metric suffixes are not parsed in data")

	second := events[1].(Extend).Set
	assert.Equal(t, []string{"cpu"}, second.Titles())
	assert.Equal(t, []float64{12}, second.Y[0].Values)
}

func TestPairReader_XLabelKeepsColons(t *testing.T) {
	in := "time: 12:30\nv: 1\n"
	events := drain(t, NewPairReader(strings.NewReader(in), Options{X: schema.Title("time")}))
	require.Len(t, events, 1)

	set := events[0].(Extend).Set
	require.NotNil(t, set.X)
	assert.Equal(t, []string{"12:30"}, set.X.Labels)
}

func TestBatchReader_BlankLines(t *testing.T) {
	in := "a,b\n1,2\n3,4\n\na,b\n5,6\n"
	events := drain(t, NewBatchReader(strings.NewReader(in), Options{Mode: Batch}))
	require.Len(t, events, 2)

	first := events[0].(Epoch).Set
	assert.Equal(t, []float64{1, 3}, first.Y[0].Values)
	second := events[1].(Epoch).Set
	assert.Equal(t, []float64{5}, second.Y[0].Values)
}

func TestBatchReader_EpochColumn(t *testing.T) {
	in := "run,v\nr1,1\nr1,2\nr2,3\nr3,4\n"
	opts := Options{Mode: Batch, Epoch: schema.Title("run")}
	events := drain(t, NewBatchReader(strings.NewReader(in), opts))
	require.Len(t, events, 3)

	var labels []string
	for _, ev := range events {
		set := ev.(Epoch).Set
		labels = append(labels, set.Epoch)
		assert.Equal(t, []string{"v"}, set.Titles())
	}
	assert.Equal(t, []string{"r1", "r2", "r3"}, labels)
	assert.Equal(t, []float64{1, 2}, events[0].(Epoch).Set.Y[0].Values)
}

func TestBatchReader_Paired(t *testing.T) {
	in := "run: 1\na: 1\n\nrun: 1\nb: 2\n\nrun: 2\na: 3\n"
	opts := Options{Mode: Batch, Format: Paired, Epoch: schema.Title("run")}
	events := drain(t, NewBatchReader(strings.NewReader(in), opts))
	require.Len(t, events, 2)

	first := events[0].(Epoch).Set
	assert.Equal(t, "1", first.Epoch)
	assert.ElementsMatch(t, []string{"a", "b"}, first.Titles())
	assert.Equal(t, int64(2), first.SeriesSize())

	second := events[1].(Epoch).Set
	assert.Equal(t, "2", second.Epoch)
}

func TestBatchReader_HeaderOnly(t *testing.T) {
	events := drain(t, NewBatchReader(strings.NewReader("a,b\n\n"), Options{Mode: Batch}))
	assert.Empty(t, events)
}

func TestReadAll(t *testing.T) {
	set, err := ReadAll(strings.NewReader("a,b\n1,5\n\n2,6\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, set.Titles())
	assert.Equal(t, []float64{5, 6}, set.Y[0].Values)

	set, err = ReadAll(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.True(t, set.Empty())

	set, err = ReadAll(strings.NewReader("a: 1\n\na: 2\nb: 5\n"), Options{Format: Paired})
	require.NoError(t, err)
	assert.Equal(t, int64(2), set.SeriesSize())
	assert.Equal(t, []string{"b", "a"}, set.Titles())
}

func TestNewReader(t *testing.T) {
	r := strings.NewReader("")
	assert.IsType(t, &BatchReader{}, NewReader(r, Options{Mode: Batch}))
	assert.IsType(t, &PairReader{}, NewReader(r, Options{Format: Paired}))
	assert.IsType(t, &LineReader{}, NewReader(r, Options{Mode: Autorefresh}))
}
