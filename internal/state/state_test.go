package state

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/five82/chartail/internal/fetch"
	"github.com/five82/chartail/internal/scale"
	"github.com/five82/chartail/internal/series"
)

func header(titles ...string) series.Set {
	set := series.Set{}
	for _, t := range titles {
		set.Y = append(set.Y, series.WithTitle(t))
	}
	return set
}

func row(values ...float64) series.Slice {
	return series.Slice{Y: values}
}

func TestIncrementalIngestionTailsEnd(t *testing.T) {
	s := New(Options{Mode: fetch.Incremental})
	const width = 10

	s.Extend(header("a", "b"), width)
	for i := 0; i < 20; i++ {
		s.AppendSlice(row(float64(i), float64(i*2)), width)
	}

	if got := s.Current().SeriesSize(); got != 20 {
		t.Fatalf("SeriesSize = %d, want 20", got)
	}
	if got := s.X().Offset; got != 10 {
		t.Fatalf("X offset = %d, want 10", got)
	}
	// The cursor collapsed onto the first point while the set was empty and
	// tailing moves the offset only.
	if got := s.X().Cursor; got != 0 {
		t.Fatalf("X cursor = %d, want 0", got)
	}
	if s.Err() != "" {
		t.Fatalf("Err = %q, want empty", s.Err())
	}
}

func TestPauseRaceStillMergesInFlightData(t *testing.T) {
	s := New(Options{Mode: fetch.Incremental})
	const width = 10

	s.Extend(header("a"), width)
	for i := 0; i < 20; i++ {
		s.AppendSlice(row(float64(i)), width)
	}
	if !s.Apply(TogglePause, View{Columns: width, Rows: 5}) {
		t.Fatal("Apply(TogglePause) = false, want true")
	}
	if s.IsAuto() {
		t.Fatal("IsAuto = true after pause")
	}

	// Rows the fetcher read before it saw the pause.
	for i := 0; i < 5; i++ {
		s.AppendSlice(row(float64(i)), width)
	}
	if got := s.Current().SeriesSize(); got != 25 {
		t.Fatalf("SeriesSize = %d, want 25", got)
	}
	if got := s.X().Offset; got != 10 {
		t.Fatalf("X offset = %d, want 10 (no tailing while paused)", got)
	}

	s.Pause()
	s.AppendSlice(row(1), width)
	if got := s.X().Offset; got != 16 {
		t.Fatalf("X offset after resume = %d, want 16", got)
	}
}

func TestShapeMismatchSurfacesError(t *testing.T) {
	s := New(Options{})
	s.Extend(header("a", "b"), 10)
	s.AppendSlice(row(1), 10)

	if !strings.Contains(s.Err(), "shape") {
		t.Fatalf("Err = %q, want shape mismatch", s.Err())
	}
	if got := s.Current().SeriesSize(); got != 0 {
		t.Fatalf("SeriesSize = %d, want 0", got)
	}

	s.AppendSlice(row(1, 2), 10)
	if s.Err() != "" {
		t.Fatalf("Err = %q, want cleared by next success", s.Err())
	}
}

func TestErrorKeptUntilNextIngestion(t *testing.T) {
	s := New(Options{Mode: fetch.Autorefresh})
	s.Replace(series.Set{Y: []series.Series{{Title: "a", Values: []float64{1}}}}, 10)

	s.OnError(errors.New("boom"))
	if s.Err() != "boom" {
		t.Fatalf("Err = %q, want boom", s.Err())
	}
	s.Apply(CursorLeft, View{Columns: 10, Rows: 5})
	if s.Err() != "boom" {
		t.Fatalf("navigation cleared error: %q", s.Err())
	}
	if got := s.Current().Titles(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("data after error = %v, want [a]", got)
	}

	s.Replace(series.Set{Y: []series.Series{{Title: "b", Values: []float64{2}}}}, 10)
	if s.Err() != "" {
		t.Fatalf("Err = %q, want empty after success", s.Err())
	}
}

func TestBatchEpochs(t *testing.T) {
	s := New(Options{Mode: fetch.Batch})
	epoch := func(label string, v float64) series.Set {
		return series.Set{Epoch: label, Y: []series.Series{{Title: "a", Values: []float64{v}}}}
	}
	v := View{Columns: 10, Rows: 5}

	s.AppendEpoch(epoch("one", 1), 10)
	s.AppendEpoch(epoch("two", 2), 10)
	if idx, count := s.Epoch(); idx != 1 || count != 2 {
		t.Fatalf("Epoch = (%d, %d), want (1, 2)", idx, count)
	}

	if !s.Apply(EpochBackward, v) {
		t.Fatal("EpochBackward = false, want true")
	}
	if s.Apply(EpochBackward, v) {
		t.Fatal("second EpochBackward = true, want false")
	}

	s.Pause()
	s.AppendEpoch(epoch("three", 3), 10)
	if idx, count := s.Epoch(); idx != 0 || count != 3 {
		t.Fatalf("paused Epoch = (%d, %d), want (0, 3)", idx, count)
	}
}

func TestLiveModeHasNoEpochs(t *testing.T) {
	s := New(Options{Mode: fetch.Incremental})
	s.AppendEpoch(header("a"), 10)
	if s.Apply(EpochForward, View{Columns: 10, Rows: 5}) {
		t.Fatal("EpochForward in live mode = true, want false")
	}
	if idx, count := s.Epoch(); idx != 0 || count != 1 {
		t.Fatalf("Epoch = (%d, %d), want (0, 1)", idx, count)
	}
}

func TestApplyNavigation(t *testing.T) {
	s := New(Options{})
	set := series.Set{}
	for _, title := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		set.Y = append(set.Y, series.Series{Title: title, Values: make([]float64, 30)})
	}
	s.Replace(set, 10)
	v := View{Columns: 10, Rows: 3}
	s.Resize(v)

	tests := []struct {
		action     Action
		wantY      int64
		wantX      int64
		wantCursor int64
	}{
		{SeriesDown, 1, 20, 9},
		{SeriesBottom, 5, 20, 9},
		{SeriesUp, 4, 20, 9},
		{SeriesTop, 0, 20, 9},
		{SeriesPageDown, 3, 20, 9},
		{SeriesHalfPageUp, 2, 20, 9},
		{CursorLeft, 2, 20, 8},
		{CursorBegin, 2, 20, 0},
		{OffsetLeft, 2, 19, 0},
		{JumpStart, 2, 0, 0},
		{CursorEnd, 2, 0, 9},
		{JumpEnd, 2, 20, 9},
		{OffsetRight, 2, 20, 9},
	}
	for _, tt := range tests {
		s.Apply(tt.action, v)
		if s.Y().Offset != tt.wantY || s.X().Offset != tt.wantX || s.X().Cursor != tt.wantCursor {
			t.Fatalf("after action %d: y=%d x=%d cursor=%d, want y=%d x=%d cursor=%d",
				tt.action, s.Y().Offset, s.X().Offset, s.X().Cursor, tt.wantY, tt.wantX, tt.wantCursor)
		}
	}

	if s.Apply(ActionNone, v) {
		t.Fatal("Apply(ActionNone) = true, want false")
	}
}

func TestJumpEndFallsBackToCursor(t *testing.T) {
	s := New(Options{})
	s.Replace(series.Set{Y: []series.Series{{Title: "a", Values: make([]float64, 30)}}}, 10)
	v := View{Columns: 10, Rows: 3}

	s.Apply(CursorBegin, v)
	if !s.Apply(JumpEnd, v) {
		t.Fatal("JumpEnd = false, want cursor move")
	}
	if s.X().Cursor != 9 {
		t.Fatalf("cursor = %d, want 9", s.X().Cursor)
	}
}

func TestClickAndWheel(t *testing.T) {
	s := New(Options{})
	set := series.Set{}
	for _, title := range []string{"a", "b", "c", "d"} {
		set.Y = append(set.Y, series.Series{Title: title, Values: make([]float64, 30)})
	}
	s.Replace(set, 10)
	v := View{Columns: 10, Rows: 2}

	if !s.Click(4, v) {
		t.Fatal("Click = false, want true")
	}
	if s.X().Cursor != 3 {
		t.Fatalf("cursor = %d, want 3", s.X().Cursor)
	}
	if !s.Wheel(1, v) || s.Y().Offset != 1 {
		t.Fatalf("wheel down: offset = %d, want 1", s.Y().Offset)
	}
	if !s.Wheel(-1, v) || s.Y().Offset != 0 {
		t.Fatalf("wheel up: offset = %d, want 0", s.Y().Offset)
	}
}

func TestScalesMaterialized(t *testing.T) {
	conf, err := scale.ParseConfig("cpu:auto")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	s := New(Options{Scales: conf})
	s.Replace(series.Set{Y: []series.Series{
		{Title: "cpu1", Values: []float64{-5, 10}},
		{Title: "cpu2", Values: []float64{20}},
	}}, 10)

	sc, ok := s.Scales().Pick("cpu2")
	if !ok {
		t.Fatal("Pick(cpu2) = false, want true")
	}
	if a, b, c := sc.Domain(); a != -5 || b != 0 || c != 20 {
		t.Fatalf("Domain = (%v, %v, %v), want (-5, 0, 20)", a, b, c)
	}

	if New(Options{}).Scales() != nil {
		t.Fatal("Scales without config = non-nil, want nil")
	}
}

// ingestLines feeds CSV input through the incremental reader the way the UI
// loop does.
func ingestLines(t *testing.T, s *State, input string) {
	t.Helper()
	r := fetch.NewLineReader(strings.NewReader(input), fetch.Options{Mode: fetch.Incremental})
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		switch e := ev.(type) {
		case fetch.Header:
			s.Extend(e.Set, 10)
		case fetch.Row:
			s.AppendSlice(e.Slice, 10)
		default:
			t.Fatalf("unexpected event %T", ev)
		}
	}
}

func valuesOf(t *testing.T, set *series.Set, title string) []float64 {
	t.Helper()
	for _, y := range set.Y {
		if y.Title == title {
			return y.Values
		}
	}
	t.Fatalf("no series %q in %v", title, set.Titles())
	return nil
}

func sameValues(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.IsNaN(want[i]) {
			if !math.IsNaN(got[i]) {
				return false
			}
			continue
		}
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestRepeatedHeaderKeepsValuesWithTheirSeries(t *testing.T) {
	s := New(Options{Mode: fetch.Incremental})
	ingestLines(t, s, "a,b\n1,100\n\na,b\n5,6\n")

	if s.Err() != "" {
		t.Fatalf("Err = %q, want empty", s.Err())
	}
	// The second header resorts the set by magnitude.
	if got := s.Current().Titles(); got[0] != "b" || got[1] != "a" {
		t.Fatalf("Titles = %v, want [b a]", got)
	}
	if got := valuesOf(t, s.Current(), "a"); !sameValues(got, []float64{1, 5}) {
		t.Fatalf("a = %v, want [1 5]", got)
	}
	if got := valuesOf(t, s.Current(), "b"); !sameValues(got, []float64{100, 6}) {
		t.Fatalf("b = %v, want [100 6]", got)
	}
}

func TestNewHeaderUnionsSeries(t *testing.T) {
	s := New(Options{Mode: fetch.Incremental})
	ingestLines(t, s, "a,b\n1,2\n\nc,d\n3,4\n")

	if s.Err() != "" {
		t.Fatalf("Err = %q, want empty", s.Err())
	}
	nan := math.NaN()
	want := map[string][]float64{
		"a": {1, nan},
		"b": {2, nan},
		"c": {nan, 3},
		"d": {nan, 4},
	}
	for title, w := range want {
		if got := valuesOf(t, s.Current(), title); !sameValues(got, w) {
			t.Fatalf("%s = %v, want %v", title, got, w)
		}
	}
}
