package state

import (
	"time"

	"github.com/five82/chartail/internal/fetch"
	"github.com/five82/chartail/internal/history"
	"github.com/five82/chartail/internal/scale"
	"github.com/five82/chartail/internal/series"
	"github.com/five82/chartail/internal/window"
)

// View is the chart area the windows are validated against: data columns
// across and series rows down.
type View struct {
	Columns int64
	Rows    int64
}

// Options configure a State.
type Options struct {
	Mode    fetch.Mode
	Refresh time.Duration
	Scales  *scale.Config
	Order   series.Order
}

// State is everything the UI renders from. It is owned by the UI loop and
// not safe for concurrent use.
type State struct {
	store   history.Store
	x, y    window.Window
	scales  *scale.Config
	mode    fetch.Mode
	refresh time.Duration
	auto    bool
	err     string
}

// New returns an empty, unpaused state.
func New(opts Options) *State {
	var store history.Store
	if opts.Mode == fetch.Batch {
		store = history.New(opts.Order)
	} else {
		store = history.NewLive(opts.Order)
	}
	return &State{
		store:   store,
		x:       window.New(),
		y:       window.New(),
		scales:  opts.Scales,
		mode:    opts.Mode,
		refresh: opts.Refresh,
		auto:    true,
	}
}

func (s *State) xBounds(columns int64) window.Bounds {
	return window.Bounds{Data: s.store.Current().SeriesSize(), View: columns}
}

func (s *State) yBounds(rows int64) window.Bounds {
	return window.Bounds{Data: s.store.Current().SeriesCount(), View: rows}
}

// settle revalidates X after new data and tails it unless paused.
func (s *State) settle(width int64) {
	b := s.xBounds(width)
	s.x.OnData(b)
	if s.auto {
		s.x.End(b)
	}
}

// AppendSlice adds one row to the current set. A row that does not match the
// set shape is dropped and reported through Err.
func (s *State) AppendSlice(slice series.Slice, width int64) {
	s.err = ""
	if err := s.store.AppendSlice(slice); err != nil {
		s.err = err.Error()
		return
	}
	s.settle(width)
}

// Extend union-merges set into the current one.
func (s *State) Extend(set series.Set, width int64) {
	s.err = ""
	s.store.Extend(set)
	s.settle(width)
}

// AppendEpoch stores set as a new epoch and follows it unless paused.
func (s *State) AppendEpoch(set series.Set, width int64) {
	s.err = ""
	s.store.Append(set)
	if s.auto {
		s.store.Last()
	}
	s.settle(width)
}

// Replace swaps the current set for set.
func (s *State) Replace(set series.Set, width int64) {
	s.err = ""
	s.store.Replace(set)
	s.settle(width)
}

// OnError records a fetch failure. The previous data stays on screen.
func (s *State) OnError(err error) {
	if err == nil {
		return
	}
	s.err = err.Error()
}

// Pause toggles auto-tailing. The flag flips immediately; the fetcher learns
// about it asynchronously, so events already in flight are still merged.
func (s *State) Pause() bool {
	s.auto = !s.auto
	return true
}

// Resize revalidates both windows for a new view.
func (s *State) Resize(v View) {
	s.x.OnData(s.xBounds(v.Columns))
	s.y.OnData(s.yBounds(v.Rows))
}

// Click moves the X cursor to a screen column. Column 0 is the marker column.
func (s *State) Click(column int64, v View) bool {
	return s.x.SetCursor(s.xBounds(v.Columns), column-1)
}

// Wheel scrolls the series list.
func (s *State) Wheel(delta int64, v View) bool {
	return s.y.MoveOffset(s.yBounds(v.Rows), delta)
}

// Current returns the displayed set.
func (s *State) Current() *series.Set { return s.store.Current() }

// Scales materializes the configured scales against the current set. It
// returns nil when no scales were configured.
func (s *State) Scales() *scale.Scales {
	if s.scales == nil {
		return nil
	}
	return s.scales.Materialize(s.store.Current().Y)
}

// Err returns the status bar error, empty after a successful ingestion.
func (s *State) Err() string { return s.err }

// IsAuto reports whether the X window follows new data, i.e. not paused.
func (s *State) IsAuto() bool { return s.auto }

// Mode returns the ingestion mode.
func (s *State) Mode() fetch.Mode { return s.mode }

// Refresh returns the autorefresh interval, zero outside autorefresh mode.
func (s *State) Refresh() time.Duration { return s.refresh }

// Epoch returns the displayed epoch index and the number of epochs.
func (s *State) Epoch() (index, count int) { return s.store.Position() }

// X returns the horizontal window.
func (s *State) X() window.Window { return s.x }

// Y returns the vertical window.
func (s *State) Y() window.Window { return s.y }
