package state

// Action is a navigation or control request from the UI.
type Action int

const (
	ActionNone Action = iota

	// vertical
	SeriesDown
	SeriesUp
	SeriesTop
	SeriesBottom
	SeriesPageUp
	SeriesPageDown
	SeriesHalfPageUp
	SeriesHalfPageDown

	// horizontal
	CursorRight
	CursorLeft
	OffsetRight
	OffsetLeft
	CursorBegin
	CursorEnd
	JumpStart
	JumpEnd

	// epochs
	EpochForward
	EpochBackward

	TogglePause
)

// Apply performs a and reports whether anything changed and a redraw is
// needed.
func (s *State) Apply(a Action, v View) bool {
	xb := s.xBounds(v.Columns)
	yb := s.yBounds(v.Rows)

	switch a {
	case SeriesDown:
		return s.y.MoveOffset(yb, 1)
	case SeriesUp:
		return s.y.MoveOffset(yb, -1)
	case SeriesTop:
		return s.y.Begin(yb)
	case SeriesBottom:
		return s.y.End(yb)
	case SeriesPageUp:
		return s.y.PageUp(yb)
	case SeriesPageDown:
		return s.y.PageDown(yb)
	case SeriesHalfPageUp:
		return s.y.HalfPageUp(yb)
	case SeriesHalfPageDown:
		return s.y.HalfPageDown(yb)

	case CursorRight:
		return s.x.MoveCursor(xb, 1)
	case CursorLeft:
		return s.x.MoveCursor(xb, -1)
	case OffsetRight:
		return s.x.MoveOffset(xb, 1)
	case OffsetLeft:
		return s.x.MoveOffset(xb, -1)
	case CursorBegin:
		return s.x.CursorBegin(xb)
	case CursorEnd:
		return s.x.CursorEnd(xb)
	case JumpEnd:
		return s.x.End(xb) || s.x.CursorEnd(xb)
	case JumpStart:
		return s.x.Begin(xb) || s.x.CursorBegin(xb)

	case EpochForward:
		return s.moveEpoch(s.store.Forward, v)
	case EpochBackward:
		return s.moveEpoch(s.store.Backward, v)

	case TogglePause:
		return s.Pause()
	}
	return false
}

func (s *State) moveEpoch(step func() bool, v View) bool {
	if !step() {
		return false
	}
	s.Resize(v)
	return true
}
