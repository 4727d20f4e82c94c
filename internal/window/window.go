// Package window tracks which part of a data axis is on screen and where the
// cursor sits, clamping both against the data and view sizes given on each
// call.
package window

// initialCursor pins the cursor to the right edge on the first adjustment.
const initialCursor = 1024 * 1024

// Bounds are the sizes a window is validated against.
type Bounds struct {
	Data int64 // number of data items on the axis
	View int64 // number of items that fit on screen
}

// Window is the visible range of one axis.
type Window struct {
	// Offset is the index of the data item at the leftmost (topmost) cell.
	Offset int64
	// Cursor is relative to the left border of the screen.
	Cursor int64
}

// New returns a window at offset 0 with the cursor parked far right.
func New() Window {
	return Window{Cursor: initialCursor}
}

// SetOffset clamps o to [0, Data-View]. It also revalidates the cursor, so
// it reports a change when either moved.
func (w *Window) SetOffset(b Bounds, o int64) bool {
	cursor := w.MoveCursor(b, 0)
	o = max(min(b.Data-b.View, o), 0)
	if o != w.Offset {
		w.Offset = o
		return true
	}
	return cursor
}

// MoveOffset scrolls the window by delta items.
func (w *Window) MoveOffset(b Bounds, delta int64) bool {
	return w.SetOffset(b, w.Offset+delta)
}

// PageUp scrolls back one screen.
func (w *Window) PageUp(b Bounds) bool { return w.MoveOffset(b, -b.View) }

// PageDown scrolls forward one screen.
func (w *Window) PageDown(b Bounds) bool { return w.MoveOffset(b, b.View) }

// HalfPageUp scrolls back half a screen.
func (w *Window) HalfPageUp(b Bounds) bool { return w.MoveOffset(b, -b.View/2) }

// HalfPageDown scrolls forward half a screen.
func (w *Window) HalfPageDown(b Bounds) bool { return w.MoveOffset(b, b.View/2) }

// Begin scrolls to the first item.
func (w *Window) Begin(b Bounds) bool { return w.SetOffset(b, 0) }

// End scrolls so the last item is on screen.
func (w *Window) End(b Bounds) bool { return w.SetOffset(b, b.Data-b.View) }

// SetCursor moves the cursor to screen column c. The valid range is
// [-Offset, Data-Offset-1]; a target left of the screen or past its right
// edge scrolls the offset so the cursor stays visible.
func (w *Window) SetCursor(b Bounds, c int64) bool {
	c = max(-w.Offset, min(c, b.Data-w.Offset-1))
	switch {
	case c < 0:
		w.Cursor = 0
		w.Offset += c
		return true
	case c >= b.View:
		w.Cursor = b.View - 1
		w.Offset += c - w.Cursor
		return true
	case c != w.Cursor:
		w.Cursor = c
		return true
	}
	return false
}

// MoveCursor moves the cursor by delta columns, scrolling at the edges.
func (w *Window) MoveCursor(b Bounds, delta int64) bool {
	return w.SetCursor(b, w.Cursor+delta)
}

// CursorBegin moves the cursor to the first screen column.
func (w *Window) CursorBegin(b Bounds) bool { return w.SetCursor(b, 0) }

// CursorEnd moves the cursor to the last screen column.
func (w *Window) CursorEnd(b Bounds) bool { return w.SetCursor(b, b.View-1) }

// OnData revalidates offset and cursor after the data or the view changed
// size and reports whether either moved. Both are always revalidated.
func (w *Window) OnData(b Bounds) bool {
	offset := w.MoveOffset(b, 0)
	cursor := w.MoveCursor(b, 0)
	return offset || cursor
}

// Visible returns the [from, to) data range currently on screen.
func (w *Window) Visible(b Bounds) (from, to int64) {
	from = max(w.Offset, 0)
	to = min(from+max(b.View, 0), b.Data)
	if to < from {
		to = from
	}
	return from, to
}

// Index returns the data index under the cursor, or -1 when the cursor is
// outside the data.
func (w *Window) Index(b Bounds) int64 {
	i := w.Offset + w.Cursor
	if i < 0 || i >= b.Data {
		return -1
	}
	return i
}
