// Package history stores the series sets a session has produced: a list of
// epochs for batch input, or a single growing set for streaming input.
package history

import "github.com/five82/chartail/internal/series"

// Store is the epoch store State mutates and renders from.
type Store interface {
	Current() *series.Set
	AppendSlice(series.Slice) error
	Extend(series.Set)
	Append(series.Set)
	Replace(series.Set)
	Forward() bool
	Backward() bool
	Last() bool
	Navigable() bool
	Position() (index, count int)
}

// History keeps one set per epoch and a pointer to the displayed one.
type History struct {
	epochs      []series.Set
	current     int
	placeholder bool
	order       series.Order
}

// New returns a history holding one empty placeholder epoch.
func New(order series.Order) *History {
	return &History{epochs: []series.Set{{}}, placeholder: true, order: order}
}

func (h *History) Current() *series.Set { return &h.epochs[h.current] }

func (h *History) AppendSlice(s series.Slice) error {
	if err := h.Current().AppendSlice(s); err != nil {
		return err
	}
	h.placeholder = false
	return nil
}

func (h *History) Extend(set series.Set) {
	h.Current().AppendSet(set, h.order)
	h.placeholder = false
}

// Append starts a new epoch. The first real set replaces the placeholder, and
// a set labelled like the last epoch is merged into it.
func (h *History) Append(set series.Set) {
	last := len(h.epochs) - 1
	switch {
	case h.placeholder:
		set.Sort(h.order)
		h.epochs[last] = set
		h.placeholder = false
	case set.Epoch != "" && set.Epoch == h.epochs[last].Epoch:
		h.epochs[last].AppendSet(set, h.order)
	default:
		set.Sort(h.order)
		h.epochs = append(h.epochs, set)
	}
}

// Replace swaps the displayed epoch for set, sorted like every other epoch.
func (h *History) Replace(set series.Set) {
	set.Sort(h.order)
	h.Current().Replace(set)
	h.placeholder = false
}

func (h *History) Forward() bool {
	if h.current+1 >= len(h.epochs) {
		return false
	}
	h.current++
	return true
}

func (h *History) Backward() bool {
	if h.current == 0 {
		return false
	}
	h.current--
	return true
}

func (h *History) Last() bool {
	last := len(h.epochs) - 1
	if h.current == last {
		return false
	}
	h.current = last
	return true
}

func (h *History) Navigable() bool { return true }

func (h *History) Position() (int, int) { return h.current, len(h.epochs) }

// Live is the single-set store used by streaming and refreshing input.
type Live struct {
	set   series.Set
	order series.Order
}

// NewLive returns an empty live store.
func NewLive(order series.Order) *Live {
	return &Live{order: order}
}

func (l *Live) Current() *series.Set { return &l.set }

func (l *Live) AppendSlice(s series.Slice) error { return l.set.AppendSlice(s) }

func (l *Live) Extend(set series.Set) { l.set.AppendSet(set, l.order) }

// Append behaves like Extend; a live store has no epochs.
func (l *Live) Append(set series.Set) { l.Extend(set) }

// Replace swaps the whole set, sorted by the store order.
func (l *Live) Replace(set series.Set) {
	set.Sort(l.order)
	l.set.Replace(set)
}

func (l *Live) Forward() bool  { return false }
func (l *Live) Backward() bool { return false }
func (l *Live) Last() bool     { return false }

func (l *Live) Navigable() bool { return false }

func (l *Live) Position() (int, int) { return 0, 1 }
