package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chartail/internal/state"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	ToggleCursor key.Binding
	Pause        key.Binding

	// Series (vertical)
	Down         key.Binding
	Up           key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Samples (horizontal)
	CursorRight key.Binding
	CursorLeft  key.Binding
	OffsetRight key.Binding
	OffsetLeft  key.Binding
	CursorBegin key.Binding
	CursorEnd   key.Binding
	JumpStart   key.Binding
	JumpEnd     key.Binding

	// Epochs
	EpochForward  key.Binding
	EpochBackward key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
		ToggleCursor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle cursor"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Pause/resume"),
		),

		// Series
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Next series"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Previous series"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "First series"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "Last series"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+b", "pgup"),
			key.WithHelp("ctrl+b", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+f", "pgdown"),
			key.WithHelp("ctrl+f", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		// Samples
		CursorRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Cursor right"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Cursor left"),
		),
		OffsetRight: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Scroll right"),
		),
		OffsetLeft: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "Scroll left"),
		),
		CursorBegin: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Cursor to left edge"),
		),
		CursorEnd: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Cursor to right edge"),
		),
		JumpStart: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "Jump to start"),
		),
		JumpEnd: key.NewBinding(
			key.WithKeys("$", "end"),
			key.WithHelp("$", "Jump to end"),
		),

		// Epochs
		EpochForward: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Next epoch"),
		),
		EpochBackward: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Previous epoch"),
		),
	}
}

// actionFor maps a key press to a state action.
func (k keyMap) actionFor(msg tea.KeyMsg) state.Action {
	bindings := []struct {
		binding key.Binding
		action  state.Action
	}{
		{k.Down, state.SeriesDown},
		{k.Up, state.SeriesUp},
		{k.Top, state.SeriesTop},
		{k.Bottom, state.SeriesBottom},
		{k.PageUp, state.SeriesPageUp},
		{k.PageDown, state.SeriesPageDown},
		{k.HalfPageUp, state.SeriesHalfPageUp},
		{k.HalfPageDown, state.SeriesHalfPageDown},
		{k.CursorRight, state.CursorRight},
		{k.CursorLeft, state.CursorLeft},
		{k.OffsetRight, state.OffsetRight},
		{k.OffsetLeft, state.OffsetLeft},
		{k.CursorBegin, state.CursorBegin},
		{k.CursorEnd, state.CursorEnd},
		{k.JumpStart, state.JumpStart},
		{k.JumpEnd, state.JumpEnd},
		{k.EpochForward, state.EpochForward},
		{k.EpochBackward, state.EpochBackward},
		{k.Pause, state.TogglePause},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return state.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Series
		{k.Down, k.Up, k.Top, k.Bottom, k.PageDown, k.PageUp, k.HalfPageDown, k.HalfPageUp},
		// Samples
		{k.CursorRight, k.CursorLeft, k.OffsetRight, k.OffsetLeft, k.CursorBegin, k.CursorEnd, k.JumpStart, k.JumpEnd},
		// General
		{k.EpochForward, k.EpochBackward, k.Pause, k.ToggleCursor, k.CycleTheme, k.Help, k.Quit},
	}
}
