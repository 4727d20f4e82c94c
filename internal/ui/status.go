package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/chartail/internal/fetch"
	"github.com/five82/chartail/internal/state"
	"github.com/five82/chartail/internal/window"
)

// modeText describes how data arrives: the refresh rate, the batch epoch or
// plain incremental input.
func modeText(st *state.State) string {
	switch st.Mode() {
	case fetch.Autorefresh:
		return fmt.Sprintf("refresh every %dms", st.Refresh().Milliseconds())
	case fetch.Batch:
		text := "batch update"
		if epoch := st.Current().Epoch; epoch != "" {
			text += ": " + epoch
		}
		if i, n := st.Epoch(); n > 1 {
			text += fmt.Sprintf(" [%d/%d]", i+1, n)
		}
		return text
	default:
		return "incremental"
	}
}

// statusMessage is the left part of the status bar. An error replaces
// everything else.
func statusMessage(st *state.State) string {
	if err := st.Err(); err != "" {
		return "error: " + err
	}
	if st.IsAuto() {
		return modeText(st)
	}
	return modeText(st) + ", paused"
}

// seriesRange is the right part of the status bar.
func seriesRange(st *state.State, v state.View) string {
	data := st.Current()
	yw := st.Y()
	from, to := yw.Visible(window.Bounds{Data: data.SeriesCount(), View: v.Rows})
	if to <= from {
		return "no data"
	}
	return fmt.Sprintf("series %d..%d out of %d", from+1, to, data.SeriesCount())
}

// renderStatus renders the one-line status bar.
func (m Model) renderStatus(v state.View) string {
	styles := m.theme.Styles()
	bg := newBarStyle(m.theme.Surface)

	msgStyle := styles.Status
	if m.state.Err() != "" {
		msgStyle = styles.StatusError
	}

	var prefix string
	if m.waiting() {
		prefix = msgStyle.Render(" ") + m.spinner.View()
	}

	right := seriesRange(m.state, v)
	avail := m.width - lipgloss.Width(prefix) - runewidth.StringWidth(right) - 3
	msg := msgStyle.Render(" " + truncate(statusMessage(m.state), max(avail, 0)) + " ")

	left := prefix + msg
	gap := m.width - lipgloss.Width(left) - runewidth.StringWidth(right)
	if gap < 1 {
		return bg.fill(left, m.width)
	}
	return left + bg.spaces(gap) + bg.render(right, styles.StatusBar)
}
