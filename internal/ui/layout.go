package ui

import "github.com/five82/chartail/internal/state"

// Screen geometry.
const (
	// SeriesHeight is the number of lines per series: title and chart.
	SeriesHeight = 2

	// ChromeHeight is the lines not used by series: the X axis and the
	// status bar.
	ChromeHeight = 2

	// MarkerWidth is the leading column holding the ┌ and └ markers.
	MarkerWidth = 1

	// HelpWidth is the width of the help overlay.
	HelpWidth = 46
)

// chartView converts a terminal size into the data view the state windows
// are validated against.
func chartView(width, height int) state.View {
	return state.View{
		Columns: int64(max(width-MarkerWidth, 0)),
		Rows:    int64(max((height-ChromeHeight)/SeriesHeight, 0)),
	}
}
