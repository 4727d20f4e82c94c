package ui

import (
	"github.com/mattn/go-runewidth"

	"github.com/five82/chartail/internal/scale"
	"github.com/five82/chartail/internal/state"
	"github.com/five82/chartail/internal/window"
)

// drawCharts paints the visible series and the X axis onto c. Each series
// takes two lines:
//
//	┌title    |12.000
//	└▁▂▃▅▇█▇▅▃▂
//
// The X axis follows the last series: first and last visible labels, and
// the label under the cursor.
func drawCharts(c *canvas, st *state.State, v state.View, showCursor bool) {
	w := int(v.Columns)
	if w <= 0 {
		return
	}

	data := st.Current()
	xw, yw := st.X(), st.Y()
	xb := window.Bounds{Data: data.SeriesSize(), View: v.Columns}
	yb := window.Bounds{Data: data.SeriesCount(), View: v.Rows}
	xFrom, xTo := xw.Visible(xb)
	yFrom, yTo := yw.Visible(yb)

	scales := st.Scales()

	for i, s := range data.Y[yFrom:yTo] {
		sc, ok := scale.Scale{}, false
		if scales != nil {
			sc, ok = scales.Pick(s.Title)
		}
		if !ok {
			sc = scale.Auto(s.Values)
		}

		y := i * SeriesHeight
		c.print(0, y, "┌"+truncate(s.Title, c.width-MarkerWidth), paintAccent)
		c.print(0, y+1, "└", paintAccent)

		to := min(int(xTo), len(s.Values))
		for j := int(xFrom); j < to; j++ {
			col := columnFor(sc.Run(s.Values[j]))
			x := MarkerWidth + j - int(xFrom)
			c.set(x, y+1, col.glyph, col.paint())

			if showCursor && int64(j-int(xFrom)) == xw.Cursor {
				drawLabel(c, x, y, formatValue(s.Values[j]), "|", w)
			}
		}
	}

	axis := int(yTo-yFrom) * SeriesHeight
	if data.X == nil || axis >= c.height {
		return
	}
	labels := data.X.Labels
	from := min(int(xFrom), len(labels))
	to := min(from+w, len(labels))
	visible := labels[from:to]
	if len(visible) == 0 {
		return
	}

	first, last := "|", "|"
	if from > 0 {
		first = "<"
	}
	if to < len(labels) {
		last = ">"
	}
	drawLabel(c, MarkerWidth, axis, visible[0], first, w)
	drawLabel(c, len(visible), axis, visible[len(visible)-1], last, w)

	if showCursor && xw.Cursor >= 0 && int(xw.Cursor) < len(visible) {
		drawLabel(c, MarkerWidth+int(xw.Cursor), axis, visible[xw.Cursor], "|", w)
	}
}

// drawLabel anchors a label at column x. In the left half of the chart the
// label runs right of the marker symbol, otherwise it ends at it.
func drawLabel(c *canvas, x, y int, label, symbol string, w int) {
	if x*2 < w {
		c.print(x, y, symbol+label, paintText)
		return
	}
	s := label + symbol
	c.print(x-runewidth.StringWidth(s)+1, y, s, paintText)
}
