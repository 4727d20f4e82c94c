package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// paint selects the style of a canvas cell.
type paint int

const (
	paintText paint = iota
	paintFaint
	paintAccent
	paintWarning
	paintFill // first column fill; positive levels, then negative levels
)

func positivePaint(level int) paint { return paintFill + paint(level) }
func negativePaint(level int) paint { return paintFill + paint(rampLen-1+level) }

func (s Styles) styleFor(p paint) lipgloss.Style {
	switch {
	case p >= paintFill+rampLen-1:
		return s.Negative[p-paintFill-(rampLen-1)]
	case p >= paintFill:
		return s.Positive[p-paintFill]
	case p == paintFaint:
		return s.FaintText
	case p == paintAccent:
		return s.AccentText
	case p == paintWarning:
		return s.WarningText
	}
	return s.Text
}

// cell is one terminal cell. A zero rune marks the second half of a wide
// rune.
type cell struct {
	r rune
	p paint
}

// canvas is a fixed-size grid that later writes overwrite, so labels can be
// drawn on top of charts.
type canvas struct {
	width, height int
	cells         []cell
}

func newCanvas(width, height int) *canvas {
	width, height = max(width, 0), max(height, 0)
	c := &canvas{width: width, height: height, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', p: paintText}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, p: p}
}

// print writes s starting at x, clipping at both edges.
func (c *canvas) print(x, y int, s string, p paint) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.width {
			return
		}
		if x >= 0 {
			c.set(x, y, r, p)
			if w == 2 {
				c.set(x+1, y, 0, p)
			}
		}
		x += w
	}
}

// line returns row y as plain text.
func (c *canvas) line(y int) string {
	var b strings.Builder
	for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
		if cl.r != 0 {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}

// render styles every run of equally painted cells.
func (c *canvas) render(styles Styles) string {
	lines := make([]string, 0, c.height)
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		var b strings.Builder
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			p := row[start].p
			run.Reset()
			end := start
			for ; end < len(row) && row[end].p == p; end++ {
				if row[end].r != 0 {
					run.WriteRune(row[end].r)
				}
			}
			b.WriteString(styles.styleFor(p).Render(run.String()))
			start = end
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
