package ui

import "math"

// glyphs fill a cell from empty to full in eighths.
var glyphs = []rune(" ▁▂▃▄▅▆▇█")

// column is how one scaled sample is drawn: a glyph over a pair of ramp
// colors selected by level.
type column struct {
	glyph    rune
	level    int
	negative bool
	invalid  bool
}

// columnFor maps a value in [-1, 1] to a cell. Values outside are clamped,
// NaN is drawn as '!'.
//
// Each ramp level covers one color step subdivided by the eight glyph
// heights, so the six ramp colors give forty distinct steps per sign. An
// empty cell at level C looks like a full cell at level C-1, which is used
// to keep the top value in range.
func columnFor(v float64) column {
	if math.IsNaN(v) {
		return column{glyph: '!', invalid: true}
	}
	v = math.Max(-1, math.Min(1, v))

	height := len(glyphs) - 1
	scaled := math.Abs(v) * float64(rampLen-1)
	level := int(math.Floor(scaled))
	fill := int(math.Round((scaled - float64(level)) * float64(height)))
	if level+1 == rampLen && fill == 0 {
		level--
		fill = height
	}

	c := column{level: level, glyph: glyphs[fill]}
	if v < 0 {
		c.negative = true
		c.glyph = glyphs[height-fill]
	}
	return c
}

func (c column) paint() paint {
	switch {
	case c.invalid:
		return paintWarning
	case c.negative:
		return negativePaint(c.level)
	default:
		return positivePaint(c.level)
	}
}
