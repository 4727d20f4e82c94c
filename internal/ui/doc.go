// Package ui renders chartail in the terminal with Bubble Tea.
//
// # Layout
//
// Every visible series takes two lines, a title line and a chart line, one
// cell per sample:
//
//	┌cpu          |0.731
//	└▂▃▃▅▆▇▆▅▃▂▁▁▂▃▅▆▇█
//	┌mem
//	└▅▅▅▅▅▆▆▆▆▆▆▆▇▇▇▇▇▇
//	|12:00:01        |12:00:19
//	 incremental            series 1..2 out of 2
//
// The line after the last series shows the X labels at both edges and under
// the cursor. The last line is the status bar: ingestion mode, pause state
// or the last error on the left, the visible series range on the right.
//
// # Cells
//
// Each sample is scaled to [-1, 1] by the series scale. Positive values
// fill upwards with the theme's green ramp, negative values hang downwards
// with the red ramp. NaN samples, from unparsable input, draw as '!'.
//
// # Data Flow
//
// The model owns a *state.State and is its only writer. Fetch events arrive
// through a command that blocks on the feed and re-arms after every event;
// key and mouse input map to state actions. Pausing flips the state at once
// and tells the feed asynchronously.
//
// # Key Files
//
//   - app.go: Model, Update loop, event bridge and Run
//   - chart.go, column.go, canvas.go: chart drawing
//   - status.go: status bar
//   - keys.go, help.go: key bindings and help overlay
//   - theme.go: color themes and styles
package ui
