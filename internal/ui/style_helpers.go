package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barStyle paints status bar segments on one background color. lipgloss
// resets the background between separately rendered segments, so every
// gap is rendered with the bar color explicitly.
type barStyle struct {
	bg    lipgloss.Color
	space string
}

func newBarStyle(bgColor string) barStyle {
	bg := lipgloss.Color(bgColor)
	return barStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// render styles each word of text separately and joins them with bar
// colored spaces.
func (b barStyle) render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return style.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

func (b barStyle) spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(b.space, n)
}

// fill pads rendered content to width with the bar color.
func (b barStyle) fill(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(content)
}
