package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// rampLen is the number of colors in an intensity ramp. Index 0 is the
// zero level, the last index the saturated one.
const rampLen = 6

// Theme defines colors for the chart surface and its chrome.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string // status bar

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string

	// Column fills for values above and below the scale midpoint.
	Positive [rampLen]string
	Negative [rampLen]string
}

// Styles returns Lipgloss styles for this theme. Every style carries the
// theme background so adjacent cells never show the terminal default.
func (t Theme) Styles() Styles {
	bg := lipgloss.Color(t.Background)
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(c))
	}

	s := Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)),
		StatusError: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true),
		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),
	}

	// A positive cell at level i is the glyph in ramp[i+1] over ramp[i].
	// Negative cells swap the two.
	for i := 0; i < rampLen-1; i++ {
		s.Positive[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(t.Positive[i])).
			Foreground(lipgloss.Color(t.Positive[i+1]))
		s.Negative[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(t.Negative[i+1])).
			Foreground(lipgloss.Color(t.Negative[i]))
	}
	return s
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Status bar
	Status      lipgloss.Style
	StatusError lipgloss.Style
	StatusBar   lipgloss.Style

	// Column fills, one per level
	Positive [rampLen - 1]lipgloss.Style
	Negative [rampLen - 1]lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
	"Classic": classicTheme(),
}

var themeOrder = []string{"Dracula", "Slate", "Classic"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com/contribute
	return Theme{
		Name: "Dracula",

		Background: "#282a36", // background
		Surface:    "#44475a", // current line

		Text:    "#f8f8f2", // foreground
		Muted:   "#bfbfbf",
		Faint:   "#6272a4", // comment
		Accent:  "#bd93f9", // purple
		Warning: "#f1fa8c", // yellow
		Danger:  "#ff5555", // red

		Positive: [rampLen]string{"#282a36", "#2f4a3a", "#356b3f", "#3f9a4f", "#48c865", "#50fa7b"},
		Negative: [rampLen]string{"#282a36", "#4a2f3a", "#6b353f", "#9a3f48", "#cc4a4f", "#ff5555"},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#1e293b", // slate-800

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500

		// emerald-950..400, red-950..400
		Positive: [rampLen]string{"#020617", "#022c22", "#065f46", "#047857", "#10b981", "#34d399"},
		Negative: [rampLen]string{"#020617", "#450a0a", "#7f1d1d", "#b91c1c", "#ef4444", "#f87171"},
	}
}

func classicTheme() Theme {
	// xterm 256-color cube on a white background.
	return Theme{
		Name: "Classic",

		Background: "231",
		Surface:    "252",

		Text:    "16",
		Muted:   "240",
		Faint:   "245",
		Accent:  "16",
		Warning: "136",
		Danger:  "124",

		Positive: [rampLen]string{"231", "194", "150", "107", "64", "22"},
		Negative: [rampLen]string{"231", "224", "181", "131", "88", "52"},
	}
}
