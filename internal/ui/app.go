package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chartail/internal/fetch"
	"github.com/five82/chartail/internal/prefs"
	"github.com/five82/chartail/internal/state"
)

// Feed is the data side of the UI: ingestion events and a way to pause
// them.
type Feed interface {
	Events() <-chan fetch.Event
	Send(ctx context.Context, c fetch.Control)
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Feed       Feed
	State      *state.State
	ThemeName  string
	HideCursor bool
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	feed      Feed
	state     *state.State
	prefsPath string

	// UI state
	theme      Theme
	keys       keyMap
	help       help.Model
	spinner    spinner.Model
	width      int
	height     int
	ready      bool
	showHelp   bool
	showCursor bool

	// feedDone is set once the feed sent its last event.
	feedDone bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	m := Model{
		ctx:        ctx,
		feed:       opts.Feed,
		state:      opts.State,
		prefsPath:  opts.PrefsPath,
		keys:       DefaultKeyMap(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		showCursor: !opts.HideCursor,
	}
	m.setTheme(GetTheme(themeName))
	return m
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.help = newHelp(t)
	m.spinner.Style = t.Styles().Status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitEvent(m.feed))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.state.Resize(m.view())
		return m, nil

	case eventMsg:
		return m.handleEvent(msg.event)

	case spinner.TickMsg:
		if !m.waiting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// view is the data area for the current terminal size.
func (m Model) view() state.View {
	return chartView(m.width, m.height)
}

// waiting reports whether nothing has arrived yet.
func (m Model) waiting() bool {
	return !m.feedDone && m.state.Err() == "" && m.state.Current().Empty()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleCursor):
		m.showCursor = !m.showCursor
		m.savePrefs()
		return m, nil
	}

	action := m.keys.actionFor(msg)
	if action == state.ActionNone {
		return m, nil
	}
	m.state.Apply(action, m.view())
	if action == state.TogglePause {
		c := fetch.Pause
		if m.state.IsAuto() {
			c = fetch.Resume
		}
		return m, sendControl(m.ctx, m.feed, c)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	v := m.view()
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.state.Wheel(1, v)
	case msg.Button == tea.MouseButtonWheelUp:
		m.state.Wheel(-1, v)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.state.Click(int64(msg.X), v)
	}
}

// handleEvent merges one fetch event into the state and waits for the next.
// Failed and Done are the last events a feed sends.
func (m Model) handleEvent(ev fetch.Event) (tea.Model, tea.Cmd) {
	v := m.view()
	switch e := ev.(type) {
	case fetch.Header:
		m.state.Extend(e.Set, v.Columns)
	case fetch.Row:
		m.state.AppendSlice(e.Slice, v.Columns)
	case fetch.Extend:
		m.state.Extend(e.Set, v.Columns)
	case fetch.Epoch:
		m.state.AppendEpoch(e.Set, v.Columns)
	case fetch.Replace:
		m.state.Replace(e.Set, v.Columns)
	case fetch.Failed:
		m.state.OnError(e.Err)
		m.feedDone = true
		return m, nil
	case fetch.Done:
		m.feedDone = true
		return m, nil
	}
	m.state.Resize(v)
	return m, waitEvent(m.feed)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, HideCursor: !m.showCursor}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// renderMain renders the charts above the status bar.
func (m Model) renderMain() string {
	v := m.view()
	c := newCanvas(m.width, max(m.height-1, 0))
	drawCharts(c, m.state, v, m.showCursor)

	var b strings.Builder
	if c.height > 0 {
		b.WriteString(c.render(m.theme.Styles()))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus(v))
	return b.String()
}

// Messages

type eventMsg struct {
	event fetch.Event
}

// Commands

// waitEvent blocks on the feed until the next event.
func waitEvent(feed Feed) tea.Cmd {
	if feed == nil {
		return nil
	}
	events := feed.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventMsg{event: fetch.Done{}}
		}
		return eventMsg{event: ev}
	}
}

func sendControl(ctx context.Context, feed Feed, c fetch.Control) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		feed.Send(ctx, c)
		return nil
	}
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
