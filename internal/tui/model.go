// Package tui implements the interactive launcher front-end: a query
// box over the committed index with live progress while a scan runs.
package tui

import (
	"time"

	"lantern/internal/engine"
	"lantern/internal/entry"
	"lantern/internal/scan"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval is how often the model polls scan progress while a
// scan is running. Matches the engine's publish cadence.
const pollInterval = 200 * time.Millisecond

// Model holds the launcher TUI state.
type Model struct {
	eng *engine.Engine

	input   textinput.Model
	results []entry.Entry
	cursor  int

	scanning bool
	progress scan.Progress

	selected string
	width    int
	height   int
	err      error
}

// NewModel creates a launcher model over the given engine.
func NewModel(eng *engine.Engine) *Model {
	input := textinput.New()
	input.Placeholder = "type to search"
	input.Prompt = promptStyle.Render("> ")
	input.Focus()

	return &Model{
		eng:   eng,
		input: input,
	}
}

// Selected returns the path chosen with enter, or "" if the user quit
// without choosing.
func (m *Model) Selected() string {
	return m.selected
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.bootstrap)
}

type bootstrapMsg struct {
	scanning bool
	err      error
}

// bootstrap hydrates from the persisted index, falling back to a
// fresh background scan when none exists.
func (m *Model) bootstrap() tea.Msg {
	if m.eng.LoadPersistedIndex() {
		return bootstrapMsg{}
	}
	if err := m.eng.StartScan(); err != nil {
		return bootstrapMsg{err: err}
	}
	return bootstrapMsg{scanning: true}
}

type progressTickMsg struct{}

func pollProgress() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

// refreshResults re-runs the current query against the committed
// snapshot. Queries never wait on an in-flight scan.
func (m *Model) refreshResults() {
	m.results = m.eng.Search(m.input.Value())
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}
}
