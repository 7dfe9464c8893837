package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case bootstrapMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.scanning = msg.scanning
		m.refreshResults()
		if m.scanning {
			return m, pollProgress()
		}
		return m, nil

	case progressTickMsg:
		m.progress = m.eng.Progress()
		if m.eng.Scanning() {
			return m, pollProgress()
		}
		// Scan committed: results now come from the new snapshot.
		m.scanning = false
		m.refreshResults()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "ctrl+k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "ctrl+j":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if len(m.results) > 0 && m.cursor < len(m.results) {
			m.selected = m.results[m.cursor].Path
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refreshResults()
	}
	return m, cmd
}
