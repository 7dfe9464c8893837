package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("lantern"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n\n")

	visibleRows := m.height - 7
	if visibleRows < 5 {
		visibleRows = 5
	}

	startIdx := 0
	if m.cursor >= visibleRows {
		startIdx = m.cursor - visibleRows + 1
	}
	endIdx := min(len(m.results), startIdx+visibleRows)

	for i := startIdx; i < endIdx; i++ {
		e := m.results[i]
		name := e.Name
		if e.IsDir {
			name += "/"
		}

		pathWidth := m.width - len(name) - 6
		line := fmt.Sprintf("  %s  %s",
			styleName(name, e.IsDir),
			pathStyle.Render(truncateMiddle(e.Path, max(10, pathWidth))),
		)
		if i == m.cursor {
			line = selectedStyle.Render("▸ " + name + "  " + truncateMiddle(e.Path, max(10, pathWidth)))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	for i := endIdx - startIdx; i < visibleRows; i++ {
		b.WriteString("\n")
	}

	help := "↑/↓ move | enter: open | esc: quit"
	if len(m.results) > 0 {
		help = fmt.Sprintf("%s [%d/%d]", help, m.cursor+1, len(m.results))
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m *Model) statusLine() string {
	if m.scanning {
		p := m.progress
		return fmt.Sprintf("Indexing... %s / %s folders | %s entries | %s",
			FormatCount(p.IndexedFolders),
			FormatCount(p.TotalFolders),
			FormatCount(p.TotalFiles),
			truncateMiddle(p.CurrentFolder, max(10, m.width-50)),
		)
	}
	return fmt.Sprintf("%s entries indexed", FormatCount(m.eng.Count()))
}

func styleName(name string, isDir bool) string {
	if isDir {
		return dirStyle.Render(name)
	}
	return fileStyle.Render(name)
}

func truncateMiddle(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	head := (maxLen - 3) / 2
	tail := maxLen - 3 - head
	return s[:head] + "..." + s[len(s)-tail:]
}
