package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Notes",
			items: []helpItem{
				{"enter", "Open note"},
				{"n", "New note"},
				{"e", "Edit note"},
				{"d", "Delete note"},
				{"/", "Filter"},
				{"o", "Toggle sort order"},
				{",", "Settings"},
			},
		},
		{
			title: "Note",
			items: []helpItem{
				{"s", "Share"},
				{"r", "Reload"},
				{"j/k", "Scroll"},
				{"esc", "Back"},
			},
		},
		{
			title: "Editor",
			items: []helpItem{
				{"ctrl+s", "Save and close"},
				{"ctrl+x", "Delete"},
				{"ctrl+y", "Share draft"},
				{"ctrl+r", "Retry a failed load"},
				{"esc", "Back (twice to discard)"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return m.placeCentered(modal.Render(b.String()))
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
