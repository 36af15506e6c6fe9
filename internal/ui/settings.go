package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Settings rows, top to bottom.
const (
	settingTheme = iota
	settingSort
	settingMarkdown
	settingCount
)

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleGlobalKey(msg); ok {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		cmd := m.back(0)
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.settingsCursor = (m.settingsCursor + settingCount - 1) % settingCount
	case key.Matches(msg, m.keys.Down):
		m.settingsCursor = (m.settingsCursor + 1) % settingCount
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Toggle):
		m.changeSetting(m.settingsCursor)
	}
	return m, nil
}

// changeSetting advances the setting at row and saves immediately.
func (m *Model) changeSetting(row int) {
	switch row {
	case settingTheme:
		m.prefs.Theme = NextTheme(m.theme.Name)
		m.theme = GetTheme(m.prefs.Theme)
		m.applyTheme()
	case settingSort:
		m.prefs.Sort = m.prefs.NextSort()
	case settingMarkdown:
		m.prefs.RenderMarkdown = !m.prefs.RenderMarkdown
	default:
		return
	}
	m.savePrefs()
}

func (m Model) renderSettings() string {
	height := max(m.height-chromeLines, 3)
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)

	rows := []struct{ label, value string }{
		{m.text.Theme, m.theme.Name},
		{m.text.SortOrder, m.sortLabel()},
		{m.text.RenderMarkdown, ternary(m.prefs.RenderMarkdown, m.text.On, m.text.Off)},
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, len([]rune(r.label)))
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "")
	for i, r := range rows {
		line := " " + padRight(r.label, labelWidth) + "   " + r.value + " "
		if i == m.settingsCursor {
			lines = append(lines, styles.Selected.Render(line))
			continue
		}
		lines = append(lines, styles.Text.Render(" "+padRight(r.label, labelWidth)+"   ")+styles.AccentText.Render(r.value))
	}

	return m.renderTitledBox(m.text.Settings, strings.Join(lines, "\n"), m.width, height, true)
}
