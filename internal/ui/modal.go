package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/quill/internal/screen"
)

// confirmModal tracks which button of a confirmation dialog has focus. The
// dialog text itself lives in the screen state that owns the dialog.
type confirmModal struct {
	focusConfirm bool
}

// Update handles a key while the dialog is open. It returns done once the
// user picked a button, with confirmed telling which one.
func (c confirmModal) Update(msg tea.KeyMsg, keys keyMap) (next confirmModal, confirmed, done bool) {
	switch {
	case msg.String() == "y":
		return c, true, true
	case key.Matches(msg, keys.Cancel):
		return c, false, true
	case key.Matches(msg, keys.Confirm):
		return c, c.focusConfirm, true
	case key.Matches(msg, keys.Toggle):
		c.focusConfirm = !c.focusConfirm
	}
	return c, false, false
}

// View renders dialog centered on a width x height screen.
func (c confirmModal) View(dialog screen.Confirm, theme Theme, width, height int) string {
	styles := theme.Styles()

	button := func(label string, focused bool, danger bool) string {
		style := lipgloss.NewStyle().Padding(0, 2)
		switch {
		case focused && danger:
			style = style.Background(lipgloss.Color(theme.Danger)).Foreground(lipgloss.Color(theme.Background)).Bold(true)
		case focused:
			style = style.Background(lipgloss.Color(theme.SelectionBg)).Foreground(lipgloss.Color(theme.SelectionText)).Bold(true)
		default:
			style = style.Foreground(lipgloss.Color(theme.Muted))
		}
		return style.Render(label)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button(dialog.CancelLabel, !c.focusConfirm, false),
		"  ",
		button(dialog.ConfirmLabel, c.focusConfirm, true),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.Text.Bold(true).Render(dialog.Title),
		"",
		styles.MutedText.Render(dialog.Body),
		"",
		buttons,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(min(52, max(width-4, 20))).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
