package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/quill/internal/nav"
	"github.com/five82/quill/internal/screen"
)

// renderHeader renders the status bar: logo, screen title, note count,
// busy indicator and the current notice.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < 80

	parts := []string{bg.Render("quill", styles.Logo)}

	if title := m.screenTitle(); title != "" {
		parts = append(parts, bg.Render(truncate(title, ternaryInt(compact, 20, 40)), styles.Text.Bold(true)))
	}

	if m.route().IsList() {
		snap := m.snapshot.Snapshot()
		parts = append(parts,
			bg.Render(m.text.Notes+":", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(snap.Notes)), styles.Text),
		)
		if snap.IsDegraded() && snap.LastError != nil {
			errText := truncate(snap.LastError.Error(), ternaryInt(compact, 30, 60))
			parts = append(parts,
				bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
					bg.Render(errText, styles.DangerText),
			)
		}
	}

	if busy := m.busyLabel(); busy != "" {
		parts = append(parts, bg.Render(busy, styles.WarningText.Bold(true)))
	}

	if n := m.currentNotice(); n.Active() {
		parts = append(parts, m.renderNotice(n, styles, bg))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) renderNotice(n screen.Notice, styles Styles, bg BgStyle) string {
	text := m.noticeText(n)
	switch {
	case n.IsError():
		out := bg.Render("!", styles.DangerText) + bg.Space() + bg.Render(text, styles.DangerText)
		if n.Err != nil && m.width >= 100 {
			out += bg.Space() + bg.Render(truncate(n.Err.Error(), 40), styles.MutedText)
		}
		return out
	case n.Kind == screen.NoticeShared:
		return bg.Render(text, styles.SuccessText)
	default:
		return bg.Render(text, styles.WarningText)
	}
}

// screenTitle names the current screen for the header.
func (m Model) screenTitle() string {
	switch m.route().Name {
	case nav.View:
		if m.view.Phase == screen.Loading {
			return ""
		}
		return m.text.DisplayTitle(m.view.Note.Metadata.Title)
	case nav.Edit:
		title := m.edit.Note.Metadata.Title
		if m.edit.Note.Metadata.HasID() {
			title = m.text.DisplayTitle(title)
		}
		if m.edit.Dirty() {
			title += " *"
		}
		return title
	case nav.Settings:
		return m.text.Settings
	}
	return ""
}

func (m Model) busyLabel() string {
	var phase screen.Phase
	switch m.route().Name {
	case nav.Edit:
		phase = m.edit.Phase
	case nav.View:
		phase = m.view.Phase
	default:
		if m.listDelete > 0 && !m.listConfirm.Visible {
			return m.text.Deleting
		}
		return ""
	}
	switch phase {
	case screen.Loading:
		return m.text.Loading
	case screen.Saving:
		return m.text.Saving
	case screen.Deleting:
		return m.text.Deleting
	}
	return ""
}

// renderCommandBar renders the command hints for the current screen.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.route().Name {
	case nav.View:
		commands = []cmd{
			{"e", "Edit"},
			{"d", "Delete"},
			{"s", "Share"},
			{"r", "Reload"},
			{"j/k", "Scroll"},
			{"esc", "Back"},
			{"?", "More"},
		}
	case nav.Edit:
		if m.edit.Phase == screen.Failed {
			commands = []cmd{
				{"ctrl+r", "Retry"},
				{"esc", "Back"},
			}
			break
		}
		commands = []cmd{
			{"ctrl+s", "Save"},
			{"ctrl+x", "Delete"},
			{"ctrl+y", "Share"},
			{"esc", "Back"},
		}
	case nav.Settings:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Change"},
			{"esc", "Back"},
		}
	default:
		commands = []cmd{
			{"enter", "Open"},
			{"n", "New"},
			{"e", "Edit"},
			{"d", "Delete"},
			{"/", "Filter"},
			{"o", m.sortLabel()},
			{",", "Settings"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(segments, sep))
}

func ternaryInt(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}

// placeCentered centers content on the screen background.
func (m Model) placeCentered(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
