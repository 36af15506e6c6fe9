package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/quill/internal/nav"
	"github.com/five82/quill/internal/screen"
)

// handleViewKey processes keys on the read-only note screen.
func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleGlobalKey(msg); ok {
		return m, cmd
	}

	var eff screen.Effect
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.view.Phase == screen.Deleting {
			return m, nil
		}
		cmd := m.back(0)
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		if m.view.Phase == screen.Ready {
			cmd := m.navigate(nav.EditNote(m.view.ID))
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.view = m.view.RequestDelete()
		if m.view.Confirm.Visible {
			m.openDialog()
		}
		return m, nil

	case key.Matches(msg, m.keys.Share):
		m.view, eff = m.view.Share()
		cmd := m.runEffect(eff)
		return m, cmd

	case key.Matches(msg, m.keys.Reload):
		if m.view.Phase != screen.Ready {
			return m, nil
		}
		cmd := m.enter(m.route())
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewViewport, cmd = m.viewViewport.Update(msg)
	return m, cmd
}

// refreshViewContent re-renders the viewed note into the viewport.
func (m *Model) refreshViewContent() {
	if m.view.Phase != screen.Ready {
		return
	}
	text := m.view.Note.Contents.Text
	if strings.TrimSpace(text) == "" {
		m.viewViewport.SetContent(m.theme.Styles().FaintText.Render(m.text.EmptyPreview))
		return
	}
	m.viewViewport.SetContent(renderBody(text, m.viewViewport.Width, m.prefs.RenderMarkdown, m.theme.MarkdownStyle))
}

func (m Model) renderView() string {
	height := max(m.height-chromeLines, 3)
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)

	title := m.screenTitle()
	if updated := formatUpdated(m.view.Note.Metadata.Updated, time.Now()); updated != "" {
		title += " · " + updated
	}

	var content string
	switch {
	case m.view.Phase == screen.Loading:
		content = styles.MutedText.Render(m.text.Loading)
	case m.view.Notice.Kind == screen.NoticeLoadFailed && !m.view.Note.Metadata.HasID():
		content = styles.DangerText.Render(m.text.LoadFailed)
	default:
		content = m.viewViewport.View()
	}
	return m.renderTitledBox(title, content, m.width, height, true)
}
