package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/quill/internal/screen"
)

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	return ta
}

// loadEditor fills the textarea with text and puts the cursor after the last
// character. The textarea sanitizes what it is given (tabs, carriage
// returns), so its resulting value is remembered as the baseline.
func (m *Model) loadEditor(text string) {
	m.editor.SetValue(text)
	for m.editor.Line() < m.editor.LineCount()-1 {
		m.editor.CursorDown()
	}
	m.editor.CursorEnd()
	m.editorBase = m.editor.Value()
}

// syncDraft hands the textarea's text to the editor state. While the user
// has not changed anything the loaded text is kept byte for byte.
func (m *Model) syncDraft() {
	value := m.editor.Value()
	if value == m.editorBase {
		value = m.edit.Note.Contents.Text
	}
	m.edit = m.edit.EditDraft(value)
}

// handleEditKey processes keys in the editor. Everything that is not an
// editor command is typed into the note.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var eff screen.Effect

	switch {
	case key.Matches(msg, m.keys.Save):
		m.syncDraft()
		m.edit, eff = m.edit.Save()
		cmd := m.runEffect(eff)
		return m, cmd

	case key.Matches(msg, m.keys.EditDelete):
		m.syncDraft()
		m.edit = m.edit.RequestDelete()
		if m.edit.Confirm.Visible {
			m.openDialog()
		}
		return m, nil

	case key.Matches(msg, m.keys.EditShare):
		m.syncDraft()
		m.edit, eff = m.edit.Share()
		cmd := m.runEffect(eff)
		return m, cmd

	case key.Matches(msg, m.keys.Retry):
		if m.edit.Phase != screen.Failed {
			return m, nil
		}
		// A fresh editor instance issues its own fetch.
		cmd := m.enter(m.route())
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		m.syncDraft()
		m.edit, eff = m.edit.Leave()
		m.markNotice()
		cmd := m.runEffect(eff)
		return m, cmd
	}

	if m.edit.Phase != screen.Ready {
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.syncDraft()
	return m, cmd
}

func (m Model) renderEdit() string {
	height := max(m.height-chromeLines, 3)
	title := m.screenTitle()

	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	switch m.edit.Phase {
	case screen.Loading:
		return m.renderTitledBox(title, styles.MutedText.Render(m.text.Loading), m.width, height, true)
	case screen.Failed:
		return m.renderTitledBox(title, styles.DangerText.Render(m.text.LoadFailed), m.width, height, true)
	}
	return m.renderTitledBox(title, m.editor.View(), m.width, height, true)
}
