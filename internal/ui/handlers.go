package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/quill/internal/nav"
	"github.com/five82/quill/internal/note"
	"github.com/five82/quill/internal/screen"
)

// Handlers for store and share results. Update has already checked that the
// result belongs to the current screen.

func (m Model) handleNoteLoaded(msg noteLoadedMsg) (tea.Model, tea.Cmd) {
	switch m.route().Name {
	case nav.Edit:
		if msg.id != m.edit.RequestedID() {
			return m, nil
		}
		m.edit = m.edit.Loaded(msg.note, msg.err)
		m.loadEditor(m.edit.Draft)
		m.markNotice()
		if msg.err != nil {
			m.logger.Warn("load note failed", "id", msg.id, "err", msg.err)
		}
		return m, nil

	case nav.View:
		if msg.id != m.view.ID {
			return m, nil
		}
		var eff screen.Effect
		m.view, eff = m.view.Loaded(msg.note, msg.err)
		m.refreshViewContent()
		m.viewViewport.GotoTop()
		m.markNotice()
		if msg.err != nil {
			m.logger.Warn("load note failed", "id", msg.id, "err", msg.err)
		}
		cmd := m.runEffect(eff)
		if errors.Is(msg.err, note.ErrNotFound) && m.route().IsList() {
			m.listNotice = screen.Notice{Kind: screen.NoticeNotFound, Err: msg.err}
			m.markNotice()
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleNoteSaved(msg noteSavedMsg) (tea.Model, tea.Cmd) {
	if m.route().Name != nav.Edit {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Error("save note failed", "id", m.edit.Note.Metadata.ID, "err", msg.err)
	} else {
		m.logger.Info("note saved", "id", msg.id)
	}

	var eff screen.Effect
	m.edit, eff = m.edit.Saved(msg.id, msg.err)
	m.markNotice()
	cmd := m.runEffect(eff)
	return m, cmd
}

func (m Model) handleNoteDeleted(msg noteDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("delete note failed", "id", msg.id, "err", msg.err)
	} else {
		m.logger.Info("note deleted", "id", msg.id)
	}

	var eff screen.Effect
	switch m.route().Name {
	case nav.Edit:
		m.edit, eff = m.edit.Deleted(msg.err)
	case nav.View:
		m.view, eff = m.view.Deleted(msg.err)
	case nav.List, nav.MultiPaneList:
		if msg.id != m.listDelete {
			return m, nil
		}
		m.listDelete = 0
		if msg.err != nil {
			m.listNotice = screen.Notice{Kind: screen.NoticeDeleteFailed, Err: msg.err}
			m.markNotice()
			return m, nil
		}
		m.nav.Forget(msg.id)
		cmd := m.syncList()
		return m, cmd
	}
	m.markNotice()
	cmd := m.runEffect(eff)
	return m, cmd
}

func (m Model) handleShared(msg sharedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("share failed", "err", msg.err)
	}
	switch m.route().Name {
	case nav.Edit:
		m.edit = m.edit.Shared(msg.err)
	case nav.View:
		m.view = m.view.Shared(msg.err)
	default:
		return m, nil
	}
	m.markNotice()
	return m, nil
}
