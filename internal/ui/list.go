package ui

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/quill/internal/nav"
	"github.com/five82/quill/internal/note"
	"github.com/five82/quill/internal/prefs"
)

// noteItem adapts note metadata to the bubbles list.
type noteItem struct {
	meta    note.Metadata
	title   string
	updated string
}

func (i noteItem) Title() string       { return i.title }
func (i noteItem) Description() string { return i.updated }
func (i noteItem) FilterValue() string { return i.title }

func newNoteList() list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("note", "notes")
	l.DisableQuitKeybindings()
	return l
}

// syncList rebuilds the list items when the snapshot or the sort order
// changed since the last build. The selected note stays selected.
func (m *Model) syncList() tea.Cmd {
	snap := m.snapshot.Snapshot()
	if snap.Version == m.listVersion && m.prefs.Sort == m.listSort && m.listVersion != 0 {
		return m.syncPreview()
	}

	selected, hasSelected := m.selectedID()

	notes := snap.Notes
	sortNotes(notes, m.prefs.Sort)

	now := time.Now()
	items := make([]list.Item, 0, len(notes))
	for _, meta := range notes {
		items = append(items, noteItem{
			meta:    meta,
			title:   m.text.DisplayTitle(meta.Title),
			updated: formatUpdated(meta.Updated, now),
		})
	}

	cmd := m.list.SetItems(items)
	m.listVersion = snap.Version
	m.listSort = m.prefs.Sort

	if hasSelected {
		for i, item := range m.list.VisibleItems() {
			if item.(noteItem).meta.ID == selected {
				m.list.Select(i)
				break
			}
		}
	}
	if visible := len(m.list.VisibleItems()); visible > 0 && m.list.Index() >= visible {
		m.list.Select(visible - 1)
	}

	return tea.Batch(cmd, m.syncPreview())
}

// sortNotes orders notes in place. The store already lists newest first;
// title order falls back to that for equal titles.
func sortNotes(notes []note.Metadata, order string) {
	if order != prefs.SortTitle {
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].Updated.After(notes[j].Updated)
		})
		return
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return strings.ToLower(notes[i].Title) < strings.ToLower(notes[j].Title)
	})
}

func (m Model) selectedID() (int64, bool) {
	item, ok := m.list.SelectedItem().(noteItem)
	if !ok {
		return 0, false
	}
	return item.meta.ID, true
}

func (m Model) sortLabel() string {
	if m.prefs.Sort == prefs.SortTitle {
		return m.text.SortTitle
	}
	return m.text.SortUpdated
}

// handleListKey processes keys on both list screens.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key belongs to it.
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmd = tea.Batch(cmd, m.syncPreview())
		return m, cmd
	}

	if cmd, ok := m.handleGlobalKey(msg); ok {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.New):
		cmd := m.navigate(nav.NewNote())
		return m, cmd

	case key.Matches(msg, m.keys.Open):
		if id, ok := m.selectedID(); ok {
			cmd := m.navigate(nav.ViewNote(id))
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if id, ok := m.selectedID(); ok {
			cmd := m.navigate(nav.EditNote(id))
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedID(); ok && m.listDelete == 0 {
			m.listDelete = id
			m.listConfirm = m.listConfirm.Show()
			m.openDialog()
		}
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		cmd := m.navigate(nav.Route{Name: nav.Settings})
		return m, cmd

	case key.Matches(msg, m.keys.Sort):
		m.prefs.Sort = m.prefs.NextSort()
		m.savePrefs()
		cmd := m.syncList()
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmd = tea.Batch(cmd, m.syncPreview())
	return m, cmd
}

// syncPreview starts loading the selected note into the preview pane when
// the selection or the note itself changed.
func (m *Model) syncPreview() tea.Cmd {
	if m.route().Name != nav.MultiPaneList {
		return nil
	}
	item, ok := m.list.SelectedItem().(noteItem)
	if !ok {
		if m.preview.id != 0 {
			m.previewSeq++
			m.preview = previewState{}
			m.refreshPreviewContent()
		}
		return nil
	}
	if item.meta.ID == m.preview.id && item.meta.Updated.Equal(m.preview.updated) {
		return nil
	}
	m.previewSeq++
	m.preview = previewState{
		id:      item.meta.ID,
		updated: item.meta.Updated,
		loading: true,
	}
	return fetchPreviewCmd(m.ctx, m.notes, m.previewSeq, item.meta.ID)
}

func (m *Model) refreshPreviewContent() {
	if m.preview.id == 0 || m.preview.loading || m.preview.err != nil {
		m.previewViewport.SetContent("")
		return
	}
	body := renderBody(m.preview.note.Contents.Text, m.previewViewport.Width, m.prefs.RenderMarkdown, m.theme.MarkdownStyle)
	m.previewViewport.SetContent(body)
	m.previewViewport.GotoTop()
}

// renderList renders the note list in a box width columns wide.
func (m Model) renderList(width int) string {
	height := max(m.height-chromeLines, 3)
	focused := !m.list.SettingFilter()

	var content string
	if len(m.list.Items()) == 0 {
		styles := m.theme.Styles().WithBackground(ternary(focused, m.theme.FocusBg, m.theme.SurfaceAlt))
		if m.snapshot.Snapshot().Loaded {
			content = styles.MutedText.Render(m.text.EmptyList)
		} else {
			content = styles.MutedText.Render(m.text.Loading)
		}
	} else {
		content = m.list.View()
	}

	return m.renderTitledBox(m.text.Notes, content, width, height, true)
}

// renderMultiPane renders the list beside the selected note.
func (m Model) renderMultiPane() string {
	listWidth := m.listPaneWidth()
	previewWidth := m.width - listWidth
	height := max(m.height-chromeLines, 3)

	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	title := ""
	var content string
	switch {
	case m.preview.id == 0:
		content = styles.FaintText.Render(m.text.EmptyPreview)
	case m.preview.loading:
		content = styles.MutedText.Render(m.text.Loading)
	case m.preview.err != nil:
		content = styles.DangerText.Render(m.text.LoadFailed)
	default:
		title = m.text.DisplayTitle(m.preview.note.Metadata.Title)
		content = m.previewViewport.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(listWidth),
		m.renderTitledBox(title, content, previewWidth, height, false),
	)
}
