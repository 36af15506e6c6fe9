package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/five82/quill/internal/config"
	"github.com/five82/quill/internal/i18n"
	"github.com/five82/quill/internal/nav"
	"github.com/five82/quill/internal/note"
	"github.com/five82/quill/internal/prefs"
	"github.com/five82/quill/internal/screen"
	"github.com/five82/quill/internal/share"
	"github.com/five82/quill/internal/state"
	"github.com/five82/quill/internal/store"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     store.Store
	Snapshot  *state.Store
	Sharer    share.Sharer
	Strings   i18n.Strings
	Logger    *log.Logger
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Tick      time.Duration
}

// previewState is the note shown next to the list in multi-pane mode.
type previewState struct {
	id      int64
	updated time.Time
	loading bool
	note    note.Note
	err     error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Dependencies
	ctx       context.Context
	notes     store.Store
	snapshot  *state.Store
	sharer    share.Sharer
	text      i18n.Strings
	logger    *log.Logger
	config    config.Config
	prefs     prefs.Prefs
	prefsPath string
	tick      time.Duration

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Navigation. seq identifies the current screen instance; it changes on
	// every entry so late results for a left screen can be recognized.
	nav *nav.Controller
	seq uint64

	// List screens
	list        list.Model
	listVersion uint64
	listSort    string
	listConfirm screen.Confirm
	listDelete  int64
	listNotice  screen.Notice

	// Multi-pane preview
	preview         previewState
	previewSeq      uint64
	previewViewport viewport.Model

	// Editor
	edit       screen.Edit
	editor     textarea.Model
	editorBase string // textarea value right after the last load

	// Viewer
	view         screen.View
	viewViewport viewport.Model

	// Settings
	settingsCursor int

	modal    confirmModal
	noticeAt time.Time
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick == 0 {
		tick = DefaultUIInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	snapshot := opts.Snapshot
	if snapshot == nil {
		snapshot = &state.Store{}
	}

	sharer := opts.Sharer
	if sharer == nil {
		sharer = share.NewClipboardSharer()
	}

	text := opts.Strings
	if text.NewNote == "" {
		text = i18n.English()
	}

	userPrefs := opts.Prefs
	if userPrefs.Theme == "" {
		userPrefs = prefs.Default()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:             ctx,
		notes:           opts.Store,
		snapshot:        snapshot,
		sharer:          sharer,
		text:            text,
		logger:          logger,
		config:          opts.Config,
		prefs:           userPrefs,
		prefsPath:       prefsPath,
		tick:            tick,
		theme:           GetTheme(userPrefs.Theme),
		keys:            DefaultKeyMap(),
		list:            newNoteList(),
		listConfirm:     screen.DeleteConfirm(text),
		editor:          newEditor(),
		viewViewport:    viewport.New(0, 0),
		previewViewport: viewport.New(0, 0),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(m.tick),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			// The start screen is chosen once; later resizes only re-layout.
			m.ready = true
			start := nav.StartRoute(m.config.WidthDP(msg.Width))
			m.nav = nav.NewController(start)
			m.logger.Debug("start route", "route", start.String(), "columns", msg.Width)
			cmd := m.enter(start)
			return m, cmd
		}
		m.layout()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case listRefreshedMsg:
		cmd := m.syncList()
		return m, cmd

	case noteLoadedMsg:
		if !m.current(msg.seq) {
			return m, nil
		}
		return m.handleNoteLoaded(msg)

	case noteSavedMsg:
		if !m.current(msg.seq) {
			return m, nil
		}
		return m.handleNoteSaved(msg)

	case noteDeletedMsg:
		if !m.current(msg.seq) {
			return m, nil
		}
		return m.handleNoteDeleted(msg)

	case sharedMsg:
		if !m.current(msg.seq) {
			return m, nil
		}
		return m.handleShared(msg)

	case previewLoadedMsg:
		if msg.seq != m.previewSeq || msg.id != m.preview.id {
			return m, nil
		}
		m.preview.loading = false
		m.preview.note = msg.note
		m.preview.err = msg.err
		m.refreshPreviewContent()
		return m, nil
	}

	return m.forward(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if dialog, ok := m.activeDialog(); ok {
		return m.modal.View(dialog, m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) current(seq uint64) bool {
	return m.ready && seq == m.seq
}

func (m Model) route() nav.Route {
	if m.nav == nil {
		return nav.Route{}
	}
	return m.nav.Current()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if _, ok := m.activeDialog(); ok {
		return m.handleDialogKey(msg)
	}

	switch m.route().Name {
	case nav.List, nav.MultiPaneList:
		return m.handleListKey(msg)
	case nav.View:
		return m.handleViewKey(msg)
	case nav.Edit:
		return m.handleEditKey(msg)
	case nav.Settings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

// handleGlobalKey covers the bindings shared by every screen but the editor.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil, true
	case key.Matches(msg, m.keys.CycleTheme):
		m.prefs.Theme = NextTheme(m.theme.Name)
		m.theme = GetTheme(m.prefs.Theme)
		m.applyTheme()
		m.savePrefs()
		return nil, true
	}
	return nil, false
}

// activeDialog returns the confirmation dialog of the current screen, if open.
func (m Model) activeDialog() (screen.Confirm, bool) {
	switch m.route().Name {
	case nav.Edit:
		return m.edit.Confirm, m.edit.Confirm.Visible
	case nav.View:
		return m.view.Confirm, m.view.Confirm.Visible
	case nav.List, nav.MultiPaneList:
		return m.listConfirm, m.listConfirm.Visible
	}
	return screen.Confirm{}, false
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var confirmed, done bool
	m.modal, confirmed, done = m.modal.Update(msg, m.keys)
	if !done {
		return m, nil
	}

	var eff screen.Effect
	switch m.route().Name {
	case nav.Edit:
		if confirmed {
			m.edit, eff = m.edit.ConfirmDelete()
		} else {
			m.edit = m.edit.CancelDelete()
		}
	case nav.View:
		if confirmed {
			m.view, eff = m.view.ConfirmDelete()
		} else {
			m.view = m.view.CancelDelete()
		}
	default:
		var choice screen.Choice
		m.listConfirm, choice = m.listConfirm.Resolve(confirmed)
		if choice == screen.ChoiceConfirm && m.listDelete > 0 {
			return m, deleteNoteCmd(m.ctx, m.notes, m.snapshot, m.seq, m.listDelete)
		}
		m.listDelete = 0
		return m, nil
	}
	cmd := m.runEffect(eff)
	return m, cmd
}

// openDialog resets button focus to the safe choice.
func (m *Model) openDialog() {
	m.modal = confirmModal{}
}

// handleTick processes the UI refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if !m.noticeAt.IsZero() && time.Since(m.noticeAt) > NoticeTTL {
		m.dismissNotices()
	}

	if m.ready && m.route().IsList() {
		cmds = append(cmds, m.syncList())
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.tick))
	return m, tea.Batch(cmds...)
}

// forward passes messages the model does not handle itself (cursor blinks,
// list filter results, mouse wheel) to the active component.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	switch m.route().Name {
	case nav.List, nav.MultiPaneList:
		m.list, cmd = m.list.Update(msg)
	case nav.Edit:
		m.editor, cmd = m.editor.Update(msg)
	case nav.View:
		m.viewViewport, cmd = m.viewViewport.Update(msg)
	}
	return m, cmd
}

// runEffect turns a state holder's requested work into a command.
func (m *Model) runEffect(eff screen.Effect) tea.Cmd {
	switch e := eff.(type) {
	case screen.FetchEffect:
		return fetchNoteCmd(m.ctx, m.notes, m.seq, e.ID)
	case screen.SaveEffect:
		var id int64
		if e.HasID {
			id = e.ID
		}
		return saveNoteCmd(m.ctx, m.notes, m.snapshot, m.seq, id, e.Title, e.Text)
	case screen.DeleteEffect:
		return deleteNoteCmd(m.ctx, m.notes, m.snapshot, m.seq, e.ID)
	case screen.ShareEffect:
		return shareCmd(m.sharer, m.seq, e.Text)
	case screen.BackEffect:
		return m.back(e.Forget)
	}
	return nil
}

// navigate pushes route and enters it.
func (m *Model) navigate(route nav.Route) tea.Cmd {
	m.nav.NavigateTo(route)
	return m.enter(route)
}

// back pops the current screen. A deleted note's other routes are dropped
// after the pop so the screen being left is not counted twice.
func (m *Model) back(forget int64) tea.Cmd {
	m.nav.Back()
	if forget > 0 {
		m.nav.Forget(forget)
	}
	return m.enter(m.nav.Current())
}

// enter initializes the screen for route as a fresh instance.
func (m *Model) enter(route nav.Route) tea.Cmd {
	m.seq++
	m.openDialog()
	m.noticeAt = time.Time{}
	m.logger.Debug("enter screen", "route", route.String(), "seq", m.seq)

	var eff screen.Effect
	switch route.Name {
	case nav.List, nav.MultiPaneList:
		m.listConfirm = screen.DeleteConfirm(m.text)
		m.listDelete = 0
		m.listNotice = screen.Notice{}
		m.preview = previewState{}
		m.listVersion = 0
		m.layout()
		return tea.Batch(refreshListCmd(m.ctx, m.notes, m.snapshot), m.syncList())

	case nav.View:
		m.view, eff = screen.EnterView(route.ID, m.text)
		m.viewViewport.SetContent("")
		m.viewViewport.GotoTop()
		m.layout()
		return m.runEffect(eff)

	case nav.Edit:
		m.edit, eff = screen.EnterEdit(route.ID, route.HasID, m.text)
		m.editor.Reset()
		m.loadEditor(m.edit.Draft)
		m.layout()
		return tea.Batch(m.editor.Focus(), m.runEffect(eff))

	case nav.Settings:
		m.settingsCursor = 0
	}
	return nil
}

// markNotice starts the expiry clock when a notice becomes visible.
func (m *Model) markNotice() {
	if m.currentNotice().Active() {
		m.noticeAt = time.Now()
	}
}

func (m *Model) dismissNotices() {
	m.edit = m.edit.DismissNotice()
	m.view = m.view.DismissNotice()
	m.listNotice = screen.Notice{}
	m.noticeAt = time.Time{}
}

func (m Model) currentNotice() screen.Notice {
	switch m.route().Name {
	case nav.Edit:
		return m.edit.Notice
	case nav.View:
		return m.view.Notice
	default:
		return m.listNotice
	}
}

func (m Model) noticeText(n screen.Notice) string {
	switch n.Kind {
	case screen.NoticeNotFound:
		return m.text.NotFound
	case screen.NoticeLoadFailed:
		return m.text.LoadFailed
	case screen.NoticeSaveFailed:
		return m.text.SaveFailed
	case screen.NoticeDeleteFailed:
		return m.text.DeleteFailed
	case screen.NoticeShared:
		return m.text.Shared
	case screen.NoticeShareFailed:
		return m.text.ShareFailed
	case screen.NoticeUnsaved:
		return m.text.Unsaved
	}
	return ""
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "err", err)
	}
}

// layout sizes the components to the current window.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	contentHeight := max(m.height-chromeLines, 3)
	innerHeight := max(contentHeight-2, 1)
	innerWidth := max(m.width-2, 1)

	listWidth := m.width
	if m.route().Name == nav.MultiPaneList {
		listWidth = m.listPaneWidth()
		previewWidth := m.width - listWidth
		m.previewViewport.Width = max(previewWidth-4, 1)
		m.previewViewport.Height = innerHeight
		m.refreshPreviewContent()
	}
	m.list.SetSize(max(listWidth-2, 1), innerHeight)

	m.editor.SetWidth(innerWidth)
	m.editor.SetHeight(innerHeight)

	m.viewViewport.Width = max(innerWidth-2, 1)
	m.viewViewport.Height = innerHeight
	m.refreshViewContent()
}

func (m Model) listPaneWidth() int {
	if m.width >= LayoutExtraWideWidth {
		return m.width * ListPaneWidePercent / 100
	}
	return m.width * ListPanePercent / 100
}

// renderContent renders the main content area based on the current route.
func (m Model) renderContent() string {
	switch m.route().Name {
	case nav.List:
		return m.renderList(m.width)
	case nav.MultiPaneList:
		return m.renderMultiPane()
	case nav.View:
		return m.renderView()
	case nav.Edit:
		return m.renderEdit()
	case nav.Settings:
		return m.renderSettings()
	default:
		return ""
	}
}

// applyTheme pushes the current theme into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.NormalTitle = styles.Text.Padding(0, 0, 0, 2)
	delegate.Styles.NormalDesc = styles.FaintText.Padding(0, 0, 0, 2)
	delegate.Styles.SelectedTitle = styles.AccentText.Bold(true).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Bold(false).
		Foreground(lipgloss.Color(m.theme.Muted))
	delegate.Styles.DimmedTitle = styles.MutedText.Padding(0, 0, 0, 2)
	delegate.Styles.DimmedDesc = styles.FaintText.Padding(0, 0, 0, 2)
	delegate.Styles.FilterMatch = lipgloss.NewStyle().Underline(true)
	m.list.SetDelegate(delegate)
	m.list.Styles.StatusBar = styles.FaintText.Padding(0, 0, 1, 2)
	m.list.Styles.NoItems = styles.MutedText.Padding(0, 0, 0, 2)
	m.list.FilterInput.PromptStyle = styles.AccentText
	m.list.FilterInput.Cursor.Style = styles.AccentText

	m.editor.FocusedStyle.Text = styles.Text
	m.editor.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.SurfaceAlt))
	m.editor.FocusedStyle.Placeholder = styles.FaintText
	m.editor.FocusedStyle.EndOfBuffer = styles.FaintText
	m.editor.BlurredStyle = m.editor.FocusedStyle

	m.refreshViewContent()
	m.refreshPreviewContent()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Cancelled from outside, e.g. SIGTERM.
		return nil
	}
	return err
}
