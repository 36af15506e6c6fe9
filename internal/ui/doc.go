// Package ui provides the terminal user interface for quill.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. Model owns the navigation stack and
// one instance of every screen's state; only the screen on top of the stack
// receives input. Screen logic (what a key or a store answer does) lives in
// the pure reducers of package screen; this package translates keys into
// reducer calls, turns the returned effects into commands and renders the
// result.
//
// # Package Structure
//
//   - app.go: Model, Update/View, screen entry and effect dispatch, Run
//   - commands.go: messages and the tea.Cmd wrappers around store and share calls
//   - handlers.go: store and share results
//   - list.go: single and multi-pane note list, preview pane
//   - viewer.go, editor.go, settings.go: the other screens
//   - header.go, help.go, modal.go, box.go: chrome shared by all screens
//   - theme.go, style_helpers.go, markdown.go: colors and body rendering
//
// # Screens
//
//   - List: notes newest first (or by title), filterable with "/"
//   - Multi-pane list: the list plus a preview of the selected note, chosen
//     at startup when the window is at least 600dp wide
//   - View: a note rendered as Markdown or plain text
//   - Edit: a textarea bound to screen.Edit
//   - Settings: theme, sort order and Markdown rendering
//
// # Event Flow
//
//  1. The first WindowSizeMsg picks the start route and enters it.
//  2. Entering a screen bumps the screen token and issues its initial fetch.
//  3. Store commands run off the UI goroutine with StoreTimeout and report
//     back with the token they were issued under.
//  4. Results carrying a stale token are dropped.
//  5. A tick re-reads the snapshot the poller maintains and expires notices.
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:  ctx,
//		Store:    notes,
//		Snapshot: &snapshot,
//		Strings:  i18n.FromEnv(cfg.Locale),
//		Logger:   logger,
//		Config:   cfg,
//	})
package ui
