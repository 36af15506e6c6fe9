package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/quill/internal/note"
	"github.com/five82/quill/internal/share"
	"github.com/five82/quill/internal/state"
	"github.com/five82/quill/internal/store"
)

// Messages. Every store result carries the screen token that was current when
// the command was issued; results for a screen that has since been left are
// dropped in Update.

type tickMsg time.Time

type noteLoadedMsg struct {
	seq  uint64
	id   int64
	note note.Note
	err  error
}

type noteSavedMsg struct {
	seq uint64
	id  int64
	err error
}

type noteDeletedMsg struct {
	seq uint64
	id  int64
	err error
}

type sharedMsg struct {
	seq uint64
	err error
}

type previewLoadedMsg struct {
	seq  uint64
	id   int64
	note note.Note
	err  error
}

// listRefreshedMsg reports that the snapshot has been refreshed.
type listRefreshedMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchNoteCmd(ctx context.Context, notes store.Store, seq uint64, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, StoreTimeout)
		defer cancel()

		n, err := notes.Fetch(ctx, id)
		return noteLoadedMsg{seq: seq, id: id, note: n, err: err}
	}
}

func fetchPreviewCmd(ctx context.Context, notes store.Store, seq uint64, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, StoreTimeout)
		defer cancel()

		n, err := notes.Fetch(ctx, id)
		return previewLoadedMsg{seq: seq, id: id, note: n, err: err}
	}
}

// saveNoteCmd persists and then refreshes the listing, so the list is current
// by the time the editor closes.
func saveNoteCmd(ctx context.Context, notes store.Store, snapshot *state.Store, seq uint64, id int64, title, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, StoreTimeout)
		defer cancel()

		newID, err := notes.Save(ctx, id, title, text)
		if err == nil {
			refreshSnapshot(ctx, notes, snapshot)
		}
		return noteSavedMsg{seq: seq, id: newID, err: err}
	}
}

func deleteNoteCmd(ctx context.Context, notes store.Store, snapshot *state.Store, seq uint64, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, StoreTimeout)
		defer cancel()

		err := notes.Delete(ctx, id)
		if err == nil {
			refreshSnapshot(ctx, notes, snapshot)
		}
		return noteDeletedMsg{seq: seq, id: id, err: err}
	}
}

func shareCmd(sharer share.Sharer, seq uint64, text string) tea.Cmd {
	return func() tea.Msg {
		return sharedMsg{seq: seq, err: sharer.Share(text)}
	}
}

func refreshListCmd(ctx context.Context, notes store.Store, snapshot *state.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, StoreTimeout)
		defer cancel()

		refreshSnapshot(ctx, notes, snapshot)
		return listRefreshedMsg{}
	}
}

func refreshSnapshot(ctx context.Context, notes store.Store, snapshot *state.Store) {
	if snapshot == nil {
		return
	}
	list, err := notes.List(ctx)
	snapshot.Update(list, err)
}
