package screen

import (
	"errors"

	"github.com/five82/quill/internal/i18n"
	"github.com/five82/quill/internal/note"
)

// Edit is the state of the editor screen.
type Edit struct {
	Phase   Phase
	Note    note.Note
	Draft   string
	Confirm Confirm
	Notice  Notice

	requestedID int64
	newLabel    string
	leaveArmed  bool
}

// EnterEdit creates the editor. Without an id it starts ready on a transient
// note titled newLabel. With an id it starts loading and requests one fetch.
func EnterEdit(id int64, hasID bool, s i18n.Strings) (Edit, Effect) {
	e := Edit{
		Confirm:  DeleteConfirm(s),
		newLabel: s.NewNote,
	}
	if !hasID {
		e.Phase = Ready
		e.Note = note.New(s.NewNote)
		return e, nil
	}
	e.Phase = Loading
	e.requestedID = id
	e.Note = note.New(s.NewNote)
	return e, FetchEffect{ID: id}
}

// RequestedID is the id passed on entry, if any.
func (e Edit) RequestedID() int64 {
	return e.requestedID
}

// Loaded applies a fetch result. Results arriving outside Loading are ignored.
// Only a missing note falls back to creating a new one. Any other failure
// leaves the editor Failed: it keeps the requested id and refuses to write.
func (e Edit) Loaded(n note.Note, err error) Edit {
	if e.Phase != Loading {
		return e
	}
	switch {
	case err == nil:
		e.Phase = Ready
		e.Note = n
		e.Draft = n.Contents.Text
	case errors.Is(err, note.ErrNotFound):
		e.Phase = Ready
		e.Note = note.New(e.newLabel)
		e.Draft = ""
		e.Notice = Notice{Kind: NoticeNotFound, Err: err}
	default:
		e.Phase = Failed
		e.Draft = ""
		e.Notice = Notice{Kind: NoticeLoadFailed, Err: err}
	}
	return e
}


// EditDraft replaces the working text. Only honoured while Ready.
func (e Edit) EditDraft(text string) Edit {
	if e.Phase != Ready {
		return e
	}
	if text != e.Draft {
		e.leaveArmed = false
	}
	e.Draft = text
	return e
}

// Leave asks to close the editor without saving. The first request with
// unsaved changes only raises a warning; a second one discards the draft.
func (e Edit) Leave() (Edit, Effect) {
	switch e.Phase {
	case Saving, Deleting, Navigated:
		return e, nil
	}
	if e.Phase == Ready && e.Dirty() && !e.leaveArmed {
		e.leaveArmed = true
		e.Notice = Notice{Kind: NoticeUnsaved}
		return e, nil
	}
	e.Phase = Navigated
	return e, BackEffect{}
}

// Save requests persistence of the draft.
func (e Edit) Save() (Edit, Effect) {
	if e.Phase != Ready {
		return e, nil
	}
	e.Phase = Saving
	e.Notice = Notice{}
	return e, SaveEffect{
		ID:    e.Note.Metadata.ID,
		HasID: e.Note.Metadata.HasID(),
		Title: note.DeriveTitle(e.Draft),
		Text:  e.Draft,
	}
}

// Saved applies the store's answer to Save. Failure keeps the draft.
func (e Edit) Saved(id int64, err error) (Edit, Effect) {
	if e.Phase != Saving {
		return e, nil
	}
	if err != nil {
		e.Phase = Ready
		e.Notice = Notice{Kind: NoticeSaveFailed, Err: err}
		return e, nil
	}
	e.Note.Metadata.ID = id
	e.Note.Metadata.Title = note.DeriveTitle(e.Draft)
	e.Note.Contents.Text = e.Draft
	e.Phase = Navigated
	return e, BackEffect{}
}

// RequestDelete opens the confirmation dialog.
func (e Edit) RequestDelete() Edit {
	if e.Phase != Ready {
		return e
	}
	e.Confirm = e.Confirm.Show()
	return e
}

// ConfirmDelete resolves the dialog positively. A note that was never saved
// has nothing to remove, so the editor just closes.
func (e Edit) ConfirmDelete() (Edit, Effect) {
	var choice Choice
	e.Confirm, choice = e.Confirm.Resolve(true)
	if choice != ChoiceConfirm || e.Phase != Ready {
		return e, nil
	}
	if !e.Note.Metadata.HasID() {
		e.Phase = Navigated
		return e, BackEffect{}
	}
	e.Phase = Deleting
	e.Notice = Notice{}
	return e, DeleteEffect{ID: e.Note.Metadata.ID}
}

// CancelDelete closes the dialog and changes nothing else.
func (e Edit) CancelDelete() Edit {
	e.Confirm, _ = e.Confirm.Resolve(false)
	return e
}

// Deleted applies the store's answer to a delete.
func (e Edit) Deleted(err error) (Edit, Effect) {
	if e.Phase != Deleting {
		return e, nil
	}
	if err != nil {
		e.Phase = Ready
		e.Notice = Notice{Kind: NoticeDeleteFailed, Err: err}
		return e, nil
	}
	e.Phase = Navigated
	return e, BackEffect{Forget: e.Note.Metadata.ID}
}

// Share hands the current draft to the share target.
func (e Edit) Share() (Edit, Effect) {
	if e.Phase != Ready {
		return e, nil
	}
	return e, ShareEffect{Text: e.Draft}
}

// Shared records the outcome of a share.
func (e Edit) Shared(err error) Edit {
	if err != nil {
		e.Notice = Notice{Kind: NoticeShareFailed, Err: err}
	} else {
		e.Notice = Notice{Kind: NoticeShared}
	}
	return e
}

// DismissNotice clears the transient message.
func (e Edit) DismissNotice() Edit {
	e.Notice = Notice{}
	return e
}

// Dirty reports whether the draft differs from the loaded note.
func (e Edit) Dirty() bool {
	return e.Draft != e.Note.Contents.Text
}
