package screen

import (
	"errors"

	"github.com/five82/quill/internal/i18n"
	"github.com/five82/quill/internal/note"
)

// View is the state of the read-only note screen.
type View struct {
	Phase   Phase
	ID      int64
	Note    note.Note
	Confirm Confirm
	Notice  Notice
}

// EnterView starts loading the note with id.
func EnterView(id int64, s i18n.Strings) (View, Effect) {
	return View{
		Phase:   Loading,
		ID:      id,
		Confirm: DeleteConfirm(s),
	}, FetchEffect{ID: id}
}

// Loaded applies a fetch result. A missing note leaves the screen.
func (v View) Loaded(n note.Note, err error) (View, Effect) {
	if v.Phase != Loading {
		return v, nil
	}
	switch {
	case err == nil:
		v.Phase = Ready
		v.Note = n
		return v, nil
	case errors.Is(err, note.ErrNotFound):
		v.Phase = Navigated
		return v, BackEffect{Forget: v.ID}
	default:
		v.Phase = Ready
		v.Notice = Notice{Kind: NoticeLoadFailed, Err: err}
		return v, nil
	}
}

// RequestDelete opens the confirmation dialog.
func (v View) RequestDelete() View {
	if v.Phase != Ready {
		return v
	}
	v.Confirm = v.Confirm.Show()
	return v
}

// ConfirmDelete resolves the dialog positively and requests the delete.
func (v View) ConfirmDelete() (View, Effect) {
	var choice Choice
	v.Confirm, choice = v.Confirm.Resolve(true)
	if choice != ChoiceConfirm || v.Phase != Ready {
		return v, nil
	}
	v.Phase = Deleting
	v.Notice = Notice{}
	return v, DeleteEffect{ID: v.ID}
}

// CancelDelete closes the dialog.
func (v View) CancelDelete() View {
	v.Confirm, _ = v.Confirm.Resolve(false)
	return v
}

// Deleted applies the store's answer to a delete.
func (v View) Deleted(err error) (View, Effect) {
	if v.Phase != Deleting {
		return v, nil
	}
	if err != nil {
		v.Phase = Ready
		v.Notice = Notice{Kind: NoticeDeleteFailed, Err: err}
		return v, nil
	}
	v.Phase = Navigated
	return v, BackEffect{Forget: v.ID}
}

// Share hands the note body to the share target.
func (v View) Share() (View, Effect) {
	if v.Phase != Ready {
		return v, nil
	}
	return v, ShareEffect{Text: v.Note.Contents.Text}
}

// Shared records the outcome of a share.
func (v View) Shared(err error) View {
	if err != nil {
		v.Notice = Notice{Kind: NoticeShareFailed, Err: err}
	} else {
		v.Notice = Notice{Kind: NoticeShared}
	}
	return v
}

// DismissNotice clears the transient message.
func (v View) DismissNotice() View {
	v.Notice = Notice{}
	return v
}
