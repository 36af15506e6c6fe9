package screen

import (
	"errors"
	"testing"

	"github.com/five82/quill/internal/i18n"
	"github.com/five82/quill/internal/note"
)

func TestViewLoads(t *testing.T) {
	v, eff := EnterView(5, i18n.English())
	if eff != (FetchEffect{ID: 5}) || v.Phase != Loading {
		t.Fatalf("unexpected entry %+v %#v", v, eff)
	}
	v, eff = v.Loaded(stored(5, "t", "body"), nil)
	if eff != nil || v.Phase != Ready || v.Note.Contents.Text != "body" {
		t.Fatalf("unexpected %+v %#v", v, eff)
	}
}

func TestViewNotFoundGoesBack(t *testing.T) {
	v, _ := EnterView(5, i18n.English())
	v, eff := v.Loaded(note.Note{}, note.NewNotFoundError(5))
	if v.Phase != Navigated || eff != (BackEffect{Forget: 5}) {
		t.Fatalf("unexpected %+v %#v", v, eff)
	}
}

func TestViewLoadFailureShowsNotice(t *testing.T) {
	v, _ := EnterView(5, i18n.English())
	v, eff := v.Loaded(note.Note{}, errors.New("io"))
	if eff != nil || v.Phase != Ready || v.Notice.Kind != NoticeLoadFailed {
		t.Fatalf("unexpected %+v %#v", v, eff)
	}
}

func TestViewDeleteAndShare(t *testing.T) {
	v, _ := EnterView(8, i18n.English())
	v, _ = v.Loaded(stored(8, "t", "body"), nil)

	if _, eff := v.Share(); eff != (ShareEffect{Text: "body"}) {
		t.Fatalf("share effect = %#v", eff)
	}

	v = v.RequestDelete().CancelDelete()
	if v.Phase != Ready || v.Confirm.Visible {
		t.Fatalf("cancel changed state %+v", v)
	}

	v, eff := v.RequestDelete().ConfirmDelete()
	if eff != (DeleteEffect{ID: 8}) {
		t.Fatalf("delete effect = %#v", eff)
	}
	v, eff = v.Deleted(nil)
	if v.Phase != Navigated || eff != (BackEffect{Forget: 8}) {
		t.Fatalf("unexpected %+v %#v", v, eff)
	}
}

func TestConfirmResolve(t *testing.T) {
	c := DeleteConfirm(i18n.English())
	if _, choice := c.Resolve(true); choice != ChoiceNone {
		t.Fatalf("hidden dialog resolved to %v", choice)
	}
	c, choice := c.Show().Resolve(false)
	if choice != ChoiceCancel || c.Visible {
		t.Fatalf("unexpected cancel resolution %v %+v", choice, c)
	}
	c, choice = c.Show().Resolve(true)
	if choice != ChoiceConfirm || c.Visible {
		t.Fatalf("unexpected confirm resolution %v %+v", choice, c)
	}
}
