package screen

import "github.com/five82/quill/internal/i18n"

// Choice is the outcome of resolving a confirmation dialog.
type Choice int

const (
	// ChoiceNone means the dialog was not showing.
	ChoiceNone Choice = iota
	ChoiceConfirm
	ChoiceCancel
)

// Confirm is a two-button dialog.
type Confirm struct {
	Title        string
	Body         string
	ConfirmLabel string
	CancelLabel  string
	Visible      bool
}

// DeleteConfirm returns the hidden "delete note" dialog in the given language.
func DeleteConfirm(s i18n.Strings) Confirm {
	return Confirm{
		Title:        s.DeleteTitle,
		Body:         s.AreYouSure,
		ConfirmLabel: s.Delete,
		CancelLabel:  s.Cancel,
	}
}

// Show makes the dialog visible.
func (c Confirm) Show() Confirm {
	c.Visible = true
	return c
}

// Resolve hides the dialog and reports which action the caller should run.
// Exactly one of confirm or cancel results from a visible dialog.
func (c Confirm) Resolve(confirmed bool) (Confirm, Choice) {
	if !c.Visible {
		return c, ChoiceNone
	}
	c.Visible = false
	if confirmed {
		return c, ChoiceConfirm
	}
	return c, ChoiceCancel
}
