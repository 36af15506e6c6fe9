package screen

// Effect is work requested by a transition.
type Effect interface {
	effect()
}

// FetchEffect asks for the note with ID to be loaded.
type FetchEffect struct {
	ID int64
}

// SaveEffect asks for the draft to be persisted. HasID is false for a note
// that has never been saved.
type SaveEffect struct {
	ID    int64
	HasID bool
	Title string
	Text  string
}

// DeleteEffect asks for the note with ID to be removed.
type DeleteEffect struct {
	ID int64
}

// ShareEffect hands Text to the share target.
type ShareEffect struct {
	Text string
}

// BackEffect leaves the screen. A non-zero Forget names a deleted note whose
// routes must be dropped from the back stack.
type BackEffect struct {
	Forget int64
}

func (FetchEffect) effect()  {}
func (SaveEffect) effect()   {}
func (DeleteEffect) effect() {}
func (ShareEffect) effect()  {}
func (BackEffect) effect()   {}

// Phase is the lifecycle position of a screen.
type Phase int

const (
	Loading Phase = iota
	Ready
	Saving
	Deleting
	Navigated
	// Failed is an editor whose note could not be read. The target is kept
	// so nothing is written until a retry succeeds.
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Saving:
		return "saving"
	case Deleting:
		return "deleting"
	case Navigated:
		return "navigated"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// NoticeKind classifies a transient message shown to the user.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeNotFound
	NoticeLoadFailed
	NoticeSaveFailed
	NoticeDeleteFailed
	NoticeShared
	NoticeShareFailed
	NoticeUnsaved
)

// Notice is a transient message with the error that caused it, if any.
type Notice struct {
	Kind NoticeKind
	Err  error
}

// Active reports whether there is anything to show.
func (n Notice) Active() bool {
	return n.Kind != NoticeNone
}

// IsError reports whether the notice describes a failure.
func (n Notice) IsError() bool {
	switch n.Kind {
	case NoticeNone, NoticeShared, NoticeUnsaved:
		return false
	default:
		return true
	}
}
