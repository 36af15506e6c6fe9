package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/five82/quill/internal/note"
)

// Store is the persistence collaborator for notes. Every method is a single
// request/response call; nothing is held open between calls.
type Store interface {
	// Fetch returns the note with id, or an error matching note.ErrNotFound.
	Fetch(ctx context.Context, id int64) (note.Note, error)

	// Save creates a note when id is zero and returns the fresh id. Otherwise
	// it overwrites the existing note in place and returns id unchanged.
	Save(ctx context.Context, id int64, title, text string) (int64, error)

	// Delete removes the note. Deleting an id that does not exist succeeds.
	Delete(ctx context.Context, id int64) error

	// List returns the metadata of every stored note, newest first.
	List(ctx context.Context) ([]note.Metadata, error)

	Close() error
}

// Watcher is implemented by stores that can report external changes.
// The returned channel is closed when ctx is cancelled.
type Watcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// Backend names accepted by Open.
const (
	BackendSQLite   = "sqlite"
	BackendMarkdown = "markdown"
)

// Options select and configure a backend.
type Options struct {
	Backend string
	Dir     string
	Logger  *log.Logger
}

// Open initializes the configured backend under opts.Dir.
func Open(ctx context.Context, opts Options) (Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendSQLite:
		return OpenSQLite(ctx, opts.Dir, logger)
	case BackendMarkdown:
		return OpenMarkdown(ctx, opts.Dir, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
