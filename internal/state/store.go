package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/quill/internal/note"
)

// Snapshot represents the latest note listing available to the UI.
type Snapshot struct {
	Notes               []note.Metadata
	Loaded              bool   // at least one listing succeeded
	Version             uint64 // bumped on every successful update
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive refresh failures
}

// IsDegraded returns true when the store has failed several refreshes in a row.
func (s Snapshot) IsDegraded() bool {
	return s.ConsecutiveFailures >= 2
}

// Find returns the metadata for id from the listing.
func (s Snapshot) Find(id int64) (note.Metadata, bool) {
	for _, m := range s.Notes {
		if m.ID == id {
			return m, true
		}
	}
	return note.Metadata{}, false
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored listing. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(notes []note.Metadata, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Notes = cloneNotes(notes)
	s.snapshot.Loaded = true
	s.snapshot.Version++
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Notes = cloneNotes(s.snapshot.Notes)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneNotes(items []note.Metadata) []note.Metadata {
	if len(items) == 0 {
		return nil
	}
	dup := make([]note.Metadata, len(items))
	copy(dup, items)
	return dup
}
