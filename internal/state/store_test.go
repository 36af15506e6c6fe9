package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/quill/internal/note"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	notes := []note.Metadata{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}

	before := time.Now()
	s.Update(notes, nil)

	snap := s.Snapshot()
	if !snap.Loaded || snap.Version != 1 {
		t.Fatalf("snapshot Loaded=%v Version=%d, want true/1", snap.Loaded, snap.Version)
	}
	if len(snap.Notes) != 2 || snap.Notes[0].ID != 2 {
		t.Fatalf("snapshot notes = %#v, want 2 items", snap.Notes)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Notes[0].Title = "mutated"
	if got := s.Snapshot().Notes[0].Title; got != "b" {
		t.Fatalf("Snapshot should clone notes; got title %q want b", got)
	}

	// So should the input slice.
	notes[1].Title = "changed"
	if got := s.Snapshot().Notes[1].Title; got != "a" {
		t.Fatalf("Update should clone input; got title %q want a", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]note.Metadata{{ID: 1}}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.Notes) != 1 || snap.Notes[0].ID != 1 {
		t.Fatalf("notes changed on error: got %#v want %#v", snap.Notes, prev.Notes)
	}
	if snap.Version != prev.Version {
		t.Fatalf("Version bumped on error: %d -> %d", prev.Version, snap.Version)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsDegraded() {
		t.Fatalf("fresh store should be healthy: %+v", snap)
	}

	s.Update(nil, errors.New("fail 1"))
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsDegraded() {
		t.Fatalf("after one failure: %+v", snap)
	}

	s.Update(nil, errors.New("fail 2"))
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsDegraded() {
		t.Fatalf("after two failures: %+v", snap)
	}

	// Success resets counter
	s.Update(nil, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsDegraded() {
		t.Fatalf("success should reset failures: %+v", snap)
	}
	if !snap.Loaded || len(snap.Notes) != 0 {
		t.Fatalf("empty listing should still mark loaded: %+v", snap)
	}
}

func TestSnapshot_Find(t *testing.T) {
	snap := Snapshot{Notes: []note.Metadata{{ID: 4, Title: "four"}}}
	if m, ok := snap.Find(4); !ok || m.Title != "four" {
		t.Fatalf("Find(4) = %+v, %v", m, ok)
	}
	if _, ok := snap.Find(5); ok {
		t.Fatalf("Find(5) should miss")
	}
}
