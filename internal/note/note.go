// Package note defines the in-memory representation of a note and the
// errors shared by every layer that handles notes.
package note

import (
	"strings"
	"time"
)

// TitleLimit caps the number of runes kept when a title is derived from text.
const TitleLimit = 60

// Metadata identifies a note and carries its display title.
// ID is zero until the note is first persisted.
type Metadata struct {
	ID      int64
	Title   string
	Created time.Time
	Updated time.Time
}

// HasID reports whether the note has been persisted.
func (m Metadata) HasID() bool {
	return m.ID > 0
}

// Contents holds the note body.
type Contents struct {
	Text string
}

// Note composes metadata and contents. It is a value type: callers replace
// notes rather than mutating shared ones.
type Note struct {
	Metadata Metadata
	Contents Contents
}

// New returns a transient note with no identifier.
func New(title string) Note {
	return Note{Metadata: Metadata{Title: title}}
}

// DeriveTitle returns the first non-blank line of text, trimmed and capped at
// TitleLimit runes. Text without such a line yields an empty title.
func DeriveTitle(text string) string {
	for line := range strings.SplitSeq(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		runes := []rune(trimmed)
		if len(runes) > TitleLimit {
			return strings.TrimSpace(string(runes[:TitleLimit]))
		}
		return trimmed
	}
	return ""
}
