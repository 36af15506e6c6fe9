package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/five82/quill/internal/note"
)

const (
	markdownExt  = ".md"
	sequenceFile = ".sequence"
	frontDelim   = "---"
)

// frontMatter is the YAML header written above each note body.
type frontMatter struct {
	ID      int64     `yaml:"id"`
	Title   string    `yaml:"title"`
	Created time.Time `yaml:"created"`
	Updated time.Time `yaml:"updated"`
}

// MarkdownStore keeps one <id>.md file per note with a YAML front matter
// header. The next id lives in a .sequence file so ids are never reused.
type MarkdownStore struct {
	mu     sync.Mutex
	dir    string
	logger *log.Logger
	now    func() time.Time
}

var (
	_ Store   = (*MarkdownStore)(nil)
	_ Watcher = (*MarkdownStore)(nil)
)

// OpenMarkdown prepares dir for use as a markdown note directory.
func OpenMarkdown(_ context.Context, dir string, logger *log.Logger) (*MarkdownStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create notes dir: %w", err)
	}
	logger.Debug("markdown store ready", "dir", dir)
	return &MarkdownStore{dir: dir, logger: logger, now: time.Now}, nil
}

// Dir returns the notes directory.
func (s *MarkdownStore) Dir() string {
	return s.dir
}

func (s *MarkdownStore) Fetch(_ context.Context, id int64) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(id)
}

func (s *MarkdownStore) Save(_ context.Context, id int64, title, text string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	meta := frontMatter{ID: id, Title: title, Created: now, Updated: now}
	if id <= 0 {
		next, err := s.nextID()
		if err != nil {
			return 0, note.NewPersistenceError("allocate note id", err)
		}
		meta.ID = next
	} else {
		existing, err := s.read(id)
		if err != nil {
			return 0, err
		}
		if !existing.Metadata.Created.IsZero() {
			meta.Created = existing.Metadata.Created.UTC()
		}
	}

	data, err := encodeMarkdown(meta, text)
	if err != nil {
		return 0, note.NewPersistenceError("encode note", err)
	}
	if err := writeFileAtomic(s.path(meta.ID), data, 0o644); err != nil {
		return 0, note.NewPersistenceError("write note", err)
	}
	s.logger.Debug("note written", "id", meta.ID)
	return meta.ID, nil
}

func (s *MarkdownStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("delete of absent note ignored", "id", id)
		return nil
	}
	if err != nil {
		return note.NewPersistenceError("delete note", err)
	}
	return nil
}

func (s *MarkdownStore) List(_ context.Context) ([]note.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, note.NewPersistenceError("list notes", err)
	}

	var out []note.Metadata
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := idFromFilename(entry.Name())
		if !ok {
			continue
		}
		n, err := s.read(id)
		if err != nil {
			s.logger.Warn("skipping unreadable note", "file", entry.Name(), "err", err)
			continue
		}
		out = append(out, n.Metadata)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Updated.Equal(out[j].Updated) {
			return out[i].Updated.After(out[j].Updated)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MarkdownStore) Close() error {
	return nil
}

func (s *MarkdownStore) path(id int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(id, 10)+markdownExt)
}

func (s *MarkdownStore) read(id int64) (note.Note, error) {
	path := s.path(id)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return note.Note{}, note.NewNotFoundError(id)
	}
	if err != nil {
		return note.Note{}, note.NewPersistenceError("read note", err)
	}

	meta, body, err := decodeMarkdown(data)
	if err != nil {
		return note.Note{}, note.NewPersistenceError("parse "+filepath.Base(path), err)
	}
	if meta.Updated.IsZero() {
		if info, statErr := os.Stat(path); statErr == nil {
			meta.Updated = info.ModTime()
		}
	}
	if meta.Created.IsZero() {
		meta.Created = meta.Updated
	}
	if meta.Title == "" {
		meta.Title = note.DeriveTitle(body)
	}

	// The file name is authoritative for the id.
	return note.Note{
		Metadata: note.Metadata{ID: id, Title: meta.Title, Created: meta.Created, Updated: meta.Updated},
		Contents: note.Contents{Text: body},
	}, nil
}

// nextID returns the next unused id and advances the sequence file. The
// sequence never drops below the highest id already on disk.
func (s *MarkdownStore) nextID() (int64, error) {
	seqPath := filepath.Join(s.dir, sequenceFile)
	var next int64 = 1

	raw, err := os.ReadFile(seqPath)
	switch {
	case err == nil:
		if v, parseErr := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64); parseErr == nil && v > next {
			next = v
		}
	case !errors.Is(err, os.ErrNotExist):
		return 0, fmt.Errorf("read sequence: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("scan notes dir: %w", err)
	}
	for _, entry := range entries {
		if id, ok := idFromFilename(entry.Name()); ok && id >= next {
			next = id + 1
		}
	}

	if err := writeFileAtomic(seqPath, []byte(strconv.FormatInt(next+1, 10)+"\n"), 0o644); err != nil {
		return 0, fmt.Errorf("write sequence: %w", err)
	}
	return next, nil
}

func idFromFilename(name string) (int64, bool) {
	if !strings.HasSuffix(name, markdownExt) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSuffix(name, markdownExt), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func encodeMarkdown(meta frontMatter, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(frontDelim + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString(frontDelim + "\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}

// decodeMarkdown splits a file into front matter and body. Files without a
// header are treated as a bare body so hand-written notes still load.
// Delimiter lines may end in CRLF; the body is returned byte for byte.
func decodeMarkdown(data []byte) (frontMatter, string, error) {
	var meta frontMatter

	line, rest, ok := cutLine(data)
	if !ok || line != frontDelim {
		return meta, string(data), nil
	}

	var header, body []byte
	for pos := 0; ; {
		line, next, ok := cutLine(rest[pos:])
		if line == frontDelim {
			header = rest[:pos]
			body = next
			break
		}
		if !ok {
			return meta, "", errors.New("front matter started but no closing delimiter found")
		}
		pos = len(rest) - len(next)
	}

	header = bytes.ReplaceAll(header, []byte("\r\n"), []byte("\n"))
	if err := yaml.Unmarshal(header, &meta); err != nil {
		return meta, "", fmt.Errorf("parse front matter: %w", err)
	}
	return meta, string(body), nil
}

// cutLine returns the first line of b without its terminator, the bytes after
// it, and whether a newline was found.
func cutLine(b []byte) (string, []byte, bool) {
	line, rest, found := bytes.Cut(b, []byte("\n"))
	return string(bytes.TrimSuffix(line, []byte("\r"))), rest, found
}
