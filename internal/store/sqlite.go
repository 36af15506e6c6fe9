package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/five82/quill/internal/note"
)

// SQLiteFile is the database file name inside the data directory.
const SQLiteFile = "notes.db"

// AUTOINCREMENT keeps deleted ids from ever being handed out again.
const schema = `
CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at);
`

// SQLiteStore keeps notes in a single SQLite database.
type SQLiteStore struct {
	mu     sync.Mutex
	db     *sql.DB
	logger *log.Logger
	now    func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) dir/notes.db.
func OpenSQLite(ctx context.Context, dir string, logger *log.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dir, SQLiteFile)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			logger.Debug("sqlite pragma failed", "pragma", pragma, "err", err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	logger.Debug("sqlite store ready", "path", path)

	return &SQLiteStore{db: db, logger: logger, now: time.Now}, nil
}

func (s *SQLiteStore) Fetch(ctx context.Context, id int64) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, body, created_at, updated_at FROM notes WHERE id = ?`, id)

	var (
		n                note.Note
		created, updated int64
	)
	err := row.Scan(&n.Metadata.ID, &n.Metadata.Title, &n.Contents.Text, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, note.NewNotFoundError(id)
	}
	if err != nil {
		return note.Note{}, note.NewPersistenceError("fetch note", err)
	}
	n.Metadata.Created = time.UnixMilli(created)
	n.Metadata.Updated = time.UnixMilli(updated)
	return n, nil
}

func (s *SQLiteStore) Save(ctx context.Context, id int64, title, text string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixMilli()
	if id <= 0 {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO notes (title, body, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			title, text, now, now)
		if err != nil {
			return 0, note.NewPersistenceError("insert note", err)
		}
		newID, err := res.LastInsertId()
		if err != nil {
			return 0, note.NewPersistenceError("insert note", err)
		}
		s.logger.Debug("note created", "id", newID)
		return newID, nil
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, body = ?, updated_at = ? WHERE id = ?`,
		title, text, now, id)
	if err != nil {
		return 0, note.NewPersistenceError("update note", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, note.NewPersistenceError("update note", err)
	}
	if affected == 0 {
		return 0, note.NewNotFoundError(id)
	}
	s.logger.Debug("note updated", "id", id)
	return id, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return note.NewPersistenceError("delete note", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		s.logger.Debug("delete of absent note ignored", "id", id)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]note.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, created_at, updated_at FROM notes ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, note.NewPersistenceError("list notes", err)
	}
	defer func() { _ = rows.Close() }()

	var out []note.Metadata
	for rows.Next() {
		var (
			m                note.Metadata
			created, updated int64
		)
		if err := rows.Scan(&m.ID, &m.Title, &created, &updated); err != nil {
			return nil, note.NewPersistenceError("list notes", err)
		}
		m.Created = time.UnixMilli(created)
		m.Updated = time.UnixMilli(updated)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, note.NewPersistenceError("list notes", err)
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
