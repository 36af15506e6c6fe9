package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMarkdownStore(t *testing.T) *MarkdownStore {
	t.Helper()
	s, err := OpenMarkdown(context.Background(), t.TempDir(), log.New(os.Stderr))
	require.NoError(t, err)
	s.logger.SetLevel(log.ErrorLevel)
	return s
}

func TestMarkdownFileLayout(t *testing.T) {
	s := newMarkdownStore(t)
	id, err := s.Save(context.Background(), 0, "Groceries", "\nGroceries\nmilk\n")
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "1.md"))
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.HasPrefix(text, "---\n"))
	assert.Contains(t, text, "id: 1\n")
	assert.Contains(t, text, "title: Groceries\n")
	assert.True(t, strings.HasSuffix(text, "---\n\nGroceries\nmilk\n"))

	got, err := s.Fetch(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "\nGroceries\nmilk\n", got.Contents.Text)
}

func TestMarkdownReadsFilesWithoutFrontMatter(t *testing.T) {
	s := newMarkdownStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "7.md"), []byte("  Shopping  \nbread"), 0o644))

	got, err := s.Fetch(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Metadata.ID)
	assert.Equal(t, "Shopping", got.Metadata.Title)
	assert.Equal(t, "  Shopping  \nbread", got.Contents.Text)
	assert.False(t, got.Metadata.Updated.IsZero())

	next, err := s.Save(context.Background(), 0, "new", "new")
	require.NoError(t, err)
	assert.Equal(t, int64(8), next)
}

func TestMarkdownListSkipsForeignFiles(t *testing.T) {
	s := newMarkdownStore(t)
	_, err := s.Save(context.Background(), 0, "one", "one")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "README.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "3.md"), []byte("---\nid: [\n"), 0o644))

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "one", list[0].Title)
}

func TestMarkdownSaveKeepsCreated(t *testing.T) {
	s := newMarkdownStore(t)
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return first }
	id, err := s.Save(context.Background(), 0, "a", "a")
	require.NoError(t, err)

	s.now = func() time.Time { return first.Add(time.Hour) }
	_, err = s.Save(context.Background(), id, "b", "b")
	require.NoError(t, err)

	got, err := s.Fetch(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.Metadata.Created.Equal(first))
	assert.True(t, got.Metadata.Updated.Equal(first.Add(time.Hour)))
}

func TestDecodeMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		title   string
		body    string
		wantErr bool
	}{
		{name: "bare body", in: "hello", body: "hello"},
		{name: "header and body", in: "---\ntitle: T\n---\nbody\n", title: "T", body: "body\n"},
		{name: "header only", in: "---\ntitle: T\n---", title: "T", body: ""},
		{name: "empty header", in: "---\n---\nbody", body: "body"},
		{name: "crlf", in: "---\r\ntitle: T\r\n---\r\nbody", title: "T", body: "body"},
		{name: "crlf body kept", in: "---\r\ntitle: T\r\n---\r\na\r\nb\r\n", title: "T", body: "a\r\nb\r\n"},
		{name: "delimiter in body", in: "---\ntitle: T\n---\n---\nx", title: "T", body: "---\nx"},
		{name: "unterminated", in: "---\ntitle: T\nbody", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := decodeMarkdown([]byte(tt.in))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, meta.Title)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestMarkdownWatchReportsExternalChanges(t *testing.T) {
	s := newMarkdownStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := s.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "5.md"), []byte("external"), 0o644))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification")
	}

	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
