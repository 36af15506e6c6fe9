package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/quill/internal/note"
)

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()
	out := map[string]Store{}
	for _, backend := range []string{BackendSQLite, BackendMarkdown} {
		s, err := Open(ctx, Options{Backend: backend, Dir: t.TempDir()})
		require.NoError(t, err, backend)
		t.Cleanup(func() { _ = s.Close() })
		out[backend] = s
	}
	return out
}

func TestSaveNewAssignsIDAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Save(ctx, 0, "Groceries", "Groceries\nmilk\neggs")
			require.NoError(t, err)
			assert.Equal(t, int64(1), id)

			got, err := s.Fetch(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, id, got.Metadata.ID)
			assert.Equal(t, "Groceries", got.Metadata.Title)
			assert.Equal(t, "Groceries\nmilk\neggs", got.Contents.Text)
			assert.False(t, got.Metadata.Updated.IsZero())

			second, err := s.Save(ctx, 0, "Other", "Other")
			require.NoError(t, err)
			assert.Greater(t, second, id)
		})
	}
}

func TestSaveExistingKeepsIDAndOverwrites(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Save(ctx, 0, "draft", "draft")
			require.NoError(t, err)

			for range 2 {
				again, err := s.Save(ctx, id, "final", "final text")
				require.NoError(t, err)
				assert.Equal(t, id, again)
			}

			got, err := s.Fetch(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "final", got.Metadata.Title)
			assert.Equal(t, "final text", got.Contents.Text)

			list, err := s.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})
	}
}

func TestSaveVanishedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Save(ctx, 42, "ghost", "ghost")
			require.Error(t, err)
			assert.ErrorIs(t, err, note.ErrNotFound)
		})
	}
}

func TestDeleteRemovesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Save(ctx, 0, "doomed", "doomed")
			require.NoError(t, err)

			require.NoError(t, s.Delete(ctx, id))
			_, err = s.Fetch(ctx, id)
			assert.ErrorIs(t, err, note.ErrNotFound)

			var nf *note.NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, id, nf.ID)

			require.NoError(t, s.Delete(ctx, id))
			require.NoError(t, s.Delete(ctx, 999))
		})
	}
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			first, err := s.Save(ctx, 0, "a", "a")
			require.NoError(t, err)
			require.NoError(t, s.Delete(ctx, first))

			next, err := s.Save(ctx, 0, "b", "b")
			require.NoError(t, err)
			assert.Greater(t, next, first)
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			switch typed := s.(type) {
			case *SQLiteStore:
				typed.now = tick
			case *MarkdownStore:
				typed.now = tick
			}

			a, err := s.Save(ctx, 0, "a", "a")
			require.NoError(t, err)
			b, err := s.Save(ctx, 0, "b", "b")
			require.NoError(t, err)
			_, err = s.Save(ctx, a, "a2", "a2")
			require.NoError(t, err)

			list, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, a, list[0].ID)
			assert.Equal(t, "a2", list[0].Title)
			assert.Equal(t, b, list[1].ID)
		})
	}
}

func TestEmptyNoteIsStored(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Save(ctx, 0, "", "")
			require.NoError(t, err)

			got, err := s.Fetch(ctx, id)
			require.NoError(t, err)
			assert.Empty(t, got.Metadata.Title)
			assert.Empty(t, got.Contents.Text)
		})
	}
}

func TestBodyBytesRoundTrip(t *testing.T) {
	ctx := context.Background()
	bodies := []string{
		"a\r\nb",
		"a\n\tb\r\nc",
		"---\nx",
		"line\n---\n",
		"\r\n\r\n",
		"trailing spaces  \n",
	}
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			for _, body := range bodies {
				id, err := s.Save(ctx, 0, "t", body)
				require.NoError(t, err)

				got, err := s.Fetch(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, body, got.Contents.Text, "body %q", body)
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: "paper", Dir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paper")
}
