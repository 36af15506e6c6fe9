package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/quill/internal/note"
)

// writeConfig points quill at a fresh data directory using backend.
func writeConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("data_dir = %q\nbackend = %q\n", filepath.Join(dir, "data"), backend)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNewShowListRemove(t *testing.T) {
	for _, backend := range []string{"sqlite", "markdown"} {
		t.Run(backend, func(t *testing.T) {
			cfg := writeConfig(t, backend)

			out, err := execute(t, "", "--config", cfg, "new", "Groceries")
			require.NoError(t, err)
			assert.Equal(t, "1\n", out)

			out, err = execute(t, "Packing list\nsocks\n", "--config", cfg, "new")
			require.NoError(t, err)
			assert.Equal(t, "2\n", out)

			out, err = execute(t, "", "--config", cfg, "show", "2")
			require.NoError(t, err)
			assert.Equal(t, "Packing list\nsocks\n", out)

			out, err = execute(t, "", "--config", cfg, "list")
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, 2)
			assert.True(t, strings.HasPrefix(lines[0], "2 "), "newest first: %q", lines[0])
			assert.Contains(t, lines[1], "Groceries")

			out, err = execute(t, "", "--config", cfg, "rm", "1")
			require.NoError(t, err)
			assert.Equal(t, "Note deleted: 1\n", out)

			_, err = execute(t, "", "--config", cfg, "show", "1")
			require.Error(t, err)
			assert.ErrorIs(t, err, note.ErrNotFound)

			// Removing again is not an error.
			_, err = execute(t, "", "--config", cfg, "rm", "1")
			require.NoError(t, err)
		})
	}
}

func TestListQueryAndJSON(t *testing.T) {
	cfg := writeConfig(t, "markdown")
	for _, text := range []string{"Groceries", "Garden plans", "Travel"} {
		_, err := execute(t, "", "--config", cfg, "new", text)
		require.NoError(t, err)
	}

	out, err := execute(t, "", "--config", cfg, "list", "--json", "gr")
	require.NoError(t, err)

	var items []noteJSON
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.NotEmpty(t, items)
	assert.Equal(t, "Groceries", items[0].Title)
	for _, item := range items {
		assert.NotEqual(t, "Travel", item.Title)
		assert.Nil(t, item.Text)
	}
}

func TestShowJSONIncludesText(t *testing.T) {
	cfg := writeConfig(t, "sqlite")
	_, err := execute(t, "", "--config", cfg, "new", "Groceries")
	require.NoError(t, err)

	out, err := execute(t, "", "--config", cfg, "show", "--json", "1")
	require.NoError(t, err)

	var item noteJSON
	require.NoError(t, json.Unmarshal([]byte(out), &item))
	assert.Equal(t, int64(1), item.ID)
	require.NotNil(t, item.Text)
	assert.Equal(t, "Groceries", *item.Text)
}

func TestInvalidIDs(t *testing.T) {
	cfg := writeConfig(t, "sqlite")
	for _, arg := range []string{"0", "-1", "abc"} {
		_, err := execute(t, "", "--config", cfg, "show", arg)
		assert.Error(t, err, arg)
	}
}

func TestInvalidConfigIsReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"postgres\"\n"), 0o644))

	_, err := execute(t, "", "--config", path, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "quill version dev\n", out)
}

func TestFilterNotesOrdersByMatch(t *testing.T) {
	notes := []note.Metadata{
		{ID: 1, Title: "Travel"},
		{ID: 2, Title: "Groceries"},
		{ID: 3, Title: "Garden"},
	}
	assert.Equal(t, notes, filterNotes(notes, ""))

	got := filterNotes(notes, "gro")
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}
