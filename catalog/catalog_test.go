// ABOUTME: Tests for catalog construction, lookup, ordering, and file resolution.
// ABOUTME: Uses fstest.MapFS for the samples filesystem and rapid for ordering properties.
package catalog

import (
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func bridgeEntry() Entry {
	return Entry{ID: "bridge", Label: "Serial Bridge Demo", Filename: "bridge-sample.html"}
}

func fullscreenEntry() Entry {
	return Entry{ID: "fullscreen", Label: "Fullscreen UI Demo", Filename: "fullscreen-panel.html"}
}

func TestNewKeepsInsertionOrder(t *testing.T) {
	c, err := New(fullscreenEntry(), bridgeEntry())
	require.NoError(t, err)

	assert.Equal(t, []string{"fullscreen", "bridge"}, c.IDs())
	assert.Equal(t, 2, c.Len())

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Fullscreen UI Demo", entries[0].Label)
	assert.Equal(t, "Serial Bridge Demo", entries[1].Label)
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := MustNew(bridgeEntry())

	entries := c.Entries()
	entries[0].Label = "changed"

	e, ok := c.Lookup("bridge")
	require.True(t, ok)
	assert.Equal(t, "Serial Bridge Demo", e.Label)
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty id", []Entry{{ID: " ", Label: "x", Filename: "x.html"}}},
		{"slash in id", []Entry{{ID: "a/b", Label: "x", Filename: "x.html"}}},
		{"empty label", []Entry{{ID: "a", Label: "", Filename: "x.html"}}},
		{"empty filename", []Entry{{ID: "a", Label: "x"}}},
		{"dot filename", []Entry{{ID: "a", Label: "x", Filename: "."}}},
		{"parent traversal", []Entry{{ID: "a", Label: "x", Filename: "../secret.html"}}},
		{"absolute path", []Entry{{ID: "a", Label: "x", Filename: "/etc/passwd"}}},
		{"duplicate id", []Entry{bridgeEntry(), bridgeEntry()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			assert.Error(t, err)
		})
	}
}

func TestMustNewPanicsOnInvalidEntry(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Entry{ID: "", Label: "x", Filename: "x.html"})
	})
}

func TestGetUnknownWrapsErrNotFound(t *testing.T) {
	c := MustNew(bridgeEntry())

	_, err := c.Get("unknown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"bridge", "fullscreen"}, c.IDs())
	e, ok := c.Lookup("bridge")
	require.True(t, ok)
	assert.Equal(t, "Serial Bridge Demo", e.Label)
	assert.Equal(t, "bridge-sample.html", e.Filename)
	assert.NotEmpty(t, e.Description)
}

func TestOpenReturnsFileContents(t *testing.T) {
	fsys := fstest.MapFS{
		"bridge-sample.html": {Data: []byte("<html>bridge</html>")},
	}
	c := MustNew(bridgeEntry())

	e, f, err := c.Open(fsys, "bridge")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "bridge", e.ID)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "<html>bridge</html>", string(data))
}

func TestOpenUnknownID(t *testing.T) {
	c := MustNew(bridgeEntry())

	_, f, err := c.Open(fstest.MapFS{}, "nope")
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrFileMissing)
}

func TestOpenMissingFile(t *testing.T) {
	c := MustNew(bridgeEntry(), fullscreenEntry())
	fsys := fstest.MapFS{
		"bridge-sample.html": {Data: []byte("x")},
	}

	e, f, err := c.Open(fsys, "fullscreen")
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrFileMissing)
	assert.Equal(t, "Fullscreen UI Demo", e.Label)
}

func TestOpenDirectoryCountsAsMissing(t *testing.T) {
	c := MustNew(Entry{ID: "dir", Label: "Dir", Filename: "nested"})
	fsys := fstest.MapFS{
		"nested/index.html": {Data: []byte("x")},
	}

	_, f, err := c.Open(fsys, "dir")
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrFileMissing)
}

func TestMissing(t *testing.T) {
	c := MustNew(bridgeEntry(), fullscreenEntry())
	fsys := fstest.MapFS{
		"bridge-sample.html": {Data: []byte("x")},
	}

	missing := c.Missing(fsys)
	require.Len(t, missing, 1)
	assert.Equal(t, "fullscreen", missing[0].ID)

	assert.True(t, Exists(fsys, bridgeEntry()))
	assert.False(t, Exists(fsys, fullscreenEntry()))
}

func TestPropertyLookupAndOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-z][a-z0-9_-]{0,11}`),
			1, 20, rapid.ID[string],
		).Draw(t, "ids")

		entries := make([]Entry, len(ids))
		for i, id := range ids {
			entries[i] = Entry{ID: id, Label: "Label " + id, Filename: id + ".html"}
		}

		c, err := New(entries...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := c.IDs()
		for i, id := range ids {
			if got[i] != id {
				t.Fatalf("position %d: expected %q, got %q", i, id, got[i])
			}
			e, ok := c.Lookup(id)
			if !ok || e.Label != "Label "+id {
				t.Fatalf("lookup %q returned %+v, %v", id, e, ok)
			}
		}

		probe := rapid.StringMatching(`[A-Z]{1,8}`).Draw(t, "probe")
		if _, err := c.Get(probe); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for %q, got %v", probe, err)
		}
	})
}
