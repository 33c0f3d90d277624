// ABOUTME: Immutable, ordered catalog of demo samples keyed by sample ID.
// ABOUTME: Built once at startup and shared read-only by every request handler.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrNotFound reports a sample ID that is not in the catalog.
	ErrNotFound = errors.New("sample not found")

	// ErrFileMissing reports a catalog entry whose backing file is absent.
	ErrFileMissing = errors.New("sample file missing")
)

// Entry describes a single sample page.
type Entry struct {
	ID          string
	Label       string
	Filename    string // relative to the samples directory
	Description string // optional markdown
}

// Catalog is an ordered, read-only mapping from sample ID to Entry.
// Insertion order is the display order. A Catalog is never mutated after
// New returns, so it is safe for unsynchronized concurrent reads.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries in display order. It rejects empty or
// duplicate IDs, IDs containing a slash, empty labels, and filenames that are
// not clean relative paths. File existence is not checked here.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("duplicate sample id %q", e.ID)
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustNew is like New but panics on invalid entries. Intended for
// package-level catalogs whose contents are fixed at compile time.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

func validateEntry(e Entry) error {
	switch {
	case strings.TrimSpace(e.ID) == "":
		return errors.New("sample id must not be empty")
	case strings.Contains(e.ID, "/"):
		return fmt.Errorf("sample id %q must not contain '/'", e.ID)
	case strings.TrimSpace(e.Label) == "":
		return fmt.Errorf("sample %q: label must not be empty", e.ID)
	case e.Filename == "" || e.Filename == ".":
		return fmt.Errorf("sample %q: filename must not be empty", e.ID)
	case !fs.ValidPath(e.Filename):
		return fmt.Errorf("sample %q: filename %q must be a clean relative path", e.ID, e.Filename)
	}
	return nil
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Get is like Lookup but returns an error wrapping ErrNotFound.
func (c *Catalog) Get(id string) (Entry, error) {
	e, ok := c.Lookup(id)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return e, nil
}

// Entries returns a copy of all entries in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IDs returns the sample IDs in display order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
