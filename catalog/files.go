// ABOUTME: Resolves catalog entries against the samples filesystem.
// ABOUTME: Existence is checked per call so files can appear or vanish while serving.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
)

// Open looks up id and opens its backing file in fsys. It returns an error
// wrapping ErrNotFound for unknown IDs and ErrFileMissing when the file is
// absent or is a directory. The caller closes the returned file.
func (c *Catalog) Open(fsys fs.FS, id string) (Entry, fs.File, error) {
	e, err := c.Get(id)
	if err != nil {
		return Entry{}, nil, err
	}

	f, err := fsys.Open(e.Filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return e, nil, fmt.Errorf("%w: %s", ErrFileMissing, e.Filename)
		}
		return e, nil, fmt.Errorf("opening sample %s: %w", e.Filename, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return e, nil, fmt.Errorf("stat sample %s: %w", e.Filename, err)
	}
	if info.IsDir() {
		f.Close()
		return e, nil, fmt.Errorf("%w: %s is a directory", ErrFileMissing, e.Filename)
	}

	return e, f, nil
}

// Exists reports whether the entry's backing file is present in fsys as a
// regular file (or a symlink to one).
func Exists(fsys fs.FS, e Entry) bool {
	info, err := fs.Stat(fsys, e.Filename)
	return err == nil && !info.IsDir()
}

// Missing returns the entries whose backing files are absent from fsys, in
// display order.
func (c *Catalog) Missing(fsys fs.FS) []Entry {
	var missing []Entry
	for _, e := range c.entries {
		if !Exists(fsys, e) {
			missing = append(missing, e)
		}
	}
	return missing
}
