// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot loads the three input blobs from a directory of
// plain-text files. A snapshot is how a clipboard capture is kept on
// disk for the CLI and the fixture harness: one file per blob, named
// link, chapters, and bookmarks (a .txt suffix is accepted).
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Snapshot holds the three blobs exactly as the core pipeline wants
// them: a base URL line and two free-form panel blobs.
type Snapshot struct {
	BaseURL   string
	Chapters  string
	Bookmarks string
}

// Load reads a snapshot directory. Every blob must be present and
// non-empty; the error names the first missing file so the caller can
// say which copy step was skipped.
func Load(dir string) (Snapshot, error) {
	link, err := readBlob(dir, "link")
	if err != nil {
		return Snapshot{}, err
	}
	chaptersBlob, err := readBlob(dir, "chapters")
	if err != nil {
		return Snapshot{}, err
	}
	bookmarksBlob, err := readBlob(dir, "bookmarks")
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{BaseURL: link, Chapters: chaptersBlob, Bookmarks: bookmarksBlob}, nil
}

// readBlob reads dir/name or dir/name.txt, whichever exists, and trims
// surrounding whitespace.
func readBlob(dir, name string) (string, error) {
	for _, candidate := range []string{name, name + ".txt"} {
		data, err := os.ReadFile(filepath.Join(dir, candidate))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("reading snapshot file %s: %w", filepath.Join(dir, candidate), err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return "", fmt.Errorf("snapshot %s: missing %s (or %s.txt)", dir, name, name)
}
