// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookmarks parses the text copied from a player's bookmarks
// panel into timestamped notes. Like package chapters it segments with
// named heuristics instead of a fixed grammar: a line carrying a
// parseable timestamp (bare, or trailing a "Chapter / H:MM:SS" location
// line) opens a bookmark, furniture lines are dropped, and the lines in
// between become the note.
//
// Only a location-shaped line whose timestamp fails to parse marks a
// dropped group. A bare malformed token ("1:xx:00" on a line of its
// own) is indistinguishable from note text and is kept as note text;
// losing words from a note would be worse than carrying a garbled one.
//
// Source order is preserved as copied; the panel sometimes lists
// newest-first, and ordering is the renderer's responsibility.
package bookmarks

import (
	"fmt"
	"strings"

	"github.com/pdiddy/booknotes/internal/timestamp"
	"github.com/pdiddy/booknotes/pkg/types"
)

// actionLabel is the panel's per-bookmark action link, pure furniture.
const actionLabel = "[Go to bookmark]"

// Result holds the parsed bookmarks in source order plus the number of
// groups skipped for an unparsable timestamp. Dropped is reported, not
// fatal: one bad group never aborts the parse.
type Result struct {
	Bookmarks []types.Bookmark
	Dropped   int
}

// Parse segments blob into bookmark groups. It fails with
// types.ErrEmptyInput only when no bookmark survives.
func Parse(blob string) (Result, error) {
	var (
		res        Result
		open       bool
		offset     int
		notes      []string
		dropping   bool
		expectMeta bool
	)

	flush := func() {
		if !open {
			return
		}
		res.Bookmarks = append(res.Bookmarks, types.Bookmark{
			OffsetSeconds: offset,
			Note:          joinNote(notes),
		})
		open = false
		notes = nil
	}

	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, actionLabel) {
			continue
		}

		if secs, ok := extractOffset(line); ok {
			flush()
			open = true
			dropping = false
			expectMeta = true
			offset = secs
			continue
		}

		if looksLikeLocation(line) {
			// A location line whose timestamp would not parse: skip the
			// whole group, note lines included.
			flush()
			dropping = true
			res.Dropped++
			continue
		}
		if dropping {
			continue
		}
		if !open {
			// Panel furniture before the first bookmark.
			continue
		}
		if expectMeta && isDateLine(line) {
			expectMeta = false
			continue
		}
		expectMeta = false
		notes = append(notes, line)
	}
	flush()

	if len(res.Bookmarks) == 0 {
		return res, fmt.Errorf("%w: no bookmarks in blob", types.ErrEmptyInput)
	}
	return res, nil
}

// extractOffset pulls a timestamp from a line: either the whole line is
// a token, or the line is a "Chapter name / H:MM:SS" location line and
// the segment after the last " / " is tried (the last separator, because
// chapter titles themselves may contain " / ").
func extractOffset(line string) (int, bool) {
	if secs, err := timestamp.Parse(line); err == nil {
		return secs, true
	}
	if i := strings.LastIndex(line, " / "); i >= 0 {
		if secs, err := timestamp.Parse(line[i+3:]); err == nil {
			return secs, true
		}
	}
	return 0, false
}

// looksLikeLocation reports whether a line has the location-line shape
// ("something / something-with-a-colon") even though its timestamp did
// not parse. Such lines mark a malformed group to be dropped.
func looksLikeLocation(line string) bool {
	i := strings.LastIndex(line, " / ")
	return i >= 0 && strings.Contains(line[i+3:], ":")
}

// isDateLine reports whether a line is the "date | time" metadata line
// the panel prints under each bookmark. Only consulted for the first
// line after a timestamp, so notes containing " | " further down
// survive.
func isDateLine(line string) bool {
	parts := strings.Split(line, " | ")
	return len(parts) == 2 && strings.TrimSpace(parts[0]) != "" && strings.TrimSpace(parts[1]) != ""
}

// joinNote collapses the collected note lines into one trimmed string.
// The panel wraps quotes around highlighted text; they are panel
// decoration, not note content.
func joinNote(lines []string) string {
	return strings.Trim(strings.Join(lines, " "), ` "`)
}
