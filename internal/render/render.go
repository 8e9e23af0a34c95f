// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render merges parsed chapters and bookmarks into the final
// markdown document: every bookmark is assigned to the chapter whose
// interval contains it, display values are derived, and the entries are
// grouped under chapter headings with a deep link back to the player.
package render

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/booknotes/internal/timestamp"
	"github.com/pdiddy/booknotes/pkg/types"
)

// NewBook binds the base URL to the parsed chapters and derives the
// total book length as the maximum chapter end.
func NewBook(baseURL string, chapters []types.Chapter) types.Book {
	total := 0
	for _, c := range chapters {
		if c.EndSeconds > total {
			total = c.EndSeconds
		}
	}
	return types.Book{BaseURL: baseURL, TotalSeconds: total, Chapters: chapters}
}

// assign returns the index of the chapter containing offset. Offsets
// outside the book clamp to the first or last chapter; copy-paste
// timestamp noise is expected and must not lose notes.
func assign(chapters []types.Chapter, offset int) int {
	for i, c := range chapters {
		if c.Contains(offset) {
			return i
		}
	}
	if offset < chapters[0].StartSeconds {
		return 0
	}
	return len(chapters) - 1
}

// percentage converts an offset to whole-book progress, rounded and
// clamped to [0, 100].
func percentage(offset, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(offset) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// deepLink expands the configured link template. A base URL re-copied
// from the player can already carry the template's position parameter;
// it is cut first so links do not accumulate, whatever scheme the
// template names.
func deepLink(template, baseURL string, offset int) string {
	base := baseURL
	if marker := stripMarker(template); marker != "" {
		if i := strings.Index(base, marker); i >= 0 {
			base = base[:i]
		}
	}
	link := strings.ReplaceAll(template, "{base}", base)
	return strings.ReplaceAll(link, "{seconds}", strconv.Itoa(offset))
}

// stripMarker returns the literal the template places between {base}
// and {seconds} ("&bookmarkPos=" for the default scheme). That literal
// is exactly what a previously rendered link carries after its base.
func stripMarker(template string) string {
	i := strings.Index(template, "{base}")
	j := strings.Index(template, "{seconds}")
	if i < 0 || j < i+len("{base}") {
		return ""
	}
	return template[i+len("{base}") : j]
}

// resolved pairs a rendered entry with its chapter index. The index
// stays internal: titles are not unique ("Untitled Chapter" can repeat),
// so grouping must key on the index.
type resolved struct {
	chapter int
	entry   types.RenderedEntry
}

// resolve sorts bookmarks ascending by offset (the panel sometimes
// lists newest-first, so source order is never trusted), assigns each
// to its chapter, and derives the display values. Assignment is
// monotonic in offset, so the result is grouped by chapter already.
func resolve(book types.Book, marks []types.Bookmark, cfg types.RenderConfig) []resolved {
	if len(book.Chapters) == 0 {
		return nil
	}
	sorted := make([]types.Bookmark, len(marks))
	copy(sorted, marks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OffsetSeconds < sorted[j].OffsetSeconds
	})

	out := make([]resolved, 0, len(sorted))
	for _, m := range sorted {
		idx := assign(book.Chapters, m.OffsetSeconds)
		out = append(out, resolved{
			chapter: idx,
			entry: types.RenderedEntry{
				ChapterTitle:     book.Chapters[idx].Title,
				TimestampDisplay: timestamp.Format(m.OffsetSeconds),
				Percentage:       percentage(m.OffsetSeconds, book.TotalSeconds),
				Note:             m.Note,
				DeepLink:         deepLink(cfg.Template(), book.BaseURL, m.OffsetSeconds),
			},
		})
	}
	return out
}

// Entries resolves bookmarks against the book and returns the rendered
// entries in ascending offset order.
func Entries(book types.Book, marks []types.Bookmark, cfg types.RenderConfig) []types.RenderedEntry {
	rs := resolve(book, marks, cfg)
	entries := make([]types.RenderedEntry, len(rs))
	for i, r := range rs {
		entries[i] = r.entry
	}
	return entries
}
