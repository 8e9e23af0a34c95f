// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/booknotes/pkg/types"
)

// Markdown renders the resolved entries as one markdown document: a
// `##` heading per chapter in chapter order (chapters without bookmarks
// are omitted), one list item per bookmark in ascending offset order.
// An entry with an empty note renders without the trailing separator.
func Markdown(book types.Book, marks []types.Bookmark, dropped int, cfg types.RenderConfig) string {
	var b strings.Builder
	current := -1

	for _, r := range resolve(book, marks, cfg) {
		if r.chapter != current {
			if current >= 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "## %s\n\n", r.entry.ChapterTitle)
			current = r.chapter
		}
		fmt.Fprintf(&b, "- [%s %d%%](%s)", r.entry.TimestampDisplay, r.entry.Percentage, r.entry.DeepLink)
		if r.entry.Note != "" {
			fmt.Fprintf(&b, " - %s", r.entry.Note)
		}
		b.WriteString("\n")
	}

	if cfg.IncludeSummary && dropped > 0 {
		fmt.Fprintf(&b, "\n_%d bookmark(s) skipped: unreadable timestamp._\n", dropped)
	}

	return b.String()
}
