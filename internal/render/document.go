// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/booknotes/internal/bookmarks"
	"github.com/pdiddy/booknotes/internal/chapters"
	"github.com/pdiddy/booknotes/pkg/types"
)

// Summary reports what one Document run saw: counts only, nothing is
// retained between runs.
type Summary struct {
	Chapters  int
	Bookmarks int
	Dropped   int
}

// Document is the whole pipeline: three input strings in, one markdown
// string out. Each call is an independent pure transformation; it is
// safe to run concurrently for different inputs.
//
// An empty base URL or a blob with no parseable groups fails with
// types.ErrEmptyInput. Individual malformed groups are skipped and
// reported through the summary, never as an error.
func Document(baseURL, chaptersBlob, bookmarksBlob string, cfg types.RenderConfig) (string, Summary, error) {
	base := firstLine(baseURL)
	if base == "" {
		return "", Summary{}, fmt.Errorf("%w: base URL", types.ErrEmptyInput)
	}

	chs, err := chapters.Parse(chaptersBlob)
	if err != nil {
		return "", Summary{}, fmt.Errorf("parsing chapters: %w", err)
	}

	res, err := bookmarks.Parse(bookmarksBlob)
	if err != nil {
		return "", Summary{Chapters: len(chs), Dropped: res.Dropped}, fmt.Errorf("parsing bookmarks: %w", err)
	}

	book := NewBook(base, chs)
	doc := Markdown(book, res.Bookmarks, res.Dropped, cfg)

	return doc, Summary{
		Chapters:  len(chs),
		Bookmarks: len(res.Bookmarks),
		Dropped:   res.Dropped,
	}, nil
}

// firstLine trims the clipboard-copied URL down to its first non-empty
// line; trailing newlines ride along with every copy.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
