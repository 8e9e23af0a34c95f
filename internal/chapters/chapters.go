// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chapters parses the text copied from a player's chapters
// panel into an ordered, contiguous sequence of Chapter records.
//
// The panel's layout is not a stable contract, so segmentation is
// heuristic rather than a rigid line-count grammar: a line that parses
// as a timestamp is a time line, the nearest preceding non-time line is
// the group's title, and everything else is panel furniture. Layout
// drift lands in the named helpers here, not in callers.
package chapters

import (
	"fmt"
	"strings"

	"github.com/pdiddy/booknotes/internal/timestamp"
	"github.com/pdiddy/booknotes/pkg/types"
)

// group is one segmented chapter candidate: a title line followed by a
// run of one or two timestamp lines.
type group struct {
	title  string
	first  int
	second int
	twoTok bool
}

// Parse segments blob into chapter groups and resolves them into
// contiguous Chapter records. Malformed groups are skipped; Parse only
// fails, with types.ErrEmptyInput, when no group parses at all.
func Parse(blob string) ([]types.Chapter, error) {
	groups, maxSeen := segment(blob)
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no chapter groups in blob", types.ErrEmptyInput)
	}

	var chapters []types.Chapter
	if startOffsetLayout(groups) {
		chapters = resolveStarts(groups, maxSeen)
	} else {
		chapters = resolveDurations(groups)
	}

	if len(chapters) == 0 {
		return nil, fmt.Errorf("%w: no chapter groups in blob", types.ErrEmptyInput)
	}
	return chapters, nil
}

// segment walks the blob line by line and collects chapter groups. It
// also returns the maximum timestamp value seen anywhere in the blob,
// which bounds the final chapter when nothing else does (panels often
// append a total-duration line that is not a chapter of its own).
func segment(blob string) ([]group, int) {
	var (
		groups  []group
		pending string
		inRun   bool
		runLen  int
		maxSeen int
	)

	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			inRun = false
			continue
		}

		secs, err := timestamp.Parse(line)
		if err != nil {
			// A title candidate. Whatever was pending before it is
			// furniture or a group whose time line never came.
			pending = line
			inRun = false
			continue
		}

		if secs > maxSeen {
			maxSeen = secs
		}

		if inRun && len(groups) > 0 {
			runLen++
			if runLen == 2 {
				groups[len(groups)-1].second = secs
				groups[len(groups)-1].twoTok = true
			}
			// A third token in a run is a stray total line; it already
			// contributed to maxSeen.
			continue
		}

		if pending == "" && len(groups) > 0 {
			// A token with no title of its own past the first group is a
			// stray line (panels append the total duration at the end);
			// it bounds the book via maxSeen but is not a chapter.
			continue
		}
		title := pending
		if title == "" {
			title = types.DefaultUntitledLabel
		}
		groups = append(groups, group{title: title, first: secs})
		pending = ""
		inRun = true
		runLen = 1
	}

	return groups, maxSeen
}

// startOffsetLayout reports whether the groups' first tokens read as
// start offsets: at least two groups, starting from zero, strictly
// ascending. Anything else is the duration layout, where each token is
// the chapter's own length.
func startOffsetLayout(groups []group) bool {
	if len(groups) < 2 || groups[0].first != 0 {
		return false
	}
	for i := 1; i < len(groups); i++ {
		if groups[i].first <= groups[i-1].first {
			return false
		}
	}
	return true
}

// resolveStarts builds chapters from start offsets. Interior ends come
// from the next chapter's start; the final end comes from the group's
// own second token, the largest timestamp seen in the blob, or a
// one-second floor when the blob offers nothing later. A zero second
// token carries no information and falls through to the defaults so
// Start < End always holds.
func resolveStarts(groups []group, maxSeen int) []types.Chapter {
	chapters := make([]types.Chapter, 0, len(groups))
	for i, g := range groups {
		start := g.first
		var end int
		switch {
		case i < len(groups)-1:
			end = groups[i+1].first
		case g.twoTok && g.second > start:
			end = g.second
		case g.twoTok && g.second > 0:
			end = start + g.second
		case maxSeen > start:
			end = maxSeen
		default:
			end = start + 1
		}
		chapters = append(chapters, types.Chapter{Title: g.title, StartSeconds: start, EndSeconds: end})
	}
	return chapters
}

// resolveDurations builds chapters from per-chapter lengths, starts
// accumulating from zero. Zero-length groups are skipped as malformed.
func resolveDurations(groups []group) []types.Chapter {
	chapters := make([]types.Chapter, 0, len(groups))
	cum := 0
	for _, g := range groups {
		dur := g.first
		if g.twoTok && g.second > g.first {
			// Explicit start and end pair. The start never moves the
			// cursor backwards past ground already covered, or chapters
			// would overlap.
			if g.first > cum {
				cum = g.first
			}
			dur = g.second - cum
		}
		if dur <= 0 {
			continue
		}
		chapters = append(chapters, types.Chapter{Title: g.title, StartSeconds: cum, EndSeconds: cum + dur})
		cum += dur
	}
	return chapters
}
