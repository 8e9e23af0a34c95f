// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared by the booknotes parsers
// and renderer. Every value is transient: records are built from the
// three input blobs, consumed by one rendering pass, and discarded.
package types

// Chapter is a titled interval of a book identified by start and end
// offsets in seconds. Start < End; within a book, chapters are
// contiguous and ordered ascending by Start.
type Chapter struct {
	// Title is the chapter title as copied from the chapters panel,
	// trimmed; "Untitled Chapter" when the panel supplied none.
	Title string `json:"title" yaml:"title"`

	// StartSeconds is the elapsed playback time at which the chapter begins.
	StartSeconds int `json:"start_seconds" yaml:"start_seconds"`

	// EndSeconds is the elapsed playback time at which the chapter ends
	// (exclusive; equals the next chapter's StartSeconds).
	EndSeconds int `json:"end_seconds" yaml:"end_seconds"`
}

// Contains reports whether offset falls inside the chapter's half-open
// interval [StartSeconds, EndSeconds).
func (c Chapter) Contains(offset int) bool {
	return offset >= c.StartSeconds && offset < c.EndSeconds
}

// Bookmark is a single timestamped note made at a point in the book.
// OffsetSeconds >= 0; Note may be empty for a bare bookmark.
type Bookmark struct {
	// OffsetSeconds is the elapsed playback time of the bookmark.
	OffsetSeconds int `json:"offset_seconds" yaml:"offset_seconds"`

	// Note is the free-form annotation text, trimmed; empty means the
	// bookmark carries no note.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Book groups the parsed chapters with the player base URL for one
// formatting pass.
type Book struct {
	// BaseURL is the cloud player link the deep links derive from.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// TotalSeconds is the book length, derived as the maximum chapter
	// EndSeconds.
	TotalSeconds int `json:"total_seconds" yaml:"total_seconds"`

	// Chapters holds the parsed chapters in ascending start order.
	Chapters []Chapter `json:"chapters" yaml:"chapters"`
}

// RenderedEntry is one bookmark resolved against its containing chapter,
// with the display values the markdown output is built from.
type RenderedEntry struct {
	// ChapterTitle is the title of the chapter the bookmark belongs to.
	ChapterTitle string `json:"chapter_title" yaml:"chapter_title"`

	// TimestampDisplay is the bookmark offset rendered as H:MM:SS.
	TimestampDisplay string `json:"timestamp_display" yaml:"timestamp_display"`

	// Percentage is the progress through the whole book at the bookmark
	// offset, rounded and clamped to [0, 100].
	Percentage int `json:"percentage" yaml:"percentage"`

	// Note is the bookmark's annotation text; may be empty.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`

	// DeepLink is the player URL positioned at the bookmark offset.
	DeepLink string `json:"deep_link" yaml:"deep_link"`
}
