// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultLinkTemplate is the deep-link scheme observed to work with the
// cloud player. The scheme is not a published contract, so it lives in
// configuration rather than code; {base} is replaced with the base URL
// and {seconds} with the integer bookmark offset.
const DefaultLinkTemplate = "{base}&bookmarkPos={seconds}"

// DefaultUntitledLabel replaces an empty chapter title.
const DefaultUntitledLabel = "Untitled Chapter"

// RenderConfig holds settings for the merge-and-format stage.
type RenderConfig struct {
	// LinkTemplate is the deep-link template; {base} and {seconds}
	// placeholders are substituted per entry. Empty selects
	// DefaultLinkTemplate.
	LinkTemplate string `json:"link_template" yaml:"link_template"`

	// IncludeSummary appends a trailing line reporting dropped
	// bookmarks when any group failed to parse.
	IncludeSummary bool `json:"include_summary" yaml:"include_summary"`
}

// Template returns the configured link template or the default.
func (c RenderConfig) Template() string {
	if c.LinkTemplate == "" {
		return DefaultLinkTemplate
	}
	return c.LinkTemplate
}
