// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chapters

import (
	"errors"
	"testing"

	"github.com/pdiddy/booknotes/pkg/types"
)

func TestParseDurationLayout(t *testing.T) {
	// The panel lists each chapter's own length; starts accumulate.
	blob := `Opening Credits
0:45
Chapter 1
10:00
Chapter 2
20:00`

	chs, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []types.Chapter{
		{Title: "Opening Credits", StartSeconds: 0, EndSeconds: 45},
		{Title: "Chapter 1", StartSeconds: 45, EndSeconds: 645},
		{Title: "Chapter 2", StartSeconds: 645, EndSeconds: 1845},
	}
	assertChapters(t, chs, want)
}

func TestParseStartOffsetLayout(t *testing.T) {
	// Tokens ascend from zero, so they are chapter starts; the last
	// group carries its end as a second token.
	blob := `Intro
0:00:00
Chapter 1
0:10:00
Chapter 2
0:30:00
2:00:00`

	chs, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []types.Chapter{
		{Title: "Intro", StartSeconds: 0, EndSeconds: 600},
		{Title: "Chapter 1", StartSeconds: 600, EndSeconds: 1800},
		{Title: "Chapter 2", StartSeconds: 1800, EndSeconds: 7200},
	}
	assertChapters(t, chs, want)
}

func TestParseStrayTotalLineBoundsFinalChapter(t *testing.T) {
	// A total-duration line separated from the groups is not a chapter,
	// but it supplies the final chapter's end.
	blob := `Intro
0:00
Main
10:00

1:00:00`

	chs, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []types.Chapter{
		{Title: "Intro", StartSeconds: 0, EndSeconds: 600},
		{Title: "Main", StartSeconds: 600, EndSeconds: 3600},
	}
	assertChapters(t, chs, want)
}

func TestParseSkipsMalformedGroup(t *testing.T) {
	// One unparsable timestamp loses its group, nothing else.
	blob := `Prologue
0:00
One
5:00
Two
bad:time
Three
15:00
Four
20:00`

	chs, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(chs) != 4 {
		t.Fatalf("got %d chapters, want 4", len(chs))
	}
	for _, c := range chs {
		if c.Title == "Two" {
			t.Errorf("malformed group %q should have been skipped", c.Title)
		}
	}
}

func TestParseZeroFinalTokenKeepsInvariant(t *testing.T) {
	// A zero second token on the last start-layout group says nothing
	// about the chapter's end; the chapter must still close after its
	// start.
	blob := "A\n0:00\nB\n10:00\n0:00"

	chs, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(chs) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chs))
	}
	last := chs[len(chs)-1]
	if last.StartSeconds >= last.EndSeconds {
		t.Errorf("final chapter start %d >= end %d", last.StartSeconds, last.EndSeconds)
	}
}

func TestParseExplicitPairNeverRegresses(t *testing.T) {
	// An explicit (start, end) pair whose start lies before ground
	// already covered is clamped forward; chapters never overlap.
	blob := `A
10:00
B
5:00
15:00`

	chs, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []types.Chapter{
		{Title: "A", StartSeconds: 0, EndSeconds: 600},
		{Title: "B", StartSeconds: 600, EndSeconds: 900},
	}
	assertChapters(t, chs, want)
}

func TestParseContiguity(t *testing.T) {
	blobs := map[string]string{
		"durations": "A\n1:00\nB\n2:00\nC\n3:00",
		"starts":    "A\n0:00\nB\n1:00\nC\n3:00\n6:00",
	}
	for name, blob := range blobs {
		t.Run(name, func(t *testing.T) {
			chs, err := Parse(blob)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			for i := 0; i < len(chs)-1; i++ {
				if chs[i].EndSeconds != chs[i+1].StartSeconds {
					t.Errorf("chapters[%d].End = %d, chapters[%d].Start = %d; want contiguous",
						i, chs[i].EndSeconds, i+1, chs[i+1].StartSeconds)
				}
			}
			for i, c := range chs {
				if c.StartSeconds >= c.EndSeconds {
					t.Errorf("chapters[%d]: start %d >= end %d", i, c.StartSeconds, c.EndSeconds)
				}
			}
		})
	}
}

func TestParseUntitledPlaceholder(t *testing.T) {
	// Tokens before any title line open the book with a placeholder.
	blob := "2:00\nChapter 1\n10:00"

	chs, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if chs[0].Title != types.DefaultUntitledLabel {
		t.Errorf("first title = %q, want %q", chs[0].Title, types.DefaultUntitledLabel)
	}
}

func TestParseIgnoresFurniture(t *testing.T) {
	blob := `Chapters

Opening Credits
0:45

Chapter 1
10:00`

	chs, err := Parse(blob)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(chs) != 2 {
		t.Fatalf("got %d chapters, want 2", len(chs))
	}
	if chs[0].Title != "Opening Credits" {
		t.Errorf("first title = %q, want %q (header line is furniture)", chs[0].Title, "Opening Credits")
	}
}

func TestParseEmptyBlob(t *testing.T) {
	for _, blob := range []string{"", "\n\n", "Chapters\nno times here"} {
		_, err := Parse(blob)
		if !errors.Is(err, types.ErrEmptyInput) {
			t.Errorf("Parse(%q) error = %v, want ErrEmptyInput", blob, err)
		}
	}
}

func TestStartOffsetLayoutDetection(t *testing.T) {
	tests := []struct {
		name   string
		groups []group
		want   bool
	}{
		{"ascending from zero", []group{{first: 0}, {first: 60}, {first: 120}}, true},
		{"single group", []group{{first: 0}}, false},
		{"not from zero", []group{{first: 45}, {first: 600}}, false},
		{"not ascending", []group{{first: 0}, {first: 600}, {first: 300}}, false},
		{"duplicate start", []group{{first: 0}, {first: 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startOffsetLayout(tt.groups); got != tt.want {
				t.Errorf("startOffsetLayout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func assertChapters(t *testing.T, got, want []types.Chapter) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d chapters, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chapters[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
