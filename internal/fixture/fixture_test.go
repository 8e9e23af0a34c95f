// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fixture

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/booknotes/pkg/types"
)

const goodChapters = "Intro\n0:00\nCh1\n10:00\n30:00"
const goodBookmarks = "Ch1 / 0:10:50\n\"great line\"\n[Go to bookmark]"

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	manifest := `cases:
  - name: one
    base_url: https://p.example/play
    chapters: "A\n1:00"
    bookmarks: "0:30\nnote"
  - name: two
    snapshot: fixtures/two
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	m, err := ReadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Cases, 2)
	assert.Equal(t, "one", m.Cases[0].Name)
	assert.Equal(t, "fixtures/two", m.Cases[1].Snapshot)
}

func TestReadManifestRejects(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("cases: []\n"), 0o644))
	_, err := ReadManifest(empty)
	assert.ErrorContains(t, err, "no cases")

	unnamed := filepath.Join(dir, "unnamed.yaml")
	require.NoError(t, os.WriteFile(unnamed, []byte("cases:\n  - base_url: x\n"), 0o644))
	_, err = ReadManifest(unnamed)
	assert.ErrorContains(t, err, "no name")

	_, err = ReadManifest(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRunRendersInlineCase(t *testing.T) {
	outDir := t.TempDir()
	m := Manifest{Cases: []Case{{
		Name:      "inline",
		BaseURL:   "https://p.example/play?asin=B1",
		Chapters:  goodChapters,
		Bookmarks: goodBookmarks,
	}}}

	var buf bytes.Buffer
	summary, err := Run(m, outDir, types.RenderConfig{}, &buf)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Rendered)
	assert.Equal(t, 0, summary.Failed)
	assert.False(t, summary.HasFailures())
	assert.Contains(t, buf.String(), "rendered inline")

	doc, err := os.ReadFile(filepath.Join(outDir, "inline.md"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "## Ch1")
	assert.Contains(t, string(doc), "great line")
}

func TestRunSnapshotCase(t *testing.T) {
	snapDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(snapDir, "link.txt"), []byte("https://p.example/play?asin=B1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(snapDir, "chapters.txt"), []byte(goodChapters), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(snapDir, "bookmarks.txt"), []byte(goodBookmarks), 0o644))

	outDir := t.TempDir()
	m := Manifest{Cases: []Case{{Name: "snap", Snapshot: snapDir}}}

	var buf bytes.Buffer
	summary, err := Run(m, outDir, types.RenderConfig{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Rendered)
}

func TestRunIsolatesFailingCase(t *testing.T) {
	outDir := t.TempDir()
	m := Manifest{Cases: []Case{
		{Name: "bad", BaseURL: "", Chapters: goodChapters, Bookmarks: goodBookmarks},
		{Name: "good", BaseURL: "https://p.example/play", Chapters: goodChapters, Bookmarks: goodBookmarks},
	}}

	var buf bytes.Buffer
	summary, err := Run(m, outDir, types.RenderConfig{}, &buf)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Rendered)
	assert.Equal(t, 1, summary.Failed)
	assert.True(t, summary.HasFailures())

	// The failing case is recorded, the good one still rendered.
	require.Len(t, summary.Results, 2)
	assert.NotEmpty(t, summary.Results[0].Error)
	assert.FileExists(t, filepath.Join(outDir, "good.md"))

	// summary.yaml reflects both outcomes.
	data, err := os.ReadFile(filepath.Join(outDir, "summary.yaml"))
	require.NoError(t, err)
	var onDisk RunSummary
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	assert.Equal(t, 1, onDisk.Failed)
	require.Len(t, onDisk.Results, 2)
}
