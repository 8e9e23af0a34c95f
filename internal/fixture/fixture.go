// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fixture runs a batch of captured inputs through the pipeline.
// A YAML manifest names the cases; each case is rendered to its own
// markdown file and the batch writes a YAML summary next to them. The
// harness is tooling around the core: it holds no state and one bad
// case never aborts the batch.
package fixture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/booknotes/internal/render"
	"github.com/pdiddy/booknotes/internal/snapshot"
	"github.com/pdiddy/booknotes/pkg/types"
)

// Manifest is the on-disk list of fixture cases.
type Manifest struct {
	Cases []Case `yaml:"cases"`
}

// Case names one captured input set. Either Snapshot points at a
// snapshot directory, or the three blobs are inlined.
type Case struct {
	Name      string `yaml:"name"`
	Snapshot  string `yaml:"snapshot,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Chapters  string `yaml:"chapters,omitempty"`
	Bookmarks string `yaml:"bookmarks,omitempty"`
}

// CaseResult records the outcome of one case.
type CaseResult struct {
	Name      string `yaml:"name"`
	Output    string `yaml:"output,omitempty"`
	Chapters  int    `yaml:"chapters"`
	Bookmarks int    `yaml:"bookmarks"`
	Dropped   int    `yaml:"dropped"`
	Error     string `yaml:"error,omitempty"`
}

// RunSummary is the batch outcome written to summary.yaml.
type RunSummary struct {
	Rendered  int          `yaml:"rendered"`
	Failed    int          `yaml:"failed"`
	Timestamp time.Time    `yaml:"timestamp"`
	Results   []CaseResult `yaml:"results"`
}

// HasFailures reports whether any case failed.
func (s RunSummary) HasFailures() bool {
	return s.Failed > 0
}

// ReadManifest loads and validates a manifest file.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Cases) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s: no cases", path)
	}
	for i, c := range m.Cases {
		if c.Name == "" {
			return Manifest{}, fmt.Errorf("manifest %s: case %d has no name", path, i)
		}
	}
	return m, nil
}

// Run renders every case into outDir and writes outDir/summary.yaml.
// Progress goes to w as cases finish.
func Run(m Manifest, outDir string, cfg types.RenderConfig, w io.Writer) (RunSummary, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return RunSummary{}, fmt.Errorf("creating output directory: %w", err)
	}

	summary := RunSummary{Timestamp: time.Now().UTC()}

	for _, c := range m.Cases {
		result := runCase(c, outDir, cfg)
		if result.Error != "" {
			fmt.Fprintf(w, "failed   %s: %s\n", c.Name, result.Error)
			summary.Failed++
		} else {
			fmt.Fprintf(w, "rendered %s (%d chapters, %d bookmarks)\n", c.Name, result.Chapters, result.Bookmarks)
			summary.Rendered++
		}
		summary.Results = append(summary.Results, result)
	}

	if err := writeSummary(filepath.Join(outDir, "summary.yaml"), summary); err != nil {
		return summary, err
	}
	return summary, nil
}

// runCase resolves the case inputs, runs the pipeline, and writes the
// markdown output.
func runCase(c Case, outDir string, cfg types.RenderConfig) CaseResult {
	result := CaseResult{Name: c.Name}

	base, chaptersBlob, bookmarksBlob := c.BaseURL, c.Chapters, c.Bookmarks
	if c.Snapshot != "" {
		snap, err := snapshot.Load(c.Snapshot)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		base, chaptersBlob, bookmarksBlob = snap.BaseURL, snap.Chapters, snap.Bookmarks
	}

	doc, sum, err := render.Document(base, chaptersBlob, bookmarksBlob, cfg)
	result.Chapters = sum.Chapters
	result.Bookmarks = sum.Bookmarks
	result.Dropped = sum.Dropped
	if err != nil {
		result.Error = err.Error()
		return result
	}

	outPath := filepath.Join(outDir, c.Name+".md")
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		result.Error = fmt.Sprintf("writing output: %v", err)
		return result
	}
	result.Output = outPath
	return result
}

// writeSummary marshals the run summary to a YAML file.
func writeSummary(path string, summary RunSummary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
