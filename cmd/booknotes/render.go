// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/booknotes/internal/render"
	"github.com/pdiddy/booknotes/internal/snapshot"
	"github.com/pdiddy/booknotes/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a markdown notes document from the three input blobs",
	Long: `Render runs the full pipeline: parse the chapters blob and the
bookmarks blob, assign every bookmark to its chapter, and write the
grouped markdown document.

Inputs come from --snapshot DIR (a directory with link, chapters, and
bookmarks files) or from --link plus --chapters-file and
--bookmarks-file.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	base, chaptersBlob, bookmarksBlob, err := gatherInputs(cmd)
	if err != nil {
		return err
	}

	doc, summary, err := render.Document(base, chaptersBlob, bookmarksBlob, renderConfig(cmd))
	if err != nil {
		if errors.Is(err, types.ErrEmptyInput) {
			return fmt.Errorf("nothing to render: %w", err)
		}
		return err
	}

	fmt.Fprintf(os.Stderr, "%d chapters, %d bookmarks", summary.Chapters, summary.Bookmarks)
	if summary.Dropped > 0 {
		fmt.Fprintf(os.Stderr, " (%d dropped)", summary.Dropped)
	}
	fmt.Fprintln(os.Stderr)

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintln(os.Stderr, "Wrote", outPath)
	return nil
}

// gatherInputs resolves the three blobs from either a snapshot
// directory or the per-blob flags.
func gatherInputs(cmd *cobra.Command) (base, chaptersBlob, bookmarksBlob string, err error) {
	snapDir, _ := cmd.Flags().GetString("snapshot")
	if snapDir != "" {
		snap, err := snapshot.Load(snapDir)
		if err != nil {
			return "", "", "", err
		}
		return snap.BaseURL, snap.Chapters, snap.Bookmarks, nil
	}

	base, _ = cmd.Flags().GetString("link")
	chaptersFile, _ := cmd.Flags().GetString("chapters-file")
	bookmarksFile, _ := cmd.Flags().GetString("bookmarks-file")
	if base == "" || chaptersFile == "" || bookmarksFile == "" {
		return "", "", "", fmt.Errorf("inputs required: --snapshot DIR, or --link with --chapters-file and --bookmarks-file")
	}

	chaptersBlob, err = readBlobFile(chaptersFile)
	if err != nil {
		return "", "", "", err
	}
	bookmarksBlob, err = readBlobFile(bookmarksFile)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(base), chaptersBlob, bookmarksBlob, nil
}

func readBlobFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// renderConfig builds the render configuration from flags, falling back
// to viper-managed config values.
func renderConfig(cmd *cobra.Command) types.RenderConfig {
	tmpl, _ := cmd.Flags().GetString("link-template")
	if tmpl == "" {
		tmpl = viper.GetString("render.link_template")
	}

	includeSummary := viper.GetBool("render.include_summary")
	if cmd.Flags().Changed("summary") {
		includeSummary, _ = cmd.Flags().GetBool("summary")
	}

	return types.RenderConfig{
		LinkTemplate:   tmpl,
		IncludeSummary: includeSummary,
	}
}

func init() {
	renderCmd.Flags().String("snapshot", "", "snapshot directory with link, chapters, and bookmarks files")
	renderCmd.Flags().String("link", "", "cloud player base URL")
	renderCmd.Flags().String("chapters-file", "", "file holding the copied chapters panel text")
	renderCmd.Flags().String("bookmarks-file", "", "file holding the copied bookmarks panel text")
	renderCmd.Flags().String("out", "", "write the document to a file instead of stdout")
	renderCmd.Flags().String("link-template", "", "deep-link template with {base} and {seconds} placeholders")
	renderCmd.Flags().Bool("summary", false, "append a line reporting skipped bookmarks")

	rootCmd.AddCommand(renderCmd)
}
