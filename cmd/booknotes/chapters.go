// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/booknotes/internal/chapters"
	"github.com/pdiddy/booknotes/internal/timestamp"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters FILE",
	Short: "Parse a copied chapters blob and dump the chapter records",
	Long: `Chapters parses one copied chapters panel blob and prints the
resolved chapter records as YAML: title, start, and end offsets. Useful
for checking how the segmentation heuristics read a panel layout before
rendering a full document.`,
	Args: cobra.ExactArgs(1),
	RunE: runChapters,
}

func runChapters(cmd *cobra.Command, args []string) error {
	blob, err := readBlobFile(args[0])
	if err != nil {
		return err
	}

	chs, err := chapters.Parse(blob)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(chs)
	if err != nil {
		return fmt.Errorf("marshaling chapters: %w", err)
	}
	os.Stdout.Write(data)

	last := chs[len(chs)-1]
	fmt.Fprintf(os.Stderr, "%d chapters, book length %s\n", len(chs), timestamp.Format(last.EndSeconds))
	return nil
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}
