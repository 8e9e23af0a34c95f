// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/booknotes/internal/fixture"
)

var batchCmd = &cobra.Command{
	Use:   "batch MANIFEST",
	Short: "Render every fixture case listed in a YAML manifest",
	Long: `Batch reads a YAML manifest of fixture cases (snapshot directories
or inlined blobs), renders each through the pipeline, and writes one
markdown file per case plus a summary.yaml into the output directory.
A failing case is reported in the summary and does not stop the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := fixture.ReadManifest(args[0])
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out-dir")

	summary, err := fixture.Run(m, outDir, renderConfig(cmd), os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d case(s) failed", summary.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("out-dir", "out", "directory for rendered documents and summary.yaml")
	batchCmd.Flags().String("link-template", "", "deep-link template with {base} and {seconds} placeholders")
	batchCmd.Flags().Bool("summary", false, "append a line reporting skipped bookmarks to each document")

	rootCmd.AddCommand(batchCmd)
}
