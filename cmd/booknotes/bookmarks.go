// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/booknotes/internal/bookmarks"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks FILE",
	Short: "Parse a copied bookmarks blob and dump the bookmark records",
	Long: `Bookmarks parses one copied bookmarks panel blob and prints the
bookmark records as YAML in source order, plus a count of groups whose
timestamp could not be read.`,
	Args: cobra.ExactArgs(1),
	RunE: runBookmarks,
}

func runBookmarks(cmd *cobra.Command, args []string) error {
	blob, err := readBlobFile(args[0])
	if err != nil {
		return err
	}

	res, err := bookmarks.Parse(blob)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(res.Bookmarks)
	if err != nil {
		return fmt.Errorf("marshaling bookmarks: %w", err)
	}
	os.Stdout.Write(data)

	fmt.Fprintf(os.Stderr, "%d bookmarks", len(res.Bookmarks))
	if res.Dropped > 0 {
		fmt.Fprintf(os.Stderr, " (%d dropped)", res.Dropped)
	}
	fmt.Fprintln(os.Stderr)
	return nil
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
}
