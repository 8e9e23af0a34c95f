// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the booknotes CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the booknotes CLI.
var rootCmd = &cobra.Command{
	Use:   "booknotes",
	Short: "Turn copied audiobook chapters and bookmarks into markdown notes",
	Long: `booknotes converts three pieces of clipboard-copied text - the cloud
player link, the chapters panel, and the bookmarks panel - into one
markdown document. Notes are grouped under their containing chapters,
each entry carrying its timestamp, progress through the book, and a
deep link that reopens the player at that position.

The clipboard itself is outside the tool: feed the three blobs in as
files, a snapshot directory, or a fixture manifest.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./booknotes.yaml or ~/.config/booknotes/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("booknotes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "booknotes"))
		}
	}

	viper.SetEnvPrefix("BOOKNOTES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
