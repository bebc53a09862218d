package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lyrics-explorer",
	Short: "Web explorer for song lyrics and word clouds",
	Long: `lyrics-explorer serves a single-page web app that fetches song lyrics
from Genius, computes word statistics, and renders a word-cloud image.

Enter a song title (and optionally an artist) in the UI to see total and
unique word counts, the most common words, and a word cloud whose colors
and dimensions you can tweak.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
