// Package cli implements the draftstats command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/colwyn/draftstats/internal/core"
)

// Global flags
var (
	verbose  bool
	jsonOut  bool
	cacheDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "draftstats",
	Short:   "draftstats – aggregated 17Lands limited statistics",
	Long:    `A command-line utility for querying cached aggregate draft statistics from 17Lands.`,
	Version: core.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit raw JSON instead of tables")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Override the cache directory")
}
