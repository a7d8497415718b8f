package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "warden",
	Short: "Warden - content moderation service",
	Long: `Warden is a content moderation service that assigns a verdict to
user-submitted content before publication: whether to flag it, why, how
severe, and with what confidence.

It provides:
  - Pattern-based detection across eleven violation categories
  - Always-on personal-information detection (SSN, phone, email, card)
  - Confidence scoring with context-based adjustments
  - An HTTP API with single and batch endpoints
  - An asynchronous audit trail with scheduled retention pruning`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
