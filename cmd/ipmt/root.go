package main

import (
	"github.com/spf13/cobra"
)

const programName = "ipmt"

var rootCmd = &cobra.Command{
	Use:   programName + " [options] (<pattern> | <pattern-file>) [textfile...]",
	Short: "ipmt - grep-style search with exact and approximate matching",
	Long: `ipmt searches text files for a pattern, or for every pattern in a pattern file,
using brute force, KMP, Aho-Corasick or Sellers approximate matching.

Run "ipmt --help" for the option list.`,
	// Arguments follow ipmt's positional grammar, which command.Parse owns.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runSearch,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
