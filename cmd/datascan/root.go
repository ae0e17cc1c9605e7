// Package main provides the entry point for the datascan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for datascan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datascan",
		Short: "Data quality scanner for CSV files",
		Long: `datascan analyzes CSV files for data quality problems.

It reports missing values, duplicate rows, and schema inconsistencies
(mixed types, inconsistent date formats, non-numeric values in numeric
columns, outliers, and malformed email addresses), then summarizes the
findings as a 0-100 quality score.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
