package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/datascan/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/datascan.yaml
var ruleTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new datascan rule file",
		Long: `Init creates a new .datascan rule file in the current directory.

The generated file includes:
- Commented examples for custom null-value lists
- Commented examples for a custom CSV delimiter
- Documentation for all available options

Examples:
  # Create .datascan in current directory
  datascan init

  # Create rule file at a specific path
  datascan init -o myrules.yaml

  # Force overwrite existing file
  datascan init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultRuleFile,
		"Output file path for the rule file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing rule file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("rule file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := ruleTemplate.ReadFile("templates/datascan.yaml")
	if err != nil {
		return fmt.Errorf("failed to read rule template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write rule file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write rule file: %w", err)
	}

	fmt.Printf("Created rule file: %s\n", outputPath)
	fmt.Println("\nEdit this file to configure ingestion settings such as:")
	fmt.Println("  - Cell values treated as missing")
	fmt.Println("  - The CSV field delimiter")

	return nil
}
