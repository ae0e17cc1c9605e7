package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nao1215/datascan/internal/config"
	"github.com/nao1215/datascan/internal/database"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// This command inspects scan results stored in the local database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scan results from the local database",
		Long: `History lists scans recorded by previous 'datascan scan' runs.

Each scan stores the source file, the scan time, the table shape, the
issue count, and the quality score. The full result of any stored scan
can be printed as JSON with --show.

Examples:
  # List the 20 most recent scans
  datascan history

  # List every stored scan
  datascan history --limit 0

  # Print the stored result of scan 5 as JSON
  datascan history --show 5`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", 20,
		"Maximum number of scans to list (0 for all)")
	cmd.Flags().Int64P("show", "s", 0,
		"Print the full stored result of the scan with this ID as JSON")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	showID, err := cmd.Flags().GetInt64("show")
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if showID > 0 {
		return showStoredScan(ctx, db, showID)
	}
	return listScanHistory(ctx, db, limit)
}

// listScanHistory lists stored scans, newest first.
func listScanHistory(ctx context.Context, db *database.ScanDB, limit int) error {
	scans, err := db.ListScans(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list scans: %w", err)
	}

	if len(scans) == 0 {
		fmt.Println("No scans found in the database.")
		fmt.Println("\nUse 'datascan scan <file.csv>' to scan a file.")
		return nil
	}

	fmt.Printf("Scan history (%d scans):\n\n", len(scans))
	fmt.Printf("  %-6s  %-20s  %-7s  %-7s  %-7s  %s\n",
		"ID", "Date", "Rows", "Cols", "Score", "Source")
	fmt.Println("  " + strings.Repeat("-", 72))

	for _, meta := range scans {
		fmt.Printf("  %-6d  %-20s  %-7d  %-7d  %-7s  %s\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.TotalRows,
			meta.TotalColumns,
			formatScoreSummary(meta),
			meta.Source,
		)
	}

	fmt.Println("\nUse 'datascan history --show <id>' to print a stored result as JSON.")

	return nil
}

// formatScoreSummary renders the quality score with an issue count
// suffix when the scan found anything.
func formatScoreSummary(meta database.ScanMetadata) string {
	if meta.TotalIssues == 0 {
		return fmt.Sprintf("%d", meta.QualityScore)
	}
	return fmt.Sprintf("%d/%d!", meta.QualityScore, meta.TotalIssues)
}

// showStoredScan prints the full stored result of one scan as JSON.
func showStoredScan(ctx context.Context, db *database.ScanDB, id int64) error {
	result, err := db.GetScan(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load scan %d: %w", id, err)
	}
	if result == nil {
		return fmt.Errorf("no scan found with ID %d (use 'datascan history' to list stored scans)", id)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
