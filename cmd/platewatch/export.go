package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platewatch/platewatch/internal/compliance"
	"github.com/platewatch/platewatch/internal/export"
	"github.com/platewatch/platewatch/internal/model"
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the cached dataset to CSV",
		Long: `Write the cached inspection dataset as CSV.

Examples:
  # Everything, to stdout
  platewatch export

  # One category, to a file
  platewatch export --category "Restaurant" -o restaurants.csv

  # Only non-compliant inspections
  platewatch export --status "Non-Compliant/Violations"`,
		RunE: runExport,
	}

	exportCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().String("category", "", "Only export this inspection category")
	exportCmd.Flags().String("status", "", "Only export records with this compliance status")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	category, _ := cmd.Flags().GetString("category")
	status, _ := cmd.Flags().GetString("status")
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	records, _, err := loadCachedRecords(ctx, store)
	if err != nil {
		return fmt.Errorf("no cached data, run 'platewatch fetch' first: %w", err)
	}

	records = filterRecords(records, category, status)
	if len(records) == 0 {
		return fmt.Errorf("no records match the given filters")
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := export.WriteCSV(w, records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if output != "" {
		slog.Info("Export complete", "file", output, "count", len(records))
	}
	return nil
}

// filterRecords applies the optional category and status filters.
func filterRecords(records []model.Record, category, status string) []model.Record {
	if category == "" && status == "" {
		return records
	}

	filtered := make([]model.Record, 0, len(records))
	for _, r := range records {
		if category != "" && !strings.EqualFold(r.DisplayCategory(), category) {
			continue
		}
		if status != "" && !strings.EqualFold(string(compliance.Classify(r)), status) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
