package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/platewatch/platewatch/internal/compliance"
	"github.com/platewatch/platewatch/internal/model"
)

func init() {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the latest inspection data and cache it locally",
		Long: `Fetch the restaurant inspection dataset from the county open-data
endpoint and replace the local cache with it.

Examples:
  # Fetch using the configured (or default) endpoint
  platewatch fetch

  # Fetch without touching the cache
  platewatch fetch --dry-run`,
		RunE: runFetch,
	}

	fetchCmd.Flags().BoolP("dry-run", "d", false, "Fetch and summarize without saving")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	source, err := initSource()
	if err != nil {
		return err
	}

	slog.Info("🍽️  Fetching inspection data...", "url", source.DatasetURL())

	records, err := fetchWithRetry(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to fetch dataset: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("endpoint returned no records")
	}

	tally := classifyAll(records)

	slog.Info("Fetched inspection records",
		"count", len(records),
		"compliant", tally.ByStatus[model.StatusCompliant],
		"violations", tally.ByStatus[model.StatusViolations])

	if dryRun {
		slog.Info("Dry run, cache not updated")
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close cache", "error", closeErr)
		}
	}()

	if err := store.ReplaceRecords(ctx, records, source.DatasetURL()); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	slog.Info("Cache updated", "count", len(records))
	return nil
}

// classifyAll tallies compliance for every record, showing progress on the
// terminal.
func classifyAll(records []model.Record) compliance.Tally {
	bar := progressbar.NewOptions(len(records),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Classifying inspections...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	tally := compliance.NewTally()
	for _, r := range records {
		tally.Add(compliance.Classify(r))
		_ = bar.Add(1)
	}
	return tally
}
