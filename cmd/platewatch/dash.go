package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/platewatch/platewatch/internal/common"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/service"
	"github.com/platewatch/platewatch/internal/tui"
)

func init() {
	dashCmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive inspection dashboard",
		Long: `Open the terminal dashboard over the cached inspection dataset.

If the cache is empty the dataset is fetched first. Use --refresh to
force a fetch before launching.`,
		RunE: runDash,
	}

	dashCmd.Flags().BoolP("refresh", "r", false, "Fetch fresh data before opening")

	rootCmd.AddCommand(dashCmd)
}

func runDash(cmd *cobra.Command, _ []string) error {
	refresh, _ := cmd.Flags().GetBool("refresh")
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close cache", "error", closeErr)
		}
	}()

	var (
		records []model.Record
		info    *service.DatasetInfo
	)

	if !refresh {
		records, info, err = loadCachedRecords(ctx, store)
		if err != nil && !errors.Is(err, common.ErrEmptyCache) {
			return fmt.Errorf("failed to read cache: %w", err)
		}
	}

	if refresh || len(records) == 0 {
		records, info, err = refreshCache(ctx, store)
		if err != nil {
			return err
		}
	}

	opts := []tui.Option{
		tui.WithRecords(records),
		tui.WithDatasetInfo(info),
		tui.WithExportDir(viper.GetString("export.dir")),
	}
	if pageSize := viper.GetInt("dashboard.page_size"); pageSize > 0 {
		opts = append(opts, tui.WithPageSize(pageSize))
	}

	return tui.Run(ctx, opts...)
}

// refreshCache fetches the dataset and replaces the cache with it.
func refreshCache(ctx context.Context, store service.RecordStore) ([]model.Record, *service.DatasetInfo, error) {
	source, err := initSource()
	if err != nil {
		return nil, nil, err
	}

	slog.Info("🍽️  Fetching inspection data...", "url", source.DatasetURL())

	records, err := fetchWithRetry(ctx, source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("endpoint returned no records")
	}

	if err := store.ReplaceRecords(ctx, records, source.DatasetURL()); err != nil {
		return nil, nil, fmt.Errorf("failed to save records: %w", err)
	}

	return records, &service.DatasetInfo{
		FetchedAt: time.Now(),
		SourceURL: source.DatasetURL(),
		Count:     len(records),
	}, nil
}
