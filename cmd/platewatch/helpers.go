package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/platewatch/platewatch/internal/common"
	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/service"
	"github.com/platewatch/platewatch/internal/socrata"
	"github.com/platewatch/platewatch/internal/storage"
)

// initStorage opens the local dataset cache with proper path expansion.
func initStorage(_ context.Context) (service.RecordStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		var err error
		dbPath, err = config.DefaultDatabasePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	return store, nil
}

// initSource builds the Socrata client from config.
func initSource() (*socrata.Client, error) {
	return socrata.NewClient(
		viper.GetString("dataset.url"),
		viper.GetInt("dataset.limit"),
	)
}

// fetchWithRetry pulls the dataset from the endpoint, retrying transient
// failures with exponential backoff.
func fetchWithRetry(ctx context.Context, source service.RecordSource) ([]model.Record, error) {
	var records []model.Record

	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		records, fetchErr = source.FetchRecords(ctx)
		return fetchErr
	}, service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Second,
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// loadCachedRecords reads the cached dataset and its provenance. A missing
// or empty cache returns common.ErrEmptyCache.
func loadCachedRecords(ctx context.Context, store service.RecordStore) ([]model.Record, *service.DatasetInfo, error) {
	records, err := store.GetRecords(ctx)
	if err != nil {
		return nil, nil, err
	}

	info, err := store.GetDatasetInfo(ctx)
	if err != nil && !errors.Is(err, common.ErrEmptyCache) {
		return nil, nil, err
	}

	return records, info, nil
}
