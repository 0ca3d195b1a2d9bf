// Package service defines the interfaces between the application's layers.
package service

import (
	"context"
	"time"

	"github.com/platewatch/platewatch/internal/model"
)

// RecordSource fetches the inspection dataset from its upstream endpoint.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]model.Record, error)
}

// DatasetInfo describes a cached dataset snapshot.
type DatasetInfo struct {
	FetchedAt time.Time
	SourceURL string
	Count     int
}

// RecordStore is the contract for the local dataset cache. The dataset is
// replaced wholesale on each fetch; records are never mutated in place.
type RecordStore interface {
	ReplaceRecords(ctx context.Context, records []model.Record, sourceURL string) error
	GetRecords(ctx context.Context) ([]model.Record, error)
	GetDatasetInfo(ctx context.Context) (*DatasetInfo, error)
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
