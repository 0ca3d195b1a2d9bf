// Package storage provides the local sqlite cache for fetched datasets.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/platewatch/platewatch/internal/common"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/platewatch/platewatch/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore caches the fetched dataset so the dashboard and export work
// without hitting the endpoint on every run. A fetch replaces the snapshot
// wholesale; individual records are never updated.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the dataset cache at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: database path is required", common.ErrInvalidConfig)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ReplaceRecords swaps the cached snapshot for a fresh one, recording the
// source URL and fetch time.
func (s *SQLiteStore) ReplaceRecords(ctx context.Context, records []model.Record, sourceURL string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (position, name, category, city, address_line_1, owner,
			inspection_date, inspection_results, longitude, latitude)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		var lon, lat any
		if r.Geocoded != nil {
			lon = r.Geocoded.Longitude()
			lat = r.Geocoded.Latitude()
		}
		if _, err := stmt.ExecContext(ctx, i, r.Name, r.Category, r.City,
			r.AddressLine1, r.Owner, r.InspectionDate, r.InspectionResults, lon, lat); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dataset_meta (id, source_url, fetched_at, record_count)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_url = excluded.source_url,
			fetched_at = excluded.fetched_at,
			record_count = excluded.record_count`,
		sourceURL, time.Now().UTC(), len(records)); err != nil {
		return fmt.Errorf("failed to update dataset meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// GetRecords returns the cached snapshot in its original fetch order.
func (s *SQLiteStore) GetRecords(ctx context.Context) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, category, city, address_line_1, owner,
			inspection_date, inspection_results, longitude, latitude
		FROM records
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		var lon, lat sql.NullFloat64
		if err := rows.Scan(&r.Name, &r.Category, &r.City, &r.AddressLine1,
			&r.Owner, &r.InspectionDate, &r.InspectionResults, &lon, &lat); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if lon.Valid && lat.Valid {
			r.Geocoded = &model.GeoPoint{
				Type:        "Point",
				Coordinates: [2]float64{lon.Float64, lat.Float64},
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	if len(records) == 0 {
		return nil, common.ErrEmptyCache
	}
	return records, nil
}

// GetDatasetInfo returns metadata about the cached snapshot, or
// common.ErrEmptyCache when nothing has been fetched yet.
func (s *SQLiteStore) GetDatasetInfo(ctx context.Context) (*service.DatasetInfo, error) {
	var info service.DatasetInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT source_url, fetched_at, record_count FROM dataset_meta WHERE id = 1`).
		Scan(&info.SourceURL, &info.FetchedAt, &info.Count)
	if err == sql.ErrNoRows {
		return nil, common.ErrEmptyCache
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset meta: %w", err)
	}
	return &info, nil
}
