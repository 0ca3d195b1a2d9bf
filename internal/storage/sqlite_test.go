package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/platewatch/platewatch/internal/common"
	"github.com/platewatch/platewatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "inspections.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestReplaceAndGetRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := []model.Record{
		{
			Name:              "Rise & Shine",
			Category:          "Bakery",
			City:              "Bowie",
			InspectionResults: "Violations Issued",
			Geocoded:          &model.GeoPoint{Type: "Point", Coordinates: [2]float64{-76.78, 38.95}},
		},
		{Name: "Crusty's", Category: "Bakery", InspectionResults: "Compliant - No Health Risk"},
	}

	require.NoError(t, store.ReplaceRecords(ctx, records, "https://example.test/data.json"))

	got, err := store.GetRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Fetch order survives the round trip.
	assert.Equal(t, "Rise & Shine", got[0].Name)
	assert.Equal(t, "Crusty's", got[1].Name)

	require.NotNil(t, got[0].Geocoded)
	assert.Equal(t, -76.78, got[0].Geocoded.Longitude())
	assert.Nil(t, got[1].Geocoded)
}

func TestReplaceRecordsOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceRecords(ctx,
		[]model.Record{{Name: "Old"}, {Name: "Older"}}, "https://example.test/a.json"))
	require.NoError(t, store.ReplaceRecords(ctx,
		[]model.Record{{Name: "New"}}, "https://example.test/b.json"))

	got, err := store.GetRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Name)

	info, err := store.GetDatasetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/b.json", info.SourceURL)
	assert.Equal(t, 1, info.Count)
	assert.False(t, info.FetchedAt.IsZero())
}

func TestGetRecordsEmptyCache(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRecords(context.Background())
	assert.ErrorIs(t, err, common.ErrEmptyCache)

	_, err = store.GetDatasetInfo(context.Background())
	assert.ErrorIs(t, err, common.ErrEmptyCache)
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
