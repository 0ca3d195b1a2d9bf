package socrata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/platewatch/platewatch/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRecordsFlat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("$limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Rise & Shine", "category": "Bakery", "inspection_results": "Violations Issued"},
			{"name": "Crusty's", "category": "Bakery"}
		]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, 25)
	require.NoError(t, err)

	records, err := client.FetchRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Rise & Shine", records[0].Name)
	assert.Equal(t, "Violations Issued", records[0].InspectionResults)
}

func TestFetchRecordsFeatureWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"type": "Feature", "properties": {"name": "Taco Villa", "city": "Laurel"}}]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, 0)
	require.NoError(t, err)

	records, err := client.FetchRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Taco Villa", records[0].Name)
	assert.Equal(t, "Laurel", records[0].City)
}

func TestFetchRecordsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, 0)
	require.NoError(t, err)

	_, err = client.FetchRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDataUnavailable)
}

func TestFetchRecordsNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, 0)
	require.NoError(t, err)

	_, err = client.FetchRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDataUnavailable)
}

func TestFetchRecordsEmptyDataset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, 0)
	require.NoError(t, err)

	records, err := client.FetchRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient("", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDatasetURL, client.DatasetURL())
}

func TestNewClientInvalidURL(t *testing.T) {
	_, err := NewClient("not a url", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestFetchRecordsCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.FetchRecords(ctx)
	require.Error(t, err)
}
