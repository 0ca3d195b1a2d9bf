// Package socrata fetches the restaurant-inspection dataset from a Socrata
// open-data endpoint.
package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/platewatch/platewatch/internal/common"
	"github.com/platewatch/platewatch/internal/model"
)

// DefaultDatasetURL is the Prince George's County food inspection dataset.
const DefaultDatasetURL = "https://data.princegeorgescountymd.gov/resource/umjn-t2iz.json"

// DefaultLimit is the default $limit query parameter. Socrata endpoints
// return 1000 rows when no limit is given.
const DefaultLimit = 5000

// Client fetches inspection records over HTTP.
type Client struct {
	httpClient *http.Client
	datasetURL string
	limit      int
}

// NewClient creates a client for the given dataset URL. An empty URL uses
// the default dataset; limit <= 0 uses DefaultLimit.
func NewClient(datasetURL string, limit int) (*Client, error) {
	if datasetURL == "" {
		datasetURL = DefaultDatasetURL
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	if _, err := url.ParseRequestURI(datasetURL); err != nil {
		return nil, fmt.Errorf("%w: invalid dataset URL %q: %v", common.ErrInvalidConfig, datasetURL, err)
	}

	return &Client{
		datasetURL: datasetURL,
		limit:      limit,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// DatasetURL returns the endpoint this client fetches from.
func (c *Client) DatasetURL() string {
	return c.datasetURL
}

// FetchRecords performs one GET of the dataset and decodes the response
// into records. Any failure — network, non-2xx status, or a body that is
// not a JSON record array — surfaces as common.ErrDataUnavailable so the
// caller can distinguish "no data" from a bad record, which is never an
// error.
func (c *Client) FetchRecords(ctx context.Context) ([]model.Record, error) {
	u, err := url.Parse(c.datasetURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset URL: %w", err)
	}

	q := u.Query()
	q.Set("$limit", strconv.Itoa(c.limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Requesting inspection dataset",
		"url", c.datasetURL,
		"limit", c.limit)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: endpoint returned %d - %s",
			common.ErrDataUnavailable, resp.StatusCode, string(body))
	}

	var records []model.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", common.ErrDataUnavailable, err)
	}

	slog.Debug("Fetched inspection records", "count", len(records))
	return records, nil
}
