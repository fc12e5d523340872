// Package sheets loads the governance edge/node tables from Google
// Sheets, either through the public CSV export URL or the Sheets API.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/sig-gov/sig-backend/internal/records"
)

const defaultBaseURL = "https://docs.google.com"

// CSVClient fetches sheet tabs via the spreadsheet CSV export endpoint:
// /spreadsheets/d/{sheet}/export?format=csv&gid={gid}. Requests are rate
// limited and retried.
type CSVClient struct {
	http     *http.Client
	baseURL  string
	sheetID  string
	edgesGID string
	nodesGID string
	limiter  *rate.Limiter
	maxTries int
}

type CSVOption func(*CSVClient)

// WithBaseURL overrides the docs host, used by tests.
func WithBaseURL(u string) CSVOption { return func(c *CSVClient) { c.baseURL = u } }

func WithHTTPClient(h *http.Client) CSVOption { return func(c *CSVClient) { c.http = h } }

func WithMaxTries(n int) CSVOption { return func(c *CSVClient) { c.maxTries = n } }

func NewCSVClient(sheetID, edgesGID, nodesGID string, opts ...CSVOption) *CSVClient {
	c := &CSVClient{
		http:     &http.Client{Timeout: 30 * time.Second},
		baseURL:  defaultBaseURL,
		sheetID:  sheetID,
		edgesGID: edgesGID,
		nodesGID: nodesGID,
		limiter:  rate.NewLimiter(rate.Limit(2), 4),
		maxTries: 3,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *CSVClient) FetchEdges(ctx context.Context) (*records.Table, error) {
	return c.fetch(ctx, c.edgesGID)
}

func (c *CSVClient) FetchNodes(ctx context.Context) (*records.Table, error) {
	return c.fetch(ctx, c.nodesGID)
}

func (c *CSVClient) fetch(ctx context.Context, gid string) (*records.Table, error) {
	if c.sheetID == "" {
		return nil, fmt.Errorf("sheets: sheet id is not set")
	}
	if gid == "" {
		return nil, fmt.Errorf("sheets: gid is not set")
	}

	u := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s",
		c.baseURL, url.PathEscape(c.sheetID), url.QueryEscape(gid))

	var lastErr error
	for i := 0; i < c.maxTries; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		t, err := c.fetchOnce(ctx, u)
		if err == nil {
			return t, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, fmt.Errorf("sheets: fetch gid=%s: %w", gid, lastErr)
}

func (c *CSVClient) fetchOnce(ctx context.Context, u string) (*records.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return records.FromCSV(resp.Body)
}
