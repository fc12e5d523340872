package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/sig-gov/sig-backend/internal/records"
)

// APIClient reads the edge/node tabs through the Sheets API. Needed for
// private spreadsheets where the CSV export endpoint is not reachable;
// credentials come from application default credentials.
type APIClient struct {
	svc        *sheetsapi.Service
	sheetID    string
	edgesRange string
	nodesRange string
}

func NewAPIClient(ctx context.Context, sheetID, edgesRange, nodesRange string) (*APIClient, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("sheets: sheet id is not set")
	}

	var opts []option.ClientOption
	creds, _ := google.FindDefaultCredentials(ctx, sheetsapi.SpreadsheetsReadonlyScope)
	if creds != nil && creds.JSON != nil {
		opts = append(opts, option.WithCredentialsJSON(creds.JSON))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: new service: %w", err)
	}

	return &APIClient{
		svc:        svc,
		sheetID:    sheetID,
		edgesRange: edgesRange,
		nodesRange: nodesRange,
	}, nil
}

func (c *APIClient) FetchEdges(ctx context.Context) (*records.Table, error) {
	return c.fetch(ctx, c.edgesRange)
}

func (c *APIClient) FetchNodes(ctx context.Context) (*records.Table, error) {
	return c.fetch(ctx, c.nodesRange)
}

func (c *APIClient) fetch(ctx context.Context, readRange string) (*records.Table, error) {
	if readRange == "" {
		return nil, fmt.Errorf("sheets: read range is not set")
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: values get %q: %w", readRange, err)
	}
	return valuesToTable(resp.Values), nil
}

// valuesToTable treats the first row as the header, the rest as rows.
// Short rows leave trailing columns empty, like the CSV path.
func valuesToTable(values [][]any) *records.Table {
	if len(values) == 0 {
		return records.NewTable(nil, nil)
	}

	columns := make([]string, len(values[0]))
	for i, v := range values[0] {
		columns[i] = fmt.Sprintf("%v", v)
	}

	var rows []records.Row
	for _, raw := range values[1:] {
		row := records.Row{}
		empty := true
		for i, col := range columns {
			s := ""
			if i < len(raw) {
				s = fmt.Sprintf("%v", raw[i])
			}
			if s != "" {
				empty = false
			}
			row[col] = s
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return records.NewTable(columns, rows)
}
