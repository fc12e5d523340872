// Package source defines the boundary contracts for the external tabular
// data loaders. The graph core consumes these; it never fetches anything
// itself.
package source

import (
	"context"

	"github.com/sig-gov/sig-backend/internal/records"
)

// EdgeSource returns the latest known edge table. Re-callable: every call
// is an independent snapshot fetch.
type EdgeSource interface {
	FetchEdges(ctx context.Context) (*records.Table, error)
}

// NodeSource returns the latest known node table.
type NodeSource interface {
	FetchNodes(ctx context.Context) (*records.Table, error)
}
