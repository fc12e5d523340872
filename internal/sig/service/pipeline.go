// Package service orchestrates the governance pipeline: fetch the raw
// tables, build the graph, aggregate, classify, and summarize into an
// immutable Snapshot.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sig-gov/sig-backend/internal/sig/aggregate"
	"github.com/sig-gov/sig-backend/internal/sig/analysis"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
	"github.com/sig-gov/sig-backend/internal/sig/ingest/mapper"
	"github.com/sig-gov/sig-backend/internal/sig/roles"
	"github.com/sig-gov/sig-backend/internal/source"
)

// Snapshot is one fully derived state of the governance graph. Snapshots
// are immutable; a refresh produces a new one and never touches earlier
// snapshots callers may still hold.
type Snapshot struct {
	ID          string                         `json:"id"`
	Anchor      string                         `json:"anchor"`
	Aggregation domain.AggregationMode         `json:"aggregation"`
	Graph       *domain.Graph                  `json:"graph"`
	Roles       map[string]domain.RoleCategory `json:"roles"`
	Stats       analysis.NetworkStats          `json:"stats"`
	Diagnostics []domain.Diagnostic            `json:"diagnostics,omitempty"`
	FetchedAt   time.Time                      `json:"fetched_at"`
}

type Options struct {
	Anchor      string
	Aggregation domain.AggregationMode
	Strict      bool
	Derivations []mapper.Derivation
}

type Pipeline struct {
	edges source.EdgeSource
	nodes source.NodeSource
	opt   Options
}

func New(edges source.EdgeSource, nodes source.NodeSource, opt Options) *Pipeline {
	if opt.Anchor == "" {
		opt.Anchor = "roles"
	}
	if opt.Aggregation == "" {
		opt.Aggregation = domain.AggregationNone
	}
	if opt.Derivations == nil {
		opt.Derivations = mapper.DefaultOptions().Derivations
	}
	return &Pipeline{edges: edges, nodes: nodes, opt: opt}
}

// Refresh fetches fresh tables and derives a new Snapshot. Build and
// classification failures are returned as-is so the caller can fall back
// to a previous snapshot.
func (p *Pipeline) Refresh(ctx context.Context) (*Snapshot, error) {
	edges, err := p.edges.FetchEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch edges: %w", err)
	}
	nodes, err := p.nodes.FetchNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch nodes: %w", err)
	}

	g, diags, err := mapper.ToGraph(edges, nodes, mapper.Options{
		Strict:      p.opt.Strict,
		Derivations: p.opt.Derivations,
	})
	if err != nil {
		return nil, err
	}

	if p.opt.Aggregation != domain.AggregationNone {
		var aggDiags []domain.Diagnostic
		g, aggDiags, err = aggregate.Apply(g, p.opt.Aggregation)
		if err != nil {
			return nil, err
		}
		diags = append(diags, aggDiags...)
	}

	classified, err := roles.Classify(g, p.opt.Anchor)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		ID:          Fingerprint(g),
		Anchor:      p.opt.Anchor,
		Aggregation: p.opt.Aggregation,
		Graph:       g,
		Roles:       classified,
		Stats:       analysis.Stats(g),
		Diagnostics: diags,
		FetchedAt:   time.Now().UTC(),
	}, nil
}

// Fingerprint is a content hash of the graph, used as the snapshot id and
// as the cache key for derived results: same tables, same id.
func Fingerprint(g *domain.Graph) string {
	b, err := json.Marshal(g)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:16])
}
