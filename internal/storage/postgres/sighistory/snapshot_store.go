// Package sighistory keeps a durable history of graph snapshot summaries
// in Postgres. Redis holds the hot latest snapshot; this table is the
// audit trail.
package sighistory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sig-gov/sig-backend/internal/sig/service"
)

type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

type SnapshotRecord struct {
	ID        string    `json:"id"`
	Anchor    string    `json:"anchor"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
	Density   float64   `json:"density"`
	CreatedAt time.Time `json:"created_at"`
}

// Save records one snapshot. Re-saving the same content hash is a no-op.
func (s *SnapshotStore) Save(ctx context.Context, snap *service.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO graph_snapshots (id, anchor, node_count, edge_count, density, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)
		ON CONFLICT (id) DO NOTHING
	`, snap.ID, snap.Anchor, snap.Graph.NodeCount(), snap.Graph.EdgeCount(),
		snap.Stats.Density, payload, snap.FetchedAt)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// History returns snapshot summaries, newest first.
func (s *SnapshotStore) History(ctx context.Context, limit int) ([]SnapshotRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, anchor, node_count, edge_count, density, created_at
		FROM graph_snapshots
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRecord
	for rows.Next() {
		var rec SnapshotRecord
		if err := rows.Scan(&rec.ID, &rec.Anchor, &rec.NodeCount, &rec.EdgeCount, &rec.Density, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
