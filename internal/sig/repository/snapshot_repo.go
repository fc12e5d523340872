// Package repository persists graph snapshots in Redis so the renderer
// can fall back to the last good state when a refresh fails.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sig-gov/sig-backend/internal/sig/service"
)

const (
	snapshotKeyPrefix = "sig:snapshot:" // snapshot JSON: sig:snapshot:{id}
	snapshotSetKey    = "sig:snapshots" // set of known snapshot ids
	latestKey         = "sig:latest"    // id of the most recent snapshot
	snapshotTTL       = 7 * 24 * time.Hour
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type SnapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{client: client}
}

// Save stores the snapshot and moves the latest pointer, atomically via a
// pipeline. An empty snapshot id gets a generated one.
func (r *SnapshotRepository) Save(ctx context.Context, snap *service.Snapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.New().String()
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.snapshotKey(snap.ID), data, snapshotTTL)
	pipe.SAdd(ctx, snapshotSetKey, snap.ID)
	pipe.Expire(ctx, snapshotSetKey, snapshotTTL)
	pipe.Set(ctx, latestKey, snap.ID, snapshotTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) GetByID(ctx context.Context, id string) (*service.Snapshot, error) {
	data, err := r.client.Get(ctx, r.snapshotKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", id, err)
	}

	var snap service.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot %s: %w", id, err)
	}
	if snap.Graph != nil {
		// adjacency indexes are not serialized
		snap.Graph.Reindex()
	}
	return &snap, nil
}

// Latest returns the most recently saved snapshot.
func (r *SnapshotRepository) Latest(ctx context.Context) (*service.Snapshot, error) {
	id, err := r.client.Get(ctx, latestKey).Result()
	if err == redis.Nil {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get latest pointer: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *SnapshotRepository) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, snapshotSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list snapshot ids: %w", err)
	}
	return ids, nil
}

func (r *SnapshotRepository) snapshotKey(id string) string {
	return snapshotKeyPrefix + id
}
