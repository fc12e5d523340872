package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-gov/sig-backend/internal/sig/domain"
	"github.com/sig-gov/sig-backend/internal/sig/repository"
	"github.com/sig-gov/sig-backend/internal/sig/service"
)

func testRepo(t *testing.T) *repository.SnapshotRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewSnapshotRepository(client)
}

func testSnapshot(id string) *service.Snapshot {
	g := domain.NewGraph()
	g.SetNode(&domain.Node{ID: "field", Attrs: domain.Attrs{domain.AttrContext: "humans"}})
	g.SetNode(&domain.Node{ID: "roles", Attrs: domain.Attrs{domain.AttrContext: "reporting"}})
	g.AddEdge(&domain.Edge{From: "field", To: "roles"})
	return &service.Snapshot{
		ID:        id,
		Anchor:    "roles",
		Graph:     g,
		Roles:     map[string]domain.RoleCategory{"roles": domain.RoleAnchor, "field": domain.RoleToAnchor},
		FetchedAt: time.Now().UTC(),
	}
}

func TestSnapshotRepository_SaveAndGet(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSnapshot("snap-1")))

	got, err := repo.GetByID(ctx, "snap-1")
	require.NoError(t, err)
	assert.Equal(t, "snap-1", got.ID)
	assert.Equal(t, "roles", got.Anchor)
	assert.Equal(t, 2, got.Graph.NodeCount())
	assert.Equal(t, domain.RoleAnchor, got.Roles["roles"])

	// adjacency must be usable again after the JSON round-trip
	require.Len(t, got.Graph.Out["field"], 1)
	require.Len(t, got.Graph.In["roles"], 1)
	assert.Equal(t, "roles", got.Graph.Out["field"][0].To)
}

func TestSnapshotRepository_GetMissing(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotRepository_Latest(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	require.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	require.NoError(t, repo.Save(ctx, testSnapshot("snap-1")))
	require.NoError(t, repo.Save(ctx, testSnapshot("snap-2")))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snap-2", got.ID)
}

func TestSnapshotRepository_ListIDs(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSnapshot("snap-1")))
	require.NoError(t, repo.Save(ctx, testSnapshot("snap-2")))

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"snap-1", "snap-2"}, ids)
}

func TestSnapshotRepository_SaveGeneratesID(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	snap := testSnapshot("")
	require.NoError(t, repo.Save(ctx, snap))
	assert.NotEmpty(t, snap.ID)

	got, err := repo.GetByID(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
}
