package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-gov/sig-backend/internal/records"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
	"github.com/sig-gov/sig-backend/internal/sig/service"
)

type stubSource struct {
	edges *records.Table
	nodes *records.Table
	err   error
}

func (s *stubSource) FetchEdges(ctx context.Context) (*records.Table, error) {
	return s.edges, s.err
}

func (s *stubSource) FetchNodes(ctx context.Context) (*records.Table, error) {
	return s.nodes, s.err
}

func sheetStub() *stubSource {
	return &stubSource{
		edges: records.NewTable([]string{"from", "to", "arrowkeeper"}, []records.Row{
			{"from": "field", "to": "roles", "arrowkeeper": "alice"},
			{"from": "deciders", "to": "roles", "arrowkeeper": "bob"},
		}),
		nodes: records.NewTable([]string{"node", "node_context"}, []records.Row{
			{"node": "field", "node_context": "humans"},
			{"node": "deciders", "node_context": "humans"},
			{"node": "roles", "node_context": "reporting"},
		}),
	}
}

func TestPipeline_Refresh(t *testing.T) {
	src := sheetStub()
	p := service.New(src, src, service.Options{Anchor: "roles"})

	snap, err := p.Refresh(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, "roles", snap.Anchor)
	assert.Equal(t, 3, snap.Stats.Nodes)
	assert.Equal(t, 2, snap.Stats.Edges)
	assert.Equal(t, domain.RoleAnchor, snap.Roles["roles"])
	assert.Equal(t, domain.RoleToAnchor, snap.Roles["field"])
	assert.Empty(t, snap.Diagnostics)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestPipeline_FingerprintStable(t *testing.T) {
	src := sheetStub()
	p := service.New(src, src, service.Options{Anchor: "roles"})

	first, err := p.Refresh(context.Background())
	require.NoError(t, err)
	second, err := p.Refresh(context.Background())
	require.NoError(t, err)

	// same tables, same content hash; snapshots are distinct values
	assert.Equal(t, first.ID, second.ID)
	assert.NotSame(t, first, second)
}

func TestPipeline_RefreshKeepsOldSnapshotsIntact(t *testing.T) {
	src := sheetStub()
	p := service.New(src, src, service.Options{Anchor: "roles"})

	old, err := p.Refresh(context.Background())
	require.NoError(t, err)
	oldNodes := old.Stats.Nodes

	src.nodes = records.NewTable([]string{"node", "node_context"}, []records.Row{
		{"node": "roles", "node_context": "reporting"},
	})
	_, err = p.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, oldNodes, old.Stats.Nodes)
	assert.Equal(t, 3, old.Graph.NodeCount())
}

func TestPipeline_WithAggregation(t *testing.T) {
	src := sheetStub()
	p := service.New(src, src, service.Options{
		Anchor:      "reporting",
		Aggregation: domain.AggregationNodeContext,
	})

	snap, err := p.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.AggregationNodeContext, snap.Aggregation)
	assert.Equal(t, 2, snap.Graph.NodeCount())
	assert.Equal(t, domain.RoleAnchor, snap.Roles["reporting"])
	assert.Equal(t, domain.RoleToAnchor, snap.Roles["humans"])
}

func TestPipeline_AnchorMissingFails(t *testing.T) {
	src := sheetStub()
	p := service.New(src, src, service.Options{Anchor: "nope"})

	_, err := p.Refresh(context.Background())
	var aerr *domain.AnchorNotFoundError
	require.ErrorAs(t, err, &aerr)
}

func TestPipeline_FetchError(t *testing.T) {
	src := &stubSource{err: fmt.Errorf("sheet unreachable")}
	p := service.New(src, src, service.Options{})

	_, err := p.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch edges")
}

func TestHandle(t *testing.T) {
	h := service.NewHandle()
	assert.Nil(t, h.Current())

	snap := &service.Snapshot{ID: "abc"}
	h.Set(snap)
	assert.Same(t, snap, h.Current())
}
