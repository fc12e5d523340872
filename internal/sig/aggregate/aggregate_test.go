package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-gov/sig-backend/internal/sig/aggregate"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
)

func contextGraph() *domain.Graph {
	g := domain.NewGraph()
	g.SetNode(&domain.Node{ID: "a", Attrs: domain.Attrs{domain.AttrContext: "humans"}})
	g.SetNode(&domain.Node{ID: "b", Attrs: domain.Attrs{domain.AttrContext: "humans"}})
	g.SetNode(&domain.Node{ID: "c", Attrs: domain.Attrs{domain.AttrContext: "tools"}})
	g.AddEdge(&domain.Edge{From: "a", To: "c", Attrs: domain.Attrs{"status": "live"}})
	g.AddEdge(&domain.Edge{From: "b", To: "c", Attrs: domain.Attrs{}})
	g.AddEdge(&domain.Edge{From: "a", To: "b", Attrs: domain.Attrs{}})
	return g
}

func TestApply_None(t *testing.T) {
	g := contextGraph()
	out, diags, err := aggregate.Apply(g, domain.AggregationNone)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.NotSame(t, g, out)
	assert.Equal(t, g.NodeCount(), out.NodeCount())
	assert.Equal(t, g.EdgeCount(), out.EdgeCount())
}

func TestApply_NodeContext(t *testing.T) {
	out, diags, err := aggregate.Apply(contextGraph(), domain.AggregationNodeContext)
	require.NoError(t, err)
	assert.Empty(t, diags)

	// quotient nodes are the distinct context values
	assert.Equal(t, 2, out.NodeCount())
	require.Contains(t, out.Nodes, "humans")
	require.Contains(t, out.Nodes, "tools")

	// contexts map to themselves so the transform is idempotent
	assert.Equal(t, "humans", out.Nodes["humans"].Attrs[domain.AttrContext])
	assert.Equal(t, true, out.Nodes["humans"].Attrs[domain.AttrHumanContext])

	// parallel collapsed edges survive as distinct entries, a->b becomes a
	// humans self-loop
	require.Equal(t, 3, out.EdgeCount())
	assert.Equal(t, "humans", out.Edges[0].From)
	assert.Equal(t, "tools", out.Edges[0].To)
	assert.Equal(t, "live", out.Edges[0].Attrs["status"])
	assert.Equal(t, "humans", out.Edges[2].From)
	assert.Equal(t, "humans", out.Edges[2].To)
}

func TestApply_NodeContextIdempotent(t *testing.T) {
	once, diags, err := aggregate.Apply(contextGraph(), domain.AggregationNodeContext)
	require.NoError(t, err)
	require.Empty(t, diags)

	twice, diags, err := aggregate.Apply(once, domain.AggregationNodeContext)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, once.NodeCount(), twice.NodeCount())
	require.Equal(t, once.EdgeCount(), twice.EdgeCount())
	for i := range once.Edges {
		assert.Equal(t, once.Edges[i].From, twice.Edges[i].From)
		assert.Equal(t, once.Edges[i].To, twice.Edges[i].To)
	}
	for id := range once.Nodes {
		assert.Contains(t, twice.Nodes, id)
	}
}

func TestApply_ContextValueAsEndpoint(t *testing.T) {
	g := domain.NewGraph()
	g.SetNode(&domain.Node{ID: "a", Attrs: domain.Attrs{domain.AttrContext: "humans"}})
	// edge endpoint is already a context value, not a node id
	g.AddEdge(&domain.Edge{From: "a", To: "humans", Attrs: domain.Attrs{}})

	out, diags, err := aggregate.Apply(g, domain.AggregationNodeContext)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, "humans", out.Edges[0].To)
}

func TestApply_UnresolvedContext(t *testing.T) {
	g := domain.NewGraph()
	g.SetNode(&domain.Node{ID: "a", Attrs: domain.Attrs{domain.AttrContext: "humans"}})
	g.AddEdge(&domain.Edge{From: "a", To: "ghost", Attrs: domain.Attrs{}})
	g.AddEdge(&domain.Edge{From: "ghost", To: "a", Attrs: domain.Attrs{}})

	out, diags, err := aggregate.Apply(g, domain.AggregationNodeContext)
	require.NoError(t, err)

	// one diagnostic per distinct unresolved id
	require.Len(t, diags, 1)
	assert.Equal(t, domain.DiagUnresolvedContext, diags[0].Kind)
	assert.Equal(t, "ghost", diags[0].NodeID)

	// edge endpoints carry the explicit marker, never a guessed id
	assert.Equal(t, domain.UnresolvedMarker, out.Edges[0].To)
	assert.Equal(t, domain.UnresolvedMarker, out.Edges[1].From)
	assert.NotContains(t, out.Nodes, domain.UnresolvedMarker)
}

func TestApply_UnknownMode(t *testing.T) {
	_, _, err := aggregate.Apply(domain.NewGraph(), domain.AggregationMode("bogus"))
	assert.Error(t, err)
}
