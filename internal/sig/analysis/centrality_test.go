package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-gov/sig-backend/internal/sig/analysis"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
)

func TestCentrality_DegreeWithMultiplicity(t *testing.T) {
	g := statsGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "b"}})

	got, err := analysis.Centrality(g, analysis.CentralityDegree)
	require.NoError(t, err)

	// parallel edges count twice; normalized by N-1
	assert.Equal(t, 1.0, got["a"])
	assert.Equal(t, 1.0, got["b"])
	assert.Equal(t, 0.0, got["c"])
}

func TestCentrality_DegreeSingleNode(t *testing.T) {
	g := statsGraph([]string{"a"}, nil)

	got, err := analysis.Centrality(g, analysis.CentralityDegree)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got["a"])
}

func TestCentrality_BetweennessPath(t *testing.T) {
	g := statsGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	got, err := analysis.Centrality(g, analysis.CentralityBetweenness)
	require.NoError(t, err)

	// b sits on the only a->c shortest path; directed normalization is
	// 1/((N-1)(N-2)) = 1/2
	assert.InDelta(t, 0.5, got["b"], 1e-9)
	assert.Equal(t, 0.0, got["a"])
	assert.Equal(t, 0.0, got["c"])
}

func TestCentrality_BetweennessParallelEdgesCollapse(t *testing.T) {
	plain := statsGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	multi := statsGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"a", "b"}, {"b", "c"}})

	p, err := analysis.Centrality(plain, analysis.CentralityBetweenness)
	require.NoError(t, err)
	m, err := analysis.Centrality(multi, analysis.CentralityBetweenness)
	require.NoError(t, err)

	assert.Equal(t, p, m)
}

func TestCentrality_UnknownKind(t *testing.T) {
	_, err := analysis.Centrality(domain.NewGraph(), analysis.CentralityKind("pagerank"))
	assert.Error(t, err)
}
