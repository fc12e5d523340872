package analysis

import (
	"fmt"

	"github.com/sig-gov/sig-backend/internal/sig/domain"
)

type CentralityKind string

const (
	CentralityDegree      CentralityKind = "degree"
	CentralityBetweenness CentralityKind = "betweenness"
)

// Centrality computes the requested measure for every node. Degree counts
// parallel edges with multiplicity; betweenness collapses them (simple
// directed graph, Brandes). Edges touching unresolved endpoints only
// contribute on the side that is a known node.
func Centrality(g *domain.Graph, kind CentralityKind) (map[string]float64, error) {
	switch kind {
	case CentralityDegree:
		return degree(g), nil
	case CentralityBetweenness:
		return betweenness(g), nil
	}
	return nil, fmt.Errorf("analysis: unknown centrality kind %q", kind)
}

func degree(g *domain.Graph) map[string]float64 {
	out := make(map[string]float64, g.NodeCount())
	n := g.NodeCount()
	for id := range g.Nodes {
		if n < 2 {
			out[id] = 0
			continue
		}
		d := len(g.Out[id]) + len(g.In[id])
		out[id] = float64(d) / float64(n-1)
	}
	return out
}

func betweenness(g *domain.Graph) map[string]float64 {
	// deduped adjacency over known nodes
	adj := map[string][]string{}
	for id := range g.Nodes {
		seen := map[string]bool{}
		for _, e := range g.Out[id] {
			if e.To == id || seen[e.To] {
				continue
			}
			if _, ok := g.Nodes[e.To]; !ok {
				continue
			}
			seen[e.To] = true
			adj[id] = append(adj[id], e.To)
		}
	}

	cb := make(map[string]float64, g.NodeCount())
	for id := range g.Nodes {
		cb[id] = 0
	}

	for s := range g.Nodes {
		var stack []string
		preds := map[string][]string{}
		sigma := map[string]float64{s: 1}
		dist := map[string]int{s: 0}
		queue := []string{s}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range adj[v] {
				if _, ok := dist[w]; !ok {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		delta := map[string]float64{}
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	// directed normalization
	n := g.NodeCount()
	if n > 2 {
		scale := 1.0 / float64((n-1)*(n-2))
		for id := range cb {
			cb[id] *= scale
		}
	}
	return cb
}
