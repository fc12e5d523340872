// Package analysis computes summary read models over a graph snapshot.
// Everything here is a pure function of the graph passed in.
package analysis

import "github.com/sig-gov/sig-backend/internal/sig/domain"

type NetworkStats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
	// Density is the simple-graph approximation: distinct ordered pairs
	// (self-loops and unresolved endpoints excluded) over N*(N-1).
	Density            float64 `json:"density"`
	IsConnected        bool    `json:"is_connected"`
	UniqueArrowkeepers int     `json:"unique_arrowkeepers"`
}

func Stats(g *domain.Graph) NetworkStats {
	s := NetworkStats{
		Nodes: g.NodeCount(),
		Edges: g.EdgeCount(),
	}

	pairs := map[[2]string]bool{}
	keepers := map[string]bool{}
	for _, e := range g.Edges {
		if k, ok := e.Attrs[domain.AttrArrowkeeper].(string); ok && k != "" {
			keepers[k] = true
		}
		if e.From == e.To {
			continue
		}
		if _, ok := g.Nodes[e.From]; !ok {
			continue
		}
		if _, ok := g.Nodes[e.To]; !ok {
			continue
		}
		pairs[[2]string{e.From, e.To}] = true
	}
	s.UniqueArrowkeepers = len(keepers)

	n := s.Nodes
	if n > 1 {
		s.Density = float64(len(pairs)) / float64(n*(n-1))
	}
	s.IsConnected = weaklyConnected(g)
	return s
}

// weaklyConnected treats edges as undirected and checks that every node is
// reachable from an arbitrary start node.
func weaklyConnected(g *domain.Graph) bool {
	if g.NodeCount() == 0 {
		return false
	}
	if g.NodeCount() == 1 {
		return true
	}

	var start string
	for id := range g.Nodes {
		start = id
		break
	}

	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range g.Out[v] {
			if _, ok := g.Nodes[e.To]; ok && !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
		for _, e := range g.In[v] {
			if _, ok := g.Nodes[e.From]; ok && !seen[e.From] {
				seen[e.From] = true
				queue = append(queue, e.From)
			}
		}
	}
	return len(seen) == g.NodeCount()
}
