package analysis

import (
	"fmt"
	"sort"

	"github.com/sig-gov/sig-backend/internal/sig/domain"
)

type ClusterSummary struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Clusters groups nodes by the value of attributeKey and returns counts in
// descending order, ties broken by lexical order of the group value, so
// repeated calls on the same graph return identical results. Nodes without
// the attribute are not counted.
func Clusters(g *domain.Graph, attributeKey string) []ClusterSummary {
	counts := map[string]int{}
	for _, n := range g.Nodes {
		v, ok := n.Attrs[attributeKey]
		if !ok {
			continue
		}
		s := fmt.Sprintf("%v", v)
		if s == "" {
			continue
		}
		counts[s]++
	}

	out := make([]ClusterSummary, 0, len(counts))
	for v, c := range counts {
		out = append(out, ClusterSummary{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
