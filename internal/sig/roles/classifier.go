// Package roles classifies every node's relationship to the designated
// anchor node.
package roles

import "github.com/sig-gov/sig-backend/internal/sig/domain"

// Classify assigns exactly one RoleCategory to every node in the graph,
// relative to anchorID. It is a single pass over the edges. A missing
// anchor is a hard failure (fail loud, never a silent all-unconnected
// result); anchor self-loops are ignored.
func Classify(g *domain.Graph, anchorID string) (map[string]domain.RoleCategory, error) {
	if _, ok := g.Nodes[anchorID]; !ok {
		return nil, &domain.AnchorNotFoundError{AnchorID: anchorID}
	}

	pointsTo := map[string]bool{}
	pointsFrom := map[string]bool{}
	for _, e := range g.Edges {
		if e.From == anchorID && e.To == anchorID {
			continue
		}
		if e.To == anchorID {
			pointsTo[e.From] = true
		}
		if e.From == anchorID {
			pointsFrom[e.To] = true
		}
	}

	out := make(map[string]domain.RoleCategory, len(g.Nodes))
	for id := range g.Nodes {
		switch {
		case id == anchorID:
			out[id] = domain.RoleAnchor
		case pointsTo[id] && pointsFrom[id]:
			out[id] = domain.RoleBidirectional
		case pointsTo[id]:
			out[id] = domain.RoleToAnchor
		case pointsFrom[id]:
			out[id] = domain.RoleFromAnchor
		default:
			out[id] = domain.RoleUnconnected
		}
	}
	return out, nil
}
