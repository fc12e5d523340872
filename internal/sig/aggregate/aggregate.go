// Package aggregate rewrites a governance graph into its node-context
// quotient: every node collapses into its context group, edges follow.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/sig-gov/sig-backend/internal/sig/domain"
)

// Apply returns a new graph for the given mode; the input graph is never
// mutated. Unresolvable endpoints are flagged with a diagnostic and set to
// domain.UnresolvedMarker, never silently dropped or guessed. The caller
// decides whether unresolved diagnostics are fatal.
func Apply(g *domain.Graph, mode domain.AggregationMode) (*domain.Graph, []domain.Diagnostic, error) {
	switch mode {
	case domain.AggregationNone, "":
		return rebuild(g), nil, nil
	case domain.AggregationNodeContext:
		out, diags := byNodeContext(g)
		return out, diags, nil
	}
	return nil, nil, fmt.Errorf("aggregate: unknown mode %q", mode)
}

func rebuild(g *domain.Graph) *domain.Graph {
	out := domain.NewGraph()
	for _, n := range g.Nodes {
		out.SetNode(&domain.Node{ID: n.ID, Attrs: n.Attrs})
	}
	for _, e := range g.Edges {
		c := *e
		out.AddEdge(&c)
	}
	return out
}

func byNodeContext(g *domain.Graph) (*domain.Graph, []domain.Diagnostic) {
	lookup := map[string]string{}
	contexts := map[string]bool{}
	for id, n := range g.Nodes {
		ctx, _ := n.Attrs[domain.AttrContext].(string)
		if ctx == "" {
			continue
		}
		lookup[id] = ctx
		contexts[ctx] = true
	}

	out := domain.NewGraph()
	var ids []string
	for ctx := range contexts {
		ids = append(ids, ctx)
	}
	sort.Strings(ids)
	for _, ctx := range ids {
		// context maps to itself, so a second aggregation pass is a no-op
		out.SetNode(&domain.Node{ID: ctx, Attrs: domain.Attrs{
			domain.AttrContext:      ctx,
			domain.AttrHumanContext: ctx == domain.HumanContext,
		}})
	}

	var diags []domain.Diagnostic
	flagged := map[string]bool{}
	resolve := func(id string) string {
		if ctx, ok := lookup[id]; ok {
			return ctx
		}
		if contexts[id] {
			// already a context value used directly as an endpoint
			return id
		}
		if !flagged[id] {
			flagged[id] = true
			diags = append(diags, domain.UnresolvedContext(id))
		}
		return domain.UnresolvedMarker
	}

	for _, e := range g.Edges {
		from := resolve(e.From)
		to := resolve(e.To)
		ne := &domain.Edge{From: from, To: to, Attrs: e.Attrs}
		if n, ok := out.Nodes[from]; ok {
			ne.FromAttrs = n.Attrs
		}
		if n, ok := out.Nodes[to]; ok {
			ne.ToAttrs = n.Attrs
		}
		out.AddEdge(ne)
	}

	return out, diags
}
