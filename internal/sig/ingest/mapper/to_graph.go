// Package mapper joins the raw edge and node tables into the canonical
// governance graph.
package mapper

import (
	"fmt"

	"github.com/sig-gov/sig-backend/internal/records"
	"github.com/sig-gov/sig-backend/internal/sig/domain"
	"github.com/sig-gov/sig-backend/internal/sig/ingest/validator"
)

// Derivation computes extra node attributes at build time. Derivations
// must be deterministic and side-effect-free; they run once per node after
// the join.
type Derivation func(n *domain.Node)

// HumanContext flags nodes whose context equals the human sentinel. Kept
// as a derivation rather than a struct field so callers can swap or extend
// the rule set.
func HumanContext(n *domain.Node) {
	ctx, _ := n.Attrs[domain.AttrContext].(string)
	n.Attrs[domain.AttrHumanContext] = ctx == domain.HumanContext
}

type Options struct {
	// Strict escalates orphan edges from diagnostics to a build failure.
	Strict      bool
	Derivations []Derivation
}

// DefaultOptions: lenient build with the human-context derivation, which
// matches the source sheets.
func DefaultOptions() Options {
	return Options{Derivations: []Derivation{HumanContext}}
}

// ToGraph builds the graph from the two tables. Node attributes are
// left-joined onto each edge endpoint; an endpoint missing from the node
// table yields one orphan diagnostic and nil joined attributes (lenient),
// or fails the build (strict). Duplicate node ids are last-write-wins.
func ToGraph(edges, nodes *records.Table, opt Options) (*domain.Graph, []domain.Diagnostic, error) {
	if err := validator.ValidateEdges(edges); err != nil {
		return nil, nil, err
	}
	if err := validator.ValidateNodes(nodes); err != nil {
		return nil, nil, err
	}

	g := domain.NewGraph()
	for _, row := range nodes.Rows() {
		id := row[domain.ColNode]
		if id == "" {
			continue
		}
		n := &domain.Node{ID: id, Attrs: domain.Attrs{}}
		for k, v := range row {
			if k == domain.ColNode {
				continue
			}
			n.Attrs[k] = v
		}
		g.SetNode(n)
	}

	var diags []domain.Diagnostic
	for i, row := range edges.Rows() {
		e := &domain.Edge{From: row[domain.ColFrom], To: row[domain.ColTo], Attrs: domain.Attrs{}}
		for k, v := range row {
			if k == domain.ColFrom || k == domain.ColTo {
				continue
			}
			e.Attrs[k] = v
		}

		if n, ok := g.Nodes[e.From]; ok {
			e.FromAttrs = n.Attrs
		} else {
			diags = append(diags, domain.OrphanEdge(e.From, i))
		}
		if n, ok := g.Nodes[e.To]; ok {
			e.ToAttrs = n.Attrs
		} else {
			diags = append(diags, domain.OrphanEdge(e.To, i))
		}
		g.AddEdge(e)
	}

	if opt.Strict && len(diags) > 0 {
		d := diags[0]
		return nil, nil, &domain.ValidationError{
			Table:  "edges",
			Reason: fmt.Sprintf("%d orphan edge endpoint(s), first: %s", len(diags), d.Message),
		}
	}

	for _, n := range g.Nodes {
		for _, derive := range opt.Derivations {
			derive(n)
		}
	}

	return g, diags, nil
}
