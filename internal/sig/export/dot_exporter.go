package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sig-gov/sig-backend/internal/sig/domain"
)

// ToDOT renders the graph for an external Graphviz pipeline. Human-context
// nodes get an ellipse, the rest a rounded box; arrowkeeper and status
// become the edge label.
func ToDOT(g *domain.Graph, title string) string {
	var b strings.Builder
	b.WriteString("digraph SIG {\n  rankdir=LR;\n")
	if title != "" {
		b.WriteString(fmt.Sprintf("  labelloc=\"t\"; label=%q; fontname=\"Helvetica\";\n", title))
	}

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		n := g.Nodes[id]
		style := `shape=box,style="rounded,filled",fillcolor="#eee8d5"`
		if human, _ := n.Attrs[domain.AttrHumanContext].(bool); human {
			style = `shape=ellipse,style="filled",fillcolor="#fdf6e3"`
		}
		b.WriteString(fmt.Sprintf("  %q [%s];\n", id, style))
	}

	for i, e := range g.Edges {
		lbl := ""
		if k, ok := e.Attrs[domain.AttrArrowkeeper].(string); ok && k != "" {
			lbl = k
		}
		if s, ok := e.Attrs["status"].(string); ok && s != "" {
			if lbl != "" {
				lbl += " / "
			}
			lbl += s
		}
		b.WriteString(fmt.Sprintf("  %q -> %q [label=%q, tooltip=\"edge#%d\"];\n", e.From, e.To, lbl, i))
	}

	b.WriteString("}\n")
	return b.String()
}
